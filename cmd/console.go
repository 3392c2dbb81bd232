/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"amendtrack/internal/bootstrap/logging"
	"amendtrack/internal/errs"
	"amendtrack/internal/usecase/console"
)

// consoleCmd represents the console command
var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Browse amendments in a terminal UI",
	RunE: withApp(func(cmd *cobra.Command, svc *appServices) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		status, _ := cmd.Flags().GetString("status")
		refreshInterval, _ := cmd.Flags().GetDuration("refresh-interval")

		model := console.NewBrowserModel(ctx, svc.Amendments, console.Options{
			StatusFilter:    status,
			RefreshInterval: refreshInterval,
		})

		program := tea.NewProgram(model, tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			return errs.Wrap(err, "run amendment console")
		}
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(consoleCmd)
	consoleCmd.Flags().String("status", "", "Initial status filter (Open|In Progress|Testing|Completed|Deployed)")
	consoleCmd.Flags().Duration("refresh-interval", 10*time.Second, "Auto refresh interval")
}
