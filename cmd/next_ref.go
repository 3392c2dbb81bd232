/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"amendtrack/internal/bootstrap/logging"
	"amendtrack/internal/errs"
)

// nextRefCmd represents the next-ref command
var nextRefCmd = &cobra.Command{
	Use:   "next-ref",
	Short: "Preview the next amendment reference for today",
	RunE: withApp(func(cmd *cobra.Command, svc *appServices) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		reference, err := svc.Amendments.NextReference(ctx)
		if err != nil {
			return errs.Wrap(err, "compute next reference")
		}

		if _, err := fmt.Fprintln(cmd.OutOrStdout(), reference); err != nil {
			return errs.Wrap(err, "write next-ref output")
		}
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(nextRefCmd)
}
