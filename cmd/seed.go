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
	"amendtrack/internal/usecase/seed"
)

// seedCmd represents the seed command
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the database with synthetic development data",
	RunE: withApp(func(cmd *cobra.Command, svc *appServices) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		count, _ := cmd.Flags().GetInt("count")

		if err := svc.App.InitSchema(ctx); err != nil {
			return errs.Wrap(err, "initialize schema")
		}

		seeder := seed.New(svc.Repo, svc.CatalogRepo, svc.UoW, svc.Clock)
		if err := seeder.Run(ctx, count); err != nil {
			return errs.Wrap(err, "seed database")
		}

		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "seeded %d amendments\n", count); err != nil {
			return errs.Wrap(err, "write seed output")
		}
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().Int("count", 50, "Number of amendments to create")
}
