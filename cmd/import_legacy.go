/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"amendtrack/internal/bootstrap/logging"
	"amendtrack/internal/errs"
	"amendtrack/internal/usecase/importer"
)

// importLegacyCmd represents the import-legacy command
var importLegacyCmd = &cobra.Command{
	Use:   "import-legacy",
	Short: "Import amendments from a legacy SQL Server dump",
	RunE: withApp(func(cmd *cobra.Command, svc *appServices) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		dumpFile, _ := cmd.Flags().GetString("file")
		mappingFile, _ := cmd.Flags().GetString("mapping")
		if dumpFile == "" {
			return errs.E(errs.KindInvalid, "--file is required")
		}

		mapping, err := importer.LoadMapping(mappingFile)
		if err != nil {
			return errs.Wrap(err, "load mapping")
		}

		f, err := os.Open(dumpFile)
		if err != nil {
			return errs.Wrap(err, "open dump file")
		}
		defer f.Close()

		if err := svc.App.InitSchema(ctx); err != nil {
			return errs.Wrap(err, "initialize schema")
		}

		run := importer.New(svc.Repo, svc.CatalogRepo, svc.UoW, svc.Clock, mapping)
		summary, err := run.Run(ctx, f)
		if err != nil {
			return errs.Wrap(err, "import legacy dump")
		}

		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "imported %d amendments, skipped %d\n", summary.Imported, summary.Skipped); err != nil {
			return errs.Wrap(err, "write import output")
		}
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(importLegacyCmd)
	importLegacyCmd.Flags().String("file", "", "Path to the SQL Server dump (UTF-16 or UTF-8)")
	importLegacyCmd.Flags().String("mapping", "", "Optional TOML mapping file overriding the built-in translation tables")
}
