/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"amendtrack/internal/bootstrap/logging"
	"amendtrack/internal/errs"
	"amendtrack/internal/transport/httpapi"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the amendment tracking HTTP API",
	RunE: withApp(func(cmd *cobra.Command, svc *appServices) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		if err := svc.App.InitSchema(ctx); err != nil {
			return errs.Wrap(err, "initialize schema")
		}

		server, err := httpapi.NewServer(svc.App.Config.Server, svc.Amendments, svc.Catalog)
		if err != nil {
			return errs.Wrap(err, "build http server")
		}

		runCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		logging.Info(ctx, "starting http api", slog.String("addr", svc.App.Config.Server.Addr))
		if err := server.Run(runCtx); err != nil {
			return errs.Wrap(err, "run http server")
		}

		logging.Info(ctx, "http api stopped")
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
