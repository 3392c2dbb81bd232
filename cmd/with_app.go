package cmd

import (
	"context"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"amendtrack/internal/bootstrap"
	"amendtrack/internal/bootstrap/logging"
	"amendtrack/internal/errs"
	"amendtrack/internal/ports"
	amendmentuc "amendtrack/internal/usecase/amendment"
	cataloguc "amendtrack/internal/usecase/catalog"
)

// appServices is everything a command may need from the container.
type appServices struct {
	App         *bootstrap.App
	Amendments  *amendmentuc.Service
	Catalog     *cataloguc.Service
	Repo        ports.AmendmentRepository
	CatalogRepo ports.CatalogRepository
	UoW         ports.UnitOfWork
	Clock       ports.Clock
}

func withApp(run func(cmd *cobra.Command, svc *appServices) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := logging.WithAttrs(
			cmd.Context(),
			slog.String("command", cmd.CommandPath()),
			slog.String("config_file", cfgFile),
		)

		svc := &appServices{}
		fxApp := fx.New(
			bootstrap.Module,
			fx.Provide(func() context.Context { return ctx }),
			fx.Provide(
				fx.Annotate(
					func() string { return cfgFile },
					fx.ResultTags(`name:"configFile"`),
				),
			),
			fx.Populate(
				&svc.App,
				&svc.Amendments,
				&svc.Catalog,
				&svc.Repo,
				&svc.CatalogRepo,
				&svc.UoW,
				&svc.Clock,
			),
		)

		startCtx, cancelStart := context.WithTimeout(ctx, 10*time.Second)
		defer cancelStart()
		if err := fxApp.Start(startCtx); err != nil {
			logging.Error(ctx, "bootstrap application failed", slog.Any("err", errs.Loggable(err)))
			return errs.Wrap(err, "start fx application")
		}

		defer func() {
			stopCtx, cancelStop := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancelStop()
			if err := fxApp.Stop(stopCtx); err != nil {
				logging.Error(ctx, "fx application stop failed", slog.Any("err", errs.Loggable(err)))
			}
		}()

		if err := run(cmd, svc); err != nil {
			return errs.Wrap(err, "run command")
		}
		return nil
	}
}
