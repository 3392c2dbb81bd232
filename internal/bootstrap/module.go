package bootstrap

import (
	"context"
	"log/slog"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"amendtrack/internal/bootstrap/config"
	"amendtrack/internal/bootstrap/database"
	"amendtrack/internal/bootstrap/logging"
	sqliterepo "amendtrack/internal/infrastructure/persistence/sqlite/repository"
	sqliteuow "amendtrack/internal/infrastructure/persistence/sqlite/uow"
	localstorage "amendtrack/internal/infrastructure/storage"
	"amendtrack/internal/ports"
	amendmentuc "amendtrack/internal/usecase/amendment"
	cataloguc "amendtrack/internal/usecase/catalog"
)

var Module = fx.Options(
	fx.Provide(provideConfig),
	fx.Provide(provideDatabase),
	fx.Provide(provideApp),
	fx.Provide(provideFileStorage),
	fx.Provide(
		fx.Annotate(
			sqliterepo.NewAmendmentRepository,
			fx.As(new(ports.AmendmentRepository)),
		),
	),
	fx.Provide(
		fx.Annotate(
			sqliterepo.NewCatalogRepository,
			fx.As(new(ports.CatalogRepository)),
		),
	),
	fx.Provide(
		fx.Annotate(
			sqliteuow.NewUnitOfWork,
			fx.As(new(ports.UnitOfWork)),
		),
	),
	fx.Provide(
		fx.Annotate(
			ports.NewSystemClock,
			fx.As(new(ports.Clock)),
		),
	),
	fx.Provide(amendmentuc.NewService),
	fx.Provide(cataloguc.NewService),
)

type configParams struct {
	fx.In

	Ctx        context.Context
	ConfigFile string `name:"configFile"`
}

func provideConfig(p configParams) (config.Config, error) {
	ctx := logging.WithAttrs(p.Ctx, slog.String("component", "bootstrap.fx"))
	return config.Load(ctx, p.ConfigFile)
}

func provideDatabase(lc fx.Lifecycle, ctx context.Context, cfg config.Config) (*gorm.DB, error) {
	logCtx := logging.WithAttrs(ctx, slog.String("component", "bootstrap.fx"))

	db, err := database.Open(logCtx, cfg.Database)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	})

	return db, nil
}

func provideApp(cfg config.Config, db *gorm.DB) *App {
	return &App{
		Config: cfg,
		DB:     db,
	}
}

func provideFileStorage(cfg config.Config) (ports.FileStorage, error) {
	return localstorage.NewLocalStorage(cfg.Storage.DocumentDir)
}
