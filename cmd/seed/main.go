// Command seed loads the YAML catalog into PostgreSQL in a single transaction.
// Items are upserted by ID, so it is safe to run after every catalog edit.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"dakar-rentals/cmd/bootstrap"
	"dakar-rentals/internal/infra/catalog"
	"dakar-rentals/internal/infra/db"
	"dakar-rentals/internal/infra/repository"
	sqlc "dakar-rentals/internal/infra/sqlc/generated"
	"dakar-rentals/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

func main() {
	path := flag.String("catalog", "", "catalog file (defaults to CATALOG_PATH, then catalog/dakar.yaml)")
	flag.Parse()

	var failed bool
	app := fx.New(
		bootstrap.ConfigModule,
		bootstrap.LoggerModule,
		fx.Provide(bootstrap.NewDB),
		fx.NopLogger,
		fx.Invoke(func(lc fx.Lifecycle, sd fx.Shutdowner, cfg config.Config, pool *pgxpool.Pool, logger *slog.Logger) {
			lc.Append(fx.Hook{
				OnStart: func(ctx context.Context) error {
					err := seed(ctx, catalogPath(*path, cfg), pool, logger)
					if err != nil {
						failed = true
						logger.Error("Catalog seed failed", "error", err)
					}
					return sd.Shutdown()
				},
			})
		}),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("Seeder failed to start", "error", err)
		os.Exit(1)
	}
	<-app.Done()
	_ = app.Stop(context.Background())

	if failed {
		os.Exit(1)
	}
}

func catalogPath(flagValue string, cfg config.Config) string {
	switch {
	case flagValue != "":
		return flagValue
	case cfg.Store.CatalogPath != "":
		return cfg.Store.CatalogPath
	default:
		return "catalog/dakar.yaml"
	}
}

func seed(ctx context.Context, path string, pool *pgxpool.Pool, logger *slog.Logger) error {
	c, err := catalog.ReadFile(path)
	if err != nil {
		return err
	}
	loaded, err := db.WithDefaultRetry(ctx, pool, func(tx sqlc.DBTX) (int, error) {
		if err := c.Load(ctx, repository.NewCatalogRepository(sqlc.New(), tx)); err != nil {
			return 0, err
		}
		return len(c.Apartments) + len(c.Cars), nil
	})
	if err != nil {
		return err
	}
	logger.Info("Catalog seeded", "path", path, "items", loaded, "apartments", len(c.Apartments), "cars", len(c.Cars))
	return nil
}
