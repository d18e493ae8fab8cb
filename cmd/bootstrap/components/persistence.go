package components

import (
	"context"
	"fmt"
	"log/slog"

	"dakar-rentals/internal/infra/cache"
	"dakar-rentals/internal/infra/catalog"
	"dakar-rentals/internal/infra/db"
	"dakar-rentals/internal/infra/memstore"
	"dakar-rentals/internal/infra/readstore"
	"dakar-rentals/internal/infra/repository"
	sqlc "dakar-rentals/internal/infra/sqlc/generated"
	"dakar-rentals/internal/infra/supabase"
	"dakar-rentals/internal/pkg/config"
	"dakar-rentals/internal/usecase/commands"
	"dakar-rentals/internal/usecase/queries"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewStores,
	),
)

// Stores carries the ports of whichever backend STORE_BACKEND selects.
type Stores struct {
	fx.Out

	Bookings     commands.BookingRepository
	BookingViews queries.BookingReadStore
	Inventory    queries.InventoryReadStore
	Items        commands.InventoryReader
}

func NewStores(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (Stores, error) {
	var (
		stores Stores
		err    error
	)
	switch cfg.Store.Backend {
	case config.BackendPostgres:
		stores, err = newPostgresStores(lc, cfg)
	case config.BackendSupabase:
		stores, err = newSupabaseStores(cfg)
	case config.BackendMemory:
		stores, err = newMemoryStores(cfg)
	default:
		err = fmt.Errorf("unknown STORE_BACKEND %q", cfg.Store.Backend)
	}
	if err != nil {
		return Stores{}, err
	}
	logger.Info("Booking store ready", slog.String("backend", cfg.Store.Backend))

	if cfg.Redis.Addr != "" {
		client := cache.NewRedisClient(cfg.Redis)
		stores.Items = cache.NewInventoryCache(stores.Items, client, cfg.Redis.CacheTTL)
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				if err := cache.Ping(ctx, client); err != nil {
					logger.Warn("Item cache unreachable, lookups will fall through", slog.Any("error", err))
				}
				return nil
			},
			OnStop: func(_ context.Context) error {
				return cache.Close(client)
			},
		})
		logger.Info("Item cache enabled", slog.String("addr", cfg.Redis.Addr), slog.Duration("ttl", cfg.Redis.CacheTTL))
	}

	return stores, nil
}

func newPostgresStores(lc fx.Lifecycle, cfg config.Config) (Stores, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return Stores{}, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	q := sqlc.New()
	inventory := readstore.NewInventoryReadStore(q, pool)
	return Stores{
		Bookings:     repository.NewBookingRepository(q, pool),
		BookingViews: readstore.NewBookingReadStore(q, pool),
		Inventory:    inventory,
		Items:        inventory,
	}, nil
}

func newSupabaseStores(cfg config.Config) (Stores, error) {
	client, err := supabase.NewClient(cfg.Supabase)
	if err != nil {
		return Stores{}, err
	}
	inventory := supabase.NewInventoryStore(client)
	return Stores{
		Bookings:     supabase.NewBookingRepository(client),
		BookingViews: supabase.NewBookingReadStore(client),
		Inventory:    inventory,
		Items:        inventory,
	}, nil
}

func newMemoryStores(cfg config.Config) (Stores, error) {
	store := memstore.New()
	if cfg.Store.CatalogPath != "" {
		c, err := catalog.ReadFile(cfg.Store.CatalogPath)
		if err != nil {
			return Stores{}, err
		}
		if err := c.Load(context.Background(), store); err != nil {
			return Stores{}, err
		}
	}
	return Stores{
		Bookings:     store,
		BookingViews: memstore.NewBookingViews(store),
		Inventory:    store,
		Items:        store,
	}, nil
}
