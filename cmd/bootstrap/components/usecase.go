package components

import (
	"dakar-rentals/internal/domain/booking"
	"dakar-rentals/internal/pkg/clock"
	"dakar-rentals/internal/pkg/config"
	"dakar-rentals/internal/usecase/commands"
	"dakar-rentals/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		func(cfg config.Config) *booking.DailyRateCalculator {
			return booking.NewDailyRateCalculator(cfg.Booking.MinBillableDays)
		},
		fx.As(new(booking.PriceCalculator)),
	),
	func(clock clock.Clock, calc booking.PriceCalculator, cfg config.Config) *booking.Factory {
		return booking.NewFactory(clock, calc, booking.Policy{
			StrictDateRange: cfg.Booking.StrictDateRange,
		})
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewInventoryQueries,
	),
)
