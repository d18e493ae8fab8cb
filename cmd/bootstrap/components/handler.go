package components

import (
	"dakar-rentals/internal/handler"
	"dakar-rentals/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewInventoryHandler,
	),
	fx.Invoke(handler.NewRouter),
)
