package components

import (
	"venue-calendar/internal/handler"
	"venue-calendar/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCalendarHandler,
		api.NewHealthHandler,
	),
	fx.Invoke(handler.NewRouter),
)
