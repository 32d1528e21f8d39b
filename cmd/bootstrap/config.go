package bootstrap

import (
	"venue-calendar/internal/pkg/config"

	"go.uber.org/fx"
)

func ConfigModule(cfg config.Config) fx.Option {
	return fx.Module("config",
		fx.Supply(cfg),
		fx.Supply(fx.Annotated{Name: "event_source", Target: cfg.Source.Kind}),
	)
}
