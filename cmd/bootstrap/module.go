package bootstrap

import (
	"venue-calendar/cmd/bootstrap/components"
	"venue-calendar/internal/pkg/config"

	"go.uber.org/fx"
)

func Module(cfg config.Config) fx.Option {
	return fx.Options(
		ConfigModule(cfg),
		LoggerModule,
		SourceModule(cfg.Source.Kind),
		components.UseCaseModule,
		components.HandlerModule,
	)
}

// SourceModule selects where events are read from. The database pool is only
// constructed for the postgres source.
func SourceModule(kind string) fx.Option {
	switch kind {
	case config.SourceICS:
		return components.ICSSourceModule
	default:
		return fx.Options(
			DBModule,
			components.RepositoryModule,
		)
	}
}
