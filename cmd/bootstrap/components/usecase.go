package components

import (
	"context"

	"venue-calendar/internal/pkg/clock"
	"venue-calendar/internal/pkg/config"
	"venue-calendar/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		NewAvailabilityQueries,
		NewSessionQueries,
	),
)

func NewAvailabilityQueries(store queries.EventReadStore, cfg config.Config) queries.AvailabilityQueries {
	return queries.NewAvailabilityQueries(store, cfg.Query.Timeout, cfg.Query.MaxRangeDays)
}

func NewSessionQueries(lc fx.Lifecycle, inner queries.AvailabilityQueries, cfg config.Config, clk clock.Clock) queries.SessionQueries {
	sq := queries.NewSessionQueries(inner, cfg.Query.MaxRangeDays, queries.CoordinatorOptions{
		Debounce: cfg.Query.Debounce,
		Timeout:  cfg.Query.Timeout,
		Clock:    clk,
	})

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			sq.Close()
			return nil
		},
	})

	return sq
}
