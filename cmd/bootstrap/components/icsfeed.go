package components

import (
	"context"
	"log/slog"
	"time"

	"venue-calendar/internal/handler/api"
	"venue-calendar/internal/infra/icsfeed"
	"venue-calendar/internal/pkg/clock"
	"venue-calendar/internal/pkg/config"
	"venue-calendar/internal/usecase/queries"

	"go.uber.org/fx"
)

const icsRefreshTimeout = time.Minute

var ICSSourceModule = fx.Module("icsfeed",
	fx.Provide(
		fx.Annotate(
			NewICSStore,
			fx.As(new(queries.EventReadStore), new(api.SnapshotSource)),
		),
	),
)

// NewICSStore loads the feed once on start and then on the configured cron
// schedule. A failed first load does not stop the app; reads report the source
// as unavailable until a refresh succeeds.
func NewICSStore(lc fx.Lifecycle, cfg config.Config, clk clock.Clock) (*icsfeed.Store, error) {
	loc, err := time.LoadLocation(cfg.Source.ICSTimeZone)
	if err != nil {
		return nil, err
	}

	store := icsfeed.NewStore(icsfeed.NewFetcher(cfg.Source.ICSURL, nil), loc, cfg.Source.ICSMaxAge, clk)
	scheduler, err := icsfeed.NewScheduler(cfg.Source.ICSRefreshCron, store, icsRefreshTimeout, loc)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := store.Refresh(ctx); err != nil {
				slog.Warn("Initial ICS load failed", "error", err)
			}
			scheduler.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return scheduler.Stop(ctx)
		},
	})

	return store, nil
}
