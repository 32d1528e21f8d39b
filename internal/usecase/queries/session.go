package queries

import (
	"context"

	"venue-calendar/internal/domain/event"
	"venue-calendar/internal/usecase/coordinator"
)

// SessionQueries coordinates interactive queries per caller session. Within a
// session each query kind has one live request; a superseded call returns
// errs.ErrStaleResultDiscarded. An empty session is not coordinated.
type SessionQueries interface {
	CheckConflict(ctx context.Context, session string, params CheckConflictParams) (*ConflictCheck, error)
	CalendarAggregates(ctx context.Context, session string, start, end event.Date) (*CalendarView, error)
	Close()
}

type CoordinatorOptions = coordinator.Options

type sessionQueriesImpl struct {
	inner        AvailabilityQueries
	maxRangeDays int
	conflicts    *coordinator.Coordinator[*ConflictCheck]
	calendars    *coordinator.Coordinator[*CalendarView]
}

func NewSessionQueries(inner AvailabilityQueries, maxRangeDays int, opts CoordinatorOptions) SessionQueries {
	conflictOpts, calendarOpts := opts, opts
	conflictOpts.Name = "conflict"
	calendarOpts.Name = "calendar"
	return &sessionQueriesImpl{
		inner:        inner,
		maxRangeDays: maxRangeDays,
		conflicts:    coordinator.New[*ConflictCheck](conflictOpts),
		calendars:    coordinator.New[*CalendarView](calendarOpts),
	}
}

func (q *sessionQueriesImpl) CheckConflict(ctx context.Context, session string, params CheckConflictParams) (*ConflictCheck, error) {
	if session == "" {
		return q.inner.CheckConflict(ctx, params)
	}
	// reject bad input now instead of after the debounce window
	if _, err := params.Candidate(); err != nil {
		return nil, err
	}

	res, err := q.conflicts.Do(ctx, session+"|conflict", func(ctx context.Context) (*ConflictCheck, error) {
		return q.inner.CheckConflict(ctx, params)
	})
	if err != nil {
		return nil, err
	}
	res.Value.Seq = res.Seq
	return res.Value, nil
}

func (q *sessionQueriesImpl) CalendarAggregates(ctx context.Context, session string, start, end event.Date) (*CalendarView, error) {
	if session == "" {
		return q.inner.CalendarAggregates(ctx, start, end)
	}
	if _, err := NewDateRange(start, end, q.maxRangeDays); err != nil {
		return nil, err
	}

	res, err := q.calendars.Do(ctx, session+"|calendar", func(ctx context.Context) (*CalendarView, error) {
		return q.inner.CalendarAggregates(ctx, start, end)
	})
	if err != nil {
		return nil, err
	}
	res.Value.Seq = res.Seq
	return res.Value, nil
}

func (q *sessionQueriesImpl) Close() {
	q.conflicts.Close()
	q.calendars.Close()
}
