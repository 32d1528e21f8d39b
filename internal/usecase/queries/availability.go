package queries

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"venue-calendar/internal/domain/availability"
	"venue-calendar/internal/domain/calendar"
	"venue-calendar/internal/domain/event"
	"venue-calendar/internal/infra"
	"venue-calendar/internal/pkg/errs"
)

// EventReadStore is the event repository contract. Implementations return
// every record of the requested days, cancelled ones included.
type EventReadStore interface {
	FindByDate(ctx context.Context, date event.Date) ([]event.Record, error)
	FindInRange(ctx context.Context, start, end event.Date) ([]event.Record, error)
}

type CheckConflictParams struct {
	Date  event.Date
	Start event.TimeOfDay
	End   event.TimeOfDay
	// Category is free text; empty means an ordinary booking.
	Category  string
	ExcludeID string
}

// Candidate validates the params. availability.ErrBadWindow is marked with
// errs.ErrInvalidCandidate for the transport layer.
func (p CheckConflictParams) Candidate() (availability.Candidate, error) {
	category := event.CategoryOther
	if p.Category != "" {
		category = event.NormalizeCategory(p.Category)
	}
	c, err := availability.NewCandidate(p.Date, p.Start, p.End, category, p.ExcludeID)
	if err != nil {
		return availability.Candidate{}, errs.Mark(err, errs.ErrInvalidCandidate)
	}
	return c, nil
}

// ConflictCheck is a verdict tagged with the candidate it answers.
type ConflictCheck struct {
	Candidate availability.Candidate
	Verdict   availability.Verdict
	// Seq is set by coordinated session queries only.
	Seq uint64
}

type CalendarView struct {
	Grid *calendar.Grid
	Seq  uint64
}

type DayDetail struct {
	Aggregate calendar.DayAggregate
	// Events are the active events of the day ordered by start time.
	Events []event.Record
}

type AvailabilityQueries interface {
	CheckConflict(ctx context.Context, params CheckConflictParams) (*ConflictCheck, error)
	CalendarAggregates(ctx context.Context, start, end event.Date) (*CalendarView, error)
	DayDetail(ctx context.Context, date event.Date) (*DayDetail, error)
}

type availabilityQueriesImpl struct {
	store        EventReadStore
	timeout      time.Duration
	maxRangeDays int
}

func NewAvailabilityQueries(store EventReadStore, timeout time.Duration, maxRangeDays int) AvailabilityQueries {
	return &availabilityQueriesImpl{
		store:        store,
		timeout:      timeout,
		maxRangeDays: maxRangeDays,
	}
}

func (q *availabilityQueriesImpl) CheckConflict(ctx context.Context, params CheckConflictParams) (*ConflictCheck, error) {
	candidate, err := params.Candidate()
	if err != nil {
		return nil, err
	}

	ctx, cancel := q.withTimeout(ctx)
	defer cancel()

	events, err := q.store.FindByDate(ctx, candidate.Date())
	if err != nil {
		return nil, unavailable(err, "failed to load events for conflict check")
	}

	verdict, err := availability.Evaluate(candidate, events)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCandidate)
	}
	return &ConflictCheck{Candidate: candidate, Verdict: verdict}, nil
}

func (q *availabilityQueriesImpl) CalendarAggregates(ctx context.Context, start, end event.Date) (*CalendarView, error) {
	r, err := NewDateRange(start, end, q.maxRangeDays)
	if err != nil {
		return nil, err
	}

	ctx, cancel := q.withTimeout(ctx)
	defer cancel()

	events, err := q.store.FindInRange(ctx, r.Start(), r.End())
	if err != nil {
		return nil, unavailable(err, "failed to load events for calendar")
	}
	return &CalendarView{Grid: calendar.NewGrid(r, events)}, nil
}

func (q *availabilityQueriesImpl) DayDetail(ctx context.Context, date event.Date) (*DayDetail, error) {
	r, err := NewDateRange(date, date, 1)
	if err != nil {
		return nil, err
	}

	ctx, cancel := q.withTimeout(ctx)
	defer cancel()

	events, err := q.store.FindByDate(ctx, date)
	if err != nil {
		return nil, unavailable(err, "failed to load events for day detail")
	}

	active := make([]event.Record, 0, len(events))
	for _, rec := range events {
		if rec.IsActive() && rec.Date() == date {
			active = append(active, rec)
		}
	}
	slices.SortFunc(active, event.ByStart)

	return &DayDetail{
		Aggregate: calendar.Aggregate(r, events)[date],
		Events:    active,
	}, nil
}

func (q *availabilityQueriesImpl) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if q.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, q.timeout)
}

// NewDateRange validates a requested range. Failures are marked with ErrInvalidRange.
func NewDateRange(start, end event.Date, maxDays int) (calendar.DateRange, error) {
	r, err := calendar.NewDateRange(start, end, maxDays)
	if err != nil {
		return calendar.DateRange{}, errs.Mark(err, errs.ErrInvalidRange)
	}
	return r, nil
}

// unavailable marks any repository failure, timeouts included, as
// ErrRepositoryUnavailable. No fallback data is ever substituted.
func unavailable(err error, msg string) error {
	slog.Warn("Event repository unavailable", "kind", infra.KindOf(err), "error", err)
	return errs.Mark(errs.Wrap(err, msg), errs.ErrRepositoryUnavailable)
}
