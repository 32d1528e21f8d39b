package calendar

import (
	"errors"
	"fmt"

	"venue-calendar/internal/domain/event"
)

var ErrInvalidRange = errors.New("invalid date range")

// DateRange is an inclusive span of calendar days.
type DateRange struct {
	start event.Date
	end   event.Date
}

// NewDateRange rejects inverted ranges and, when maxDays > 0, ranges covering
// more than maxDays days.
func NewDateRange(start, end event.Date, maxDays int) (DateRange, error) {
	if start.IsZero() || end.IsZero() {
		return DateRange{}, fmt.Errorf("%w: missing bound", ErrInvalidRange)
	}
	if end.Before(start) {
		return DateRange{}, fmt.Errorf("%w: %s is after %s", ErrInvalidRange, start, end)
	}
	r := DateRange{start: start, end: end}
	if maxDays > 0 && r.Days() > maxDays {
		return DateRange{}, fmt.Errorf("%w: %d days exceeds limit of %d", ErrInvalidRange, r.Days(), maxDays)
	}
	return r, nil
}

func (r DateRange) Start() event.Date { return r.start }
func (r DateRange) End() event.Date   { return r.end }

// Days is the number of dates in the range, both bounds included.
func (r DateRange) Days() int {
	return r.start.DaysUntil(r.end) + 1
}

func (r DateRange) Contains(d event.Date) bool {
	return !d.Before(r.start) && !d.After(r.end)
}

// Dates lists every date in the range in ascending order.
func (r DateRange) Dates() []event.Date {
	out := make([]event.Date, 0, r.Days())
	for d := r.start; !d.After(r.end); d = d.AddDays(1) {
		out = append(out, d)
	}
	return out
}

func (r DateRange) String() string {
	return r.start.String() + ".." + r.end.String()
}
