package request

import (
	"fmt"

	"venue-calendar/internal/domain/event"
	"venue-calendar/internal/pkg/errs"
	"venue-calendar/internal/pkg/patch"
	"venue-calendar/internal/usecase/queries"
)

type CheckConflictRequest struct {
	Date      string  `form:"date" binding:"required"`
	Start     string  `form:"start" binding:"required"`
	End       string  `form:"end" binding:"required"`
	ExcludeID *string `form:"exclude"`
	Category  *string `form:"category"`
}

// ToParams parses the wire formats. Only syntax is checked here; the window
// itself is validated by the query.
func (r *CheckConflictRequest) ToParams() (queries.CheckConflictParams, error) {
	date, err := event.ParseDate(r.Date)
	if err != nil {
		return queries.CheckConflictParams{}, errs.Mark(err, errs.ErrInvalidInput)
	}
	start, err := event.ParseTimeOfDay(r.Start)
	if err != nil {
		return queries.CheckConflictParams{}, errs.Mark(fmt.Errorf("start: %w", err), errs.ErrInvalidInput)
	}
	end, err := event.ParseTimeOfDay(r.End)
	if err != nil {
		return queries.CheckConflictParams{}, errs.Mark(fmt.Errorf("end: %w", err), errs.ErrInvalidInput)
	}
	return queries.CheckConflictParams{
		Date:      date,
		Start:     start,
		End:       end,
		Category:  patch.Text(r.Category),
		ExcludeID: patch.Text(r.ExcludeID),
	}, nil
}

type CalendarAggregatesRequest struct {
	Start string `form:"start" binding:"required"`
	End   string `form:"end" binding:"required"`
}

func (r *CalendarAggregatesRequest) ToDates() (event.Date, event.Date, error) {
	start, err := event.ParseDate(r.Start)
	if err != nil {
		return event.Date{}, event.Date{}, errs.Mark(fmt.Errorf("start: %w", err), errs.ErrInvalidInput)
	}
	end, err := event.ParseDate(r.End)
	if err != nil {
		return event.Date{}, event.Date{}, errs.Mark(fmt.Errorf("end: %w", err), errs.ErrInvalidInput)
	}
	return start, end, nil
}
