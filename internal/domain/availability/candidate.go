package availability

import (
	"errors"

	"venue-calendar/internal/domain/event"
)

// ErrBadWindow means the candidate lacks a date or its start is not before its end.
var ErrBadWindow = errors.New("candidate needs a date and a start before its end")

// Candidate is a proposed booking window that has not been committed.
type Candidate struct {
	date      event.Date
	slot      event.TimeRange
	category  event.Category
	excludeID string
}

// NewCandidate rejects zero-length or inverted windows; they are never evaluated.
func NewCandidate(date event.Date, start, end event.TimeOfDay, category event.Category, excludeID string) (Candidate, error) {
	if date.IsZero() {
		return Candidate{}, errors.Join(ErrBadWindow, event.ErrInvalidDate)
	}
	slot, err := event.NewTimeRange(start, end)
	if err != nil {
		return Candidate{}, errors.Join(ErrBadWindow, err)
	}
	if category == "" {
		category = event.CategoryOther
	}
	if !category.IsValid() {
		category = event.NormalizeCategory(string(category))
	}
	return Candidate{
		date:      date,
		slot:      slot,
		category:  category,
		excludeID: excludeID,
	}, nil
}

func (c Candidate) Date() event.Date         { return c.date }
func (c Candidate) Slot() event.TimeRange    { return c.slot }
func (c Candidate) Category() event.Category { return c.category }
func (c Candidate) ExcludeID() string        { return c.excludeID }
func (c Candidate) IsWedding() bool          { return c.category.IsWedding() }

// excludes reports whether rec is the event being edited.
func (c Candidate) excludes(rec event.Record) bool {
	return c.excludeID != "" && rec.ID() == c.excludeID
}
