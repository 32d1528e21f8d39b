//go:build unit || e2e

package builder

import (
	"fmt"
	"time"

	"venue-calendar/internal/domain/event"
	sqlc "venue-calendar/internal/infra/sqlc/generated"
	"venue-calendar/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type EventBuilder struct {
	ID          uuid.UUID
	Title       string
	Date        string
	Start       string
	End         string
	EventType   string
	Status      string
	OrganizerID *uuid.UUID
	ClientID    *uuid.UUID
	CreatedAt   time.Time
}

func NewEventBuilder() *EventBuilder {
	organizer := uuid.New()
	return &EventBuilder{
		ID:          uuid.New(),
		Title:       "Quarterly offsite",
		Date:        "2025-07-20",
		Start:       "10:00",
		End:         "12:00",
		EventType:   string(event.CategoryCorporate),
		Status:      string(event.StatusConfirmed),
		OrganizerID: &organizer,
		CreatedAt:   time.Now(),
	}
}

func (b *EventBuilder) With(mutate func(*EventBuilder)) *EventBuilder {
	mutate(b)
	return b
}

func (b *EventBuilder) On(date string) *EventBuilder {
	b.Date = date
	return b
}

func (b *EventBuilder) At(start, end string) *EventBuilder {
	b.Start, b.End = start, end
	return b
}

func (b *EventBuilder) Wedding() *EventBuilder {
	b.EventType = string(event.CategoryWedding)
	b.Title = "Wedding reception"
	return b
}

func (b *EventBuilder) Cancelled() *EventBuilder {
	b.Status = string(event.StatusCancelled)
	return b
}

// Build methods
func (b *EventBuilder) BuildDomain() (event.Record, error) {
	date, err := event.ParseDate(b.Date)
	if err != nil {
		return event.Record{}, err
	}
	start, err := event.ParseTimeOfDay(b.Start)
	if err != nil {
		return event.Record{}, err
	}
	end, err := event.ParseTimeOfDay(b.End)
	if err != nil {
		return event.Record{}, err
	}
	slot, err := event.NewTimeRange(start, end)
	if err != nil {
		return event.Record{}, err
	}
	status, err := event.ParseStatus(b.Status)
	if err != nil {
		return event.Record{}, err
	}
	params := event.RecordParams{
		ID:       b.ID.String(),
		Date:     date,
		Slot:     slot,
		Category: event.NormalizeCategory(b.EventType),
		Status:   status,
		Title:    b.Title,
	}
	if b.OrganizerID != nil {
		params.OrganizerID = b.OrganizerID.String()
	}
	if b.ClientID != nil {
		params.ClientID = b.ClientID.String()
	}
	return event.NewRecord(params)
}

// MustBuildDomain panics on invalid builder state; for table setup only.
func (b *EventBuilder) MustBuildDomain() event.Record {
	rec, err := b.BuildDomain()
	if err != nil {
		panic(fmt.Sprintf("EventBuilder: %v", err))
	}
	return rec
}

func (b *EventBuilder) BuildInfra() sqlc.Events {
	date, _ := time.Parse(event.DateLayout, b.Date)
	start, _ := event.ParseTimeOfDay(b.Start)
	end, _ := event.ParseTimeOfDay(b.End)

	return sqlc.Events{
		ID:          b.ID,
		Title:       b.Title,
		EventType:   b.EventType,
		Status:      b.Status,
		EventDate:   pgconv.DateToPgtype(date),
		StartTime:   pgconv.MinutesToPgtime(int(start)),
		EndTime:     pgconv.MinutesToPgtime(int(end)),
		OrganizerID: pgconv.UUIDPtrToPgtype(b.OrganizerID),
		ClientID:    pgconv.UUIDPtrToPgtype(b.ClientID),
		CreatedAt:   pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:   pgconv.TimeToPgtype(b.CreatedAt),
	}
}
