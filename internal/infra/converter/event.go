package converter

import (
	"fmt"
	"log/slog"

	"venue-calendar/internal/domain/event"
	sqlc "venue-calendar/internal/infra/sqlc/generated"
	"venue-calendar/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

// EventFromInfra turns a stored row into a validated record. Free-text event
// types are normalized onto the closed category set here. An unknown status is
// read as pending so the row still counts against availability.
func EventFromInfra(row sqlc.Events) (event.Record, error) {
	day, err := pgconv.DateFromPgtype(row.EventDate)
	if err != nil {
		return event.Record{}, fmt.Errorf("event %s: %w", row.ID, err)
	}

	slot, err := slotFromInfra(row.StartTime, row.EndTime)
	if err != nil {
		return event.Record{}, fmt.Errorf("event %s: %w", row.ID, err)
	}

	status, err := event.ParseStatus(row.Status)
	if err != nil {
		slog.Warn("unknown event status, treating as pending", "event_id", row.ID.String(), "status", row.Status)
		status = event.StatusPending
	}

	return event.NewRecord(event.RecordParams{
		ID:          row.ID.String(),
		Date:        event.DateOf(day),
		Slot:        slot,
		Category:    event.NormalizeCategory(row.EventType),
		Status:      status,
		Title:       row.Title,
		OrganizerID: pgconv.UUIDStringFromPgtype(row.OrganizerID),
		ClientID:    pgconv.UUIDStringFromPgtype(row.ClientID),
	})
}

func DateToInfra(d event.Date) pgtype.Date {
	return pgconv.DateToPgtype(d.Time())
}

func slotFromInfra(start, end pgtype.Time) (event.TimeRange, error) {
	startMin, err := pgconv.MinutesFromPgtime(start)
	if err != nil {
		return event.TimeRange{}, err
	}
	endMin, err := pgconv.MinutesFromPgtime(end)
	if err != nil {
		return event.TimeRange{}, err
	}
	return event.NewTimeRange(event.TimeOfDay(startMin), event.TimeOfDay(endMin))
}
