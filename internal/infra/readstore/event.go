package readstore

import (
	"context"
	"log/slog"

	"venue-calendar/internal/domain/event"
	"venue-calendar/internal/infra"
	"venue-calendar/internal/infra/converter"
	sqlc "venue-calendar/internal/infra/sqlc/generated"

	"github.com/jackc/pgx/v5/pgtype"
)

type EventReadQueries interface {
	ListEventsByDate(ctx context.Context, db sqlc.DBTX, eventDate pgtype.Date) ([]sqlc.Events, error)
	ListEventsInRange(ctx context.Context, db sqlc.DBTX, arg sqlc.ListEventsInRangeParams) ([]sqlc.Events, error)
}

type EventReadStore struct {
	queries EventReadQueries
	db      sqlc.DBTX
}

func NewEventReadStore(queries EventReadQueries, db sqlc.DBTX) *EventReadStore {
	return &EventReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *EventReadStore) FindByDate(ctx context.Context, date event.Date) ([]event.Record, error) {
	rows, err := r.queries.ListEventsByDate(ctx, r.db, converter.DateToInfra(date))
	if err != nil {
		slog.Error("Repository error: failed to list events by date", "date", date.String(), "error", err)
		return nil, infra.WrapRepoErr("failed to list events by date", err)
	}
	return rowsToRecords(rows)
}

func (r *EventReadStore) FindInRange(ctx context.Context, start, end event.Date) ([]event.Record, error) {
	params := sqlc.ListEventsInRangeParams{
		StartDate: converter.DateToInfra(start),
		EndDate:   converter.DateToInfra(end),
	}

	rows, err := r.queries.ListEventsInRange(ctx, r.db, params)
	if err != nil {
		slog.Error("Repository error: failed to list events in range", "start", start.String(), "end", end.String(), "error", err)
		return nil, infra.WrapRepoErr("failed to list events in range", err)
	}
	return rowsToRecords(rows)
}

func rowsToRecords(rows []sqlc.Events) ([]event.Record, error) {
	result := make([]event.Record, 0, len(rows))
	for _, row := range rows {
		rec, err := converter.EventFromInfra(row)
		if err != nil {
			return nil, infra.WrapRepoErr("malformed event row", err, infra.KindInvalidRecord)
		}
		result = append(result, rec)
	}
	return result, nil
}
