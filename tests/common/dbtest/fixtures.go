//go:build unit || e2e

package dbtest

import (
	"context"
	"strings"
	"testing"
	"time"

	sqlc "venue-calendar/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by both pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// tables written by the back office; the service itself never writes
var resetTables = []string{"events"}

// InsertEvent writes a row as the back office would.
func InsertEvent(t *testing.T, db DBLike, row sqlc.Events) uuid.UUID {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO events (id, title, event_type, status, event_date, start_time, end_time, organizer_id, client_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		row.ID, row.Title, row.EventType, row.Status, row.EventDate, row.StartTime, row.EndTime, row.OrganizerID, row.ClientID)
	require.NoError(t, err)

	return row.ID
}

// UpdateEventStatus simulates a back-office status change.
func UpdateEventStatus(t *testing.T, db DBLike, id uuid.UUID, status string) {
	t.Helper()

	tag, err := db.Exec(context.Background(), "UPDATE events SET status = $2, updated_at = now() WHERE id = $1", id, status)
	require.NoError(t, err)
	require.Equal(t, int64(1), tag.RowsAffected())
}

func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE "+strings.Join(resetTables, ", "))
	return err
}
