//go:build unit

package readstore

import (
	"context"
	"testing"

	"venue-calendar/internal/domain/event"
	"venue-calendar/internal/infra"
	sqlc "venue-calendar/internal/infra/sqlc/generated"
	"venue-calendar/internal/pkg/pgconv"
	"venue-calendar/tests/common/builder"
	readstoremock "venue-calendar/tests/mock/readstore"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestEventReadStore_FindByDate(t *testing.T) {
	day := event.NewDate(2025, 7, 11)
	wedding := builder.NewEventBuilder().On("2025-07-11").At("09:00", "17:00").Wedding().BuildInfra()
	dinner := builder.NewEventBuilder().On("2025-07-11").At("18:00", "24:00").With(func(b *builder.EventBuilder) {
		b.EventType = "Rehearsal Dinner Party"
		b.OrganizerID = nil
	}).BuildInfra()

	broken := builder.NewEventBuilder().On("2025-07-11").BuildInfra()
	broken.StartTime = pgtype.Time{}

	tests := []struct {
		name       string
		rows       []sqlc.Events
		queryErr   error
		wantIDs    []string
		wantKind   infra.RepositoryErrorKind
		wantErrMsg string
	}{
		{
			name:    "success - rows converted in query order",
			rows:    []sqlc.Events{wedding, dinner},
			wantIDs: []string{wedding.ID.String(), dinner.ID.String()},
		},
		{
			name:    "success - empty day",
			rows:    nil,
			wantIDs: []string{},
		},
		{
			name:     "database error",
			queryErr: assert.AnError,
			wantKind: infra.KindDBFailure,
		},
		{
			name:       "malformed row",
			rows:       []sqlc.Events{wedding, broken},
			wantKind:   infra.KindInvalidRecord,
			wantErrMsg: broken.ID.String(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockEventReadQueries(ctrl)
			mockQueries.EXPECT().
				ListEventsByDate(gomock.Any(), gomock.Nil(), pgconv.DateToPgtype(day.Time())).
				Return(tt.rows, tt.queryErr).
				Times(1)

			store := NewEventReadStore(mockQueries, nil)

			records, err := store.FindByDate(context.Background(), day)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.Nil(t, records)
				assert.True(t, infra.IsKind(err, tt.wantKind), "got kind %q", infra.KindOf(err))
				if tt.wantErrMsg != "" {
					assert.Contains(t, err.Error(), tt.wantErrMsg)
				}
				return
			}

			require.NoError(t, err)
			ids := make([]string, 0, len(records))
			for _, rec := range records {
				ids = append(ids, rec.ID())
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}

	t.Run("free-text types are normalized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockEventReadQueries(ctrl)
		mockQueries.EXPECT().ListEventsByDate(gomock.Any(), gomock.Any(), gomock.Any()).Return([]sqlc.Events{wedding, dinner}, nil)

		records, err := NewEventReadStore(mockQueries, nil).FindByDate(context.Background(), day)
		require.NoError(t, err)
		require.Len(t, records, 2)

		assert.True(t, records[0].IsWedding())
		assert.Equal(t, event.CategoryParty, records[1].Category())
		assert.Equal(t, event.EndOfDay, records[1].End())
		assert.Empty(t, records[1].OrganizerID())
	})
}

func TestEventReadStore_FindInRange(t *testing.T) {
	start := event.NewDate(2025, 7, 1)
	end := event.NewDate(2025, 7, 31)
	row := builder.NewEventBuilder().On("2025-07-03").BuildInfra()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockEventReadQueries(ctrl)
		mockQueries.EXPECT().
			ListEventsInRange(gomock.Any(), gomock.Any(), sqlc.ListEventsInRangeParams{
				StartDate: pgconv.DateToPgtype(start.Time()),
				EndDate:   pgconv.DateToPgtype(end.Time()),
			}).
			Return([]sqlc.Events{row}, nil)

		records, err := NewEventReadStore(mockQueries, nil).FindInRange(context.Background(), start, end)

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, row.ID.String(), records[0].ID())
		assert.Equal(t, "2025-07-03", records[0].Date().String())
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockEventReadQueries(ctrl)
		mockQueries.EXPECT().ListEventsInRange(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, context.DeadlineExceeded)

		records, err := NewEventReadStore(mockQueries, nil).FindInRange(context.Background(), start, end)

		assert.Nil(t, records)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}
