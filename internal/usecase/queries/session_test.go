//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"venue-calendar/internal/domain/availability"
	"venue-calendar/internal/domain/calendar"
	"venue-calendar/internal/domain/event"
	"venue-calendar/internal/pkg/errs"
	"venue-calendar/internal/usecase/queries"
	queriesmock "venue-calendar/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newSessionQueries(t *testing.T) (queries.SessionQueries, *queriesmock.MockAvailabilityQueries) {
	t.Helper()
	ctrl := gomock.NewController(t)
	inner := queriesmock.NewMockAvailabilityQueries(ctrl)
	q := queries.NewSessionQueries(inner, maxRangeDays, queries.CoordinatorOptions{Timeout: time.Second})
	t.Cleanup(q.Close)
	return q, inner
}

func TestSessionQueries_CheckConflict(t *testing.T) {
	t.Run("no session: delegated without coordination", func(t *testing.T) {
		q, inner := newSessionQueries(t)
		p := params(t, "2025-07-20", "10:00", "11:00", "")
		inner.EXPECT().CheckConflict(gomock.Any(), p).Return(&queries.ConflictCheck{}, nil).Times(1)

		got, err := q.CheckConflict(context.Background(), "", p)

		require.NoError(t, err)
		assert.Zero(t, got.Seq)
	})

	t.Run("session: result carries its sequence number", func(t *testing.T) {
		q, inner := newSessionQueries(t)
		p := params(t, "2025-07-20", "10:00", "11:00", "")
		inner.EXPECT().CheckConflict(gomock.Any(), p).Return(&queries.ConflictCheck{Verdict: availability.Verdict{}}, nil)

		got, err := q.CheckConflict(context.Background(), "tab-1", p)

		require.NoError(t, err)
		assert.NotZero(t, got.Seq)
	})

	t.Run("session: invalid window rejected before coordination", func(t *testing.T) {
		q, _ := newSessionQueries(t)

		_, err := q.CheckConflict(context.Background(), "tab-1", params(t, "2025-07-20", "11:00", "10:00", ""))

		assert.True(t, errs.Is(err, errs.ErrInvalidCandidate))
	})

	t.Run("session: superseded request is discarded", func(t *testing.T) {
		q, inner := newSessionQueries(t)
		slow := params(t, "2025-07-20", "10:00", "11:00", "")
		fast := params(t, "2025-07-20", "10:00", "12:00", "")

		started := make(chan struct{})
		inner.EXPECT().CheckConflict(gomock.Any(), slow).
			DoAndReturn(func(ctx context.Context, _ queries.CheckConflictParams) (*queries.ConflictCheck, error) {
				close(started)
				<-ctx.Done()
				return nil, ctx.Err()
			})
		inner.EXPECT().CheckConflict(gomock.Any(), fast).
			Return(&queries.ConflictCheck{Verdict: availability.Verdict{HasConflict: true}}, nil)

		done := make(chan error, 1)
		go func() {
			_, err := q.CheckConflict(context.Background(), "tab-1", slow)
			done <- err
		}()
		<-started

		got, err := q.CheckConflict(context.Background(), "tab-1", fast)
		require.NoError(t, err)
		assert.True(t, got.Verdict.HasConflict)

		select {
		case err := <-done:
			assert.ErrorIs(t, err, errs.ErrStaleResultDiscarded)
		case <-time.After(2 * time.Second):
			t.Fatal("superseded request never returned")
		}
	})

	t.Run("sessions do not interfere", func(t *testing.T) {
		q, inner := newSessionQueries(t)
		p := params(t, "2025-07-20", "10:00", "11:00", "")
		inner.EXPECT().CheckConflict(gomock.Any(), p).Return(&queries.ConflictCheck{}, nil).Times(2)

		_, err := q.CheckConflict(context.Background(), "tab-1", p)
		require.NoError(t, err)
		_, err = q.CheckConflict(context.Background(), "tab-2", p)
		require.NoError(t, err)
	})
}

func TestSessionQueries_CalendarAggregates(t *testing.T) {
	start := event.NewDate(2025, 7, 1)
	end := event.NewDate(2025, 7, 31)

	t.Run("session: result carries its sequence number", func(t *testing.T) {
		q, inner := newSessionQueries(t)
		r, err := calendar.NewDateRange(start, end, 0)
		require.NoError(t, err)
		inner.EXPECT().CalendarAggregates(gomock.Any(), start, end).Return(&queries.CalendarView{Grid: calendar.NewGrid(r, nil)}, nil)

		view, err := q.CalendarAggregates(context.Background(), "tab-1", start, end)

		require.NoError(t, err)
		assert.NotZero(t, view.Seq)
		assert.Len(t, view.Grid.Days, 31)
	})

	t.Run("session: invalid range rejected before coordination", func(t *testing.T) {
		q, _ := newSessionQueries(t)

		_, err := q.CalendarAggregates(context.Background(), "tab-1", end, start)

		assert.True(t, errs.Is(err, errs.ErrInvalidRange))
	})

	t.Run("errors pass through", func(t *testing.T) {
		q, inner := newSessionQueries(t)
		inner.EXPECT().CalendarAggregates(gomock.Any(), start, end).Return(nil, errs.Mark(assert.AnError, errs.ErrRepositoryUnavailable))

		_, err := q.CalendarAggregates(context.Background(), "tab-1", start, end)

		assert.True(t, errs.Is(err, errs.ErrRepositoryUnavailable))
	})

	t.Run("closed", func(t *testing.T) {
		q, _ := newSessionQueries(t)
		q.Close()

		_, err := q.CalendarAggregates(context.Background(), "tab-1", start, end)

		assert.ErrorIs(t, err, errs.ErrCoordinatorClosed)
	})
}
