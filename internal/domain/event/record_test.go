//go:build unit

package event_test

import (
	"testing"

	"venue-calendar/internal/domain/event"
	"venue-calendar/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecord(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewEventBuilder()
		rec, err := b.BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, b.ID.String(), rec.ID())
		assert.Equal(t, "2025-07-20", rec.Date().String())
		assert.Equal(t, "10:00", rec.Start().String())
		assert.Equal(t, "12:00", rec.End().String())
		assert.Equal(t, event.CategoryCorporate, rec.Category())
		assert.Equal(t, event.StatusConfirmed, rec.Status())
		assert.Equal(t, b.OrganizerID.String(), rec.OrganizerID())
		assert.Empty(t, rec.ClientID())
		assert.True(t, rec.IsActive())
		assert.False(t, rec.IsWedding())
	})

	valid := func() event.RecordParams {
		return event.RecordParams{
			ID:       "evt-1",
			Date:     event.NewDate(2025, 7, 20),
			Slot:     mustRange(t, "10:00", "12:00"),
			Category: event.CategoryParty,
			Status:   event.StatusPending,
		}
	}

	cases := []struct {
		name   string
		mutate func(*event.RecordParams)
		errIs  error
	}{
		{name: "blank id", mutate: func(p *event.RecordParams) { p.ID = "  " }, errIs: event.ErrEmptyID},
		{name: "zero date", mutate: func(p *event.RecordParams) { p.Date = event.Date{} }, errIs: event.ErrInvalidDate},
		{name: "zero slot", mutate: func(p *event.RecordParams) { p.Slot = event.TimeRange{} }, errIs: event.ErrInvalidTimeRange},
		{name: "unknown status", mutate: func(p *event.RecordParams) { p.Status = "archived" }, errIs: event.ErrUnknownStatus},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := valid()
			tc.mutate(&p)
			_, err := event.NewRecord(p)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}

	t.Run("free text category is normalized", func(t *testing.T) {
		p := valid()
		p.Category = "Wedding Reception"
		rec, err := event.NewRecord(p)
		require.NoError(t, err)
		assert.True(t, rec.IsWedding())
	})

	t.Run("cancelled is inactive", func(t *testing.T) {
		rec := builder.NewEventBuilder().Cancelled().MustBuildDomain()
		assert.True(t, rec.IsCancelled())
		assert.False(t, rec.IsActive())
	})
}

func TestByStart(t *testing.T) {
	early := builder.NewEventBuilder().At("09:00", "10:00").MustBuildDomain()
	late := builder.NewEventBuilder().At("11:00", "12:00").MustBuildDomain()
	tieA := builder.NewEventBuilder().With(func(b *builder.EventBuilder) { b.ID[0] = 0x00 }).At("10:00", "11:00").MustBuildDomain()
	tieB := builder.NewEventBuilder().With(func(b *builder.EventBuilder) { b.ID[0] = 0xff }).At("10:00", "13:00").MustBuildDomain()

	assert.Negative(t, event.ByStart(early, late))
	assert.Positive(t, event.ByStart(late, early))
	assert.Negative(t, event.ByStart(tieA, tieB), "ties break on id")
	assert.Zero(t, event.ByStart(early, early))
}
