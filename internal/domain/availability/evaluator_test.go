//go:build unit

package availability_test

import (
	"testing"

	"venue-calendar/internal/domain/availability"
	"venue-calendar/internal/domain/event"
	"venue-calendar/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidate(t *testing.T, date, start, end string, category event.Category, exclude string) availability.Candidate {
	t.Helper()
	d, err := event.ParseDate(date)
	require.NoError(t, err)
	s, err := event.ParseTimeOfDay(start)
	require.NoError(t, err)
	e, err := event.ParseTimeOfDay(end)
	require.NoError(t, err)
	c, err := availability.NewCandidate(d, s, e, category, exclude)
	require.NoError(t, err)
	return c
}

func ids(recs []event.Record) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.ID()
	}
	return out
}

func TestEvaluate_Scenarios(t *testing.T) {
	t.Run("wedding blocks the whole day even outside its hours", func(t *testing.T) {
		wedding := builder.NewEventBuilder().On("2025-07-11").At("09:00", "17:00").Wedding().MustBuildDomain()

		v, err := availability.Evaluate(candidate(t, "2025-07-11", "18:00", "20:00", event.CategoryParty, ""), []event.Record{wedding})
		require.NoError(t, err)

		assert.True(t, v.HasConflict)
		assert.True(t, v.HasWeddingConflict)
		assert.False(t, v.HasOrdinaryConflict)
		assert.Equal(t, []availability.Rule{availability.RuleWeddingExclusivity}, v.Rules)
		assert.Equal(t, []string{wedding.ID()}, ids(v.OverlappingEvents))
	})

	t.Run("wedding candidate on an empty day", func(t *testing.T) {
		v, err := availability.Evaluate(candidate(t, "2025-07-20", "10:00", "20:00", event.CategoryWedding, ""), nil)
		require.NoError(t, err)

		assert.False(t, v.HasConflict)
		assert.True(t, v.IsAvailable())
		assert.Empty(t, v.Rules)
		assert.Empty(t, v.OverlappingEvents)
	})

	t.Run("adjacent ordinary events do not conflict", func(t *testing.T) {
		existing := builder.NewEventBuilder().On("2025-07-20").At("10:00", "12:00").MustBuildDomain()

		v, err := availability.Evaluate(candidate(t, "2025-07-20", "12:00", "14:00", event.CategoryOther, ""), []event.Record{existing})
		require.NoError(t, err)

		assert.False(t, v.HasConflict)
		assert.False(t, v.HasOrdinaryConflict)
	})

	t.Run("overlapping ordinary event is reported", func(t *testing.T) {
		existing := builder.NewEventBuilder().On("2025-07-20").At("10:00", "12:00").MustBuildDomain()

		v, err := availability.Evaluate(candidate(t, "2025-07-20", "11:00", "13:00", event.CategoryOther, ""), []event.Record{existing})
		require.NoError(t, err)

		assert.True(t, v.HasConflict)
		assert.True(t, v.HasOrdinaryConflict)
		assert.False(t, v.HasWeddingConflict)
		assert.True(t, v.Violates(availability.RuleTimeOverlap))
		assert.Equal(t, []string{existing.ID()}, ids(v.OverlappingEvents))
	})
}

func TestEvaluate_WeddingCandidate(t *testing.T) {
	morning := builder.NewEventBuilder().On("2025-07-20").At("08:00", "09:00").MustBuildDomain()
	evening := builder.NewEventBuilder().On("2025-07-20").At("21:00", "23:00").MustBuildDomain()

	v, err := availability.Evaluate(candidate(t, "2025-07-20", "12:00", "18:00", event.CategoryWedding, ""), []event.Record{evening, morning})
	require.NoError(t, err)

	assert.True(t, v.HasConflict)
	assert.True(t, v.HasOrdinaryConflict)
	assert.False(t, v.HasWeddingConflict)
	assert.Equal(t, []availability.Rule{availability.RuleWeddingSharing}, v.Rules)
	assert.Equal(t, []string{morning.ID(), evening.ID()}, ids(v.OverlappingEvents), "every same-day event is responsible, ordered by start")

	t.Run("against an existing wedding both rules fire", func(t *testing.T) {
		wedding := builder.NewEventBuilder().On("2025-07-20").At("10:00", "16:00").Wedding().MustBuildDomain()

		v, err := availability.Evaluate(candidate(t, "2025-07-20", "17:00", "22:00", event.CategoryWedding, ""), []event.Record{wedding})
		require.NoError(t, err)

		assert.True(t, v.HasWeddingConflict)
		assert.True(t, v.HasOrdinaryConflict)
		assert.Equal(t, []availability.Rule{availability.RuleWeddingExclusivity, availability.RuleWeddingSharing}, v.Rules)
		assert.Len(t, v.OverlappingEvents, 1, "responsible events are de-duplicated")
	})
}

func TestEvaluate_Filtering(t *testing.T) {
	editing := builder.NewEventBuilder().On("2025-07-20").At("10:00", "12:00").MustBuildDomain()
	cancelledWedding := builder.NewEventBuilder().On("2025-07-20").At("09:00", "17:00").Wedding().Cancelled().MustBuildDomain()
	otherDay := builder.NewEventBuilder().On("2025-07-21").At("10:00", "12:00").Wedding().MustBuildDomain()

	v, err := availability.Evaluate(
		candidate(t, "2025-07-20", "10:30", "11:30", event.CategoryOther, editing.ID()),
		[]event.Record{editing, cancelledWedding, otherDay},
	)
	require.NoError(t, err)

	assert.False(t, v.HasConflict, "self, cancelled and other-day events are ignored")
	assert.NotContains(t, ids(v.OverlappingEvents), editing.ID())
}

func TestEvaluate_OrderingAndTies(t *testing.T) {
	a := builder.NewEventBuilder().With(func(b *builder.EventBuilder) { b.ID[0] = 0x10 }).At("11:00", "13:00").MustBuildDomain()
	b := builder.NewEventBuilder().With(func(b *builder.EventBuilder) { b.ID[0] = 0x01 }).At("11:00", "12:00").MustBuildDomain()
	c := builder.NewEventBuilder().At("09:00", "11:30").MustBuildDomain()
	far := builder.NewEventBuilder().At("15:00", "16:00").MustBuildDomain()

	v, err := availability.Evaluate(candidate(t, "2025-07-20", "11:00", "12:00", event.CategoryBirthday, ""), []event.Record{a, far, b, c})
	require.NoError(t, err)

	assert.Equal(t, []string{c.ID(), b.ID(), a.ID()}, ids(v.OverlappingEvents))
}

func TestEvaluate_Properties(t *testing.T) {
	day := "2025-08-02"
	wedding := builder.NewEventBuilder().On(day).At("13:00", "15:00").Wedding().MustBuildDomain()

	t.Run("wedding exclusivity holds for every window", func(t *testing.T) {
		for start := event.TimeOfDay(0); start < event.EndOfDay; start += 60 {
			c, err := availability.NewCandidate(wedding.Date(), start, start+60, event.CategoryOther, "")
			require.NoError(t, err)
			v, err := availability.Evaluate(c, []event.Record{wedding})
			require.NoError(t, err)
			assert.True(t, v.HasWeddingConflict, "window %s", c.Slot())
		}
	})

	t.Run("self exclusion never reports the excluded event", func(t *testing.T) {
		recs := []event.Record{
			wedding,
			builder.NewEventBuilder().On(day).At("09:00", "10:00").MustBuildDomain(),
			builder.NewEventBuilder().On(day).At("09:30", "11:00").MustBuildDomain(),
		}
		for _, excluded := range recs {
			for _, cat := range []event.Category{event.CategoryOther, event.CategoryWedding} {
				v, err := availability.Evaluate(candidate(t, day, "09:00", "16:00", cat, excluded.ID()), recs)
				require.NoError(t, err)
				assert.NotContains(t, ids(v.OverlappingEvents), excluded.ID())
			}
		}
	})

	t.Run("conflict flag is the union of both flags", func(t *testing.T) {
		for _, cat := range event.Categories() {
			v, err := availability.Evaluate(candidate(t, day, "12:00", "14:00", cat, ""), []event.Record{wedding})
			require.NoError(t, err)
			assert.Equal(t, v.HasWeddingConflict || v.HasOrdinaryConflict, v.HasConflict)
		}
	})
}

func TestNewCandidate(t *testing.T) {
	d := event.NewDate(2025, 7, 20)

	_, err := availability.NewCandidate(d, 600, 600, event.CategoryOther, "")
	assert.ErrorIs(t, err, availability.ErrBadWindow)
	assert.ErrorIs(t, err, event.ErrInvalidTimeRange)

	_, err = availability.NewCandidate(d, 720, 600, event.CategoryOther, "")
	assert.ErrorIs(t, err, availability.ErrBadWindow)

	_, err = availability.NewCandidate(event.Date{}, 600, 720, event.CategoryOther, "")
	assert.ErrorIs(t, err, availability.ErrBadWindow)

	c, err := availability.NewCandidate(d, 600, 720, "", "")
	require.NoError(t, err)
	assert.Equal(t, event.CategoryOther, c.Category())

	c, err = availability.NewCandidate(d, 600, 720, "Wedding Ceremony", "evt-9")
	require.NoError(t, err)
	assert.True(t, c.IsWedding())
	assert.Equal(t, "evt-9", c.ExcludeID())

	_, err = availability.Evaluate(availability.Candidate{}, nil)
	assert.ErrorIs(t, err, availability.ErrBadWindow)
}
