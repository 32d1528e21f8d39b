//go:build unit

package calendar_test

import (
	"testing"

	"venue-calendar/internal/domain/calendar"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeatFor(t *testing.T) {
	tests := []struct {
		name       string
		count      int
		hasWedding bool
		want       calendar.HeatLevel
	}{
		{"empty day", 0, false, calendar.HeatFree},
		{"one event", 1, false, calendar.HeatLow},
		{"two events", 2, false, calendar.HeatMedium},
		{"three events", 3, false, calendar.HeatHigh},
		{"busy day", 9, false, calendar.HeatHigh},
		{"lone wedding", 1, true, calendar.HeatBlocked},
		{"wedding beats count", 5, true, calendar.HeatBlocked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calendar.HeatFor(tt.count, tt.hasWedding))
		})
	}
}

func TestHeatFor_Monotonic(t *testing.T) {
	prev := calendar.HeatFor(0, false)
	for n := 1; n <= 10; n++ {
		level := calendar.HeatFor(n, false)
		assert.GreaterOrEqual(t, level, prev, "count %d", n)
		assert.NotEqual(t, calendar.HeatBlocked, level)
		prev = level
	}
}

func TestHeatLevel_Text(t *testing.T) {
	for _, level := range calendar.HeatLevels() {
		b, err := level.MarshalText()
		require.NoError(t, err)

		var got calendar.HeatLevel
		require.NoError(t, got.UnmarshalText(b))
		assert.Equal(t, level, got)
	}

	assert.Equal(t, "blocked", calendar.HeatBlocked.String())
	assert.Equal(t, "HeatLevel(42)", calendar.HeatLevel(42).String())

	_, err := calendar.ParseHeatLevel("scorching")
	assert.Error(t, err)
}
