//go:build unit

package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMockClock_AfterFunc(t *testing.T) {
	start := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	c := NewMockClock(start)

	var fired []string
	c.AfterFunc(300*time.Millisecond, func() { fired = append(fired, "late") })
	c.AfterFunc(100*time.Millisecond, func() { fired = append(fired, "early") })
	stopped := c.AfterFunc(200*time.Millisecond, func() { fired = append(fired, "stopped") })

	assert.Equal(t, 3, c.PendingTimers())
	assert.True(t, stopped.Stop())
	assert.False(t, stopped.Stop())

	c.Add(99 * time.Millisecond)
	assert.Empty(t, fired)

	c.Add(time.Second)
	assert.Equal(t, []string{"early", "late"}, fired)
	assert.Zero(t, c.PendingTimers())
	assert.Equal(t, start.Add(1099*time.Millisecond), c.Now())
}

func TestMockClock_StopAfterFire(t *testing.T) {
	c := NewMockClock(time.Time{})
	tm := c.AfterFunc(0, func() {})

	c.Add(0)

	assert.False(t, tm.Stop())
}
