//go:build unit

package event_test

import (
	"testing"

	"venue-calendar/internal/domain/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCategory(t *testing.T) {
	cases := map[string]event.Category{
		"wedding":               event.CategoryWedding,
		"Wedding":               event.CategoryWedding,
		"WEDDING_RECEPTION":     event.CategoryWedding,
		"wedding-ceremony":      event.CategoryWedding,
		"  Garden   Wedding":    event.CategoryWedding,
		"marriage":              event.CategoryWedding,
		"Corporate Event":       event.CategoryCorporate,
		"team_building":         event.CategoryCorporate,
		"birthday party":        event.CategoryBirthday,
		"debut":                 event.CategoryBirthday,
		"Seminar":               event.CategoryConference,
		"tech conference":       event.CategoryConference,
		"reunion":               event.CategoryParty,
		"cocktail party":        event.CategoryParty,
		"":                      event.CategoryOther,
		"bar mitzvah":           event.CategoryOther,
		"other":                 event.CategoryOther,
		"Smith-Jones Wedding":   event.CategoryWedding,
		"non-wedding rehearsal": event.CategoryOther,
		"pre-wedding shoot":     event.CategoryOther,
		"wedding rehearsal":     event.CategoryOther,
		"post wedding":          event.CategoryOther,
		"weddingcake tasting":   event.CategoryOther,
		"partyless brunch":      event.CategoryOther,
	}
	for raw, want := range cases {
		t.Run(raw, func(t *testing.T) {
			assert.Equal(t, want, event.NormalizeCategory(raw))
		})
	}
}

func TestCategory_ClosedSet(t *testing.T) {
	all := event.Categories()
	require.Len(t, all, 6)
	for _, c := range all {
		assert.True(t, c.IsValid(), c)
		assert.Equal(t, c, event.NormalizeCategory(string(c)), "canonical names normalize to themselves")
	}
	assert.False(t, event.Category("gala").IsValid())

	// callers cannot mutate the package list
	all[0] = "gala"
	assert.Equal(t, event.CategoryWedding, event.Categories()[0])

	assert.True(t, event.CategoryWedding.IsWedding())
	assert.False(t, event.CategoryParty.IsWedding())
}

func TestParseStatus(t *testing.T) {
	cases := map[string]event.Status{
		"pending":      event.StatusPending,
		"TENTATIVE":    event.StatusPending,
		"needs-action": event.StatusPending,
		"confirmed":    event.StatusConfirmed,
		"Approved":     event.StatusConfirmed,
		"booked":       event.StatusConfirmed,
		"done":         event.StatusCompleted,
		"completed":    event.StatusCompleted,
		"cancelled":    event.StatusCancelled,
		"CANCELED":     event.StatusCancelled,
		" rejected ":   event.StatusCancelled,
	}
	for raw, want := range cases {
		t.Run(raw, func(t *testing.T) {
			got, err := event.ParseStatus(raw)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}

	_, err := event.ParseStatus("archived")
	assert.ErrorIs(t, err, event.ErrUnknownStatus)

	assert.True(t, event.StatusCancelled.IsCancelled())
	assert.False(t, event.StatusPending.IsCancelled())
	assert.False(t, event.Status("").IsValid())
}
