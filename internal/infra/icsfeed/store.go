package icsfeed

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"
	"time"

	"venue-calendar/internal/domain/event"
	"venue-calendar/internal/infra"
	"venue-calendar/internal/pkg/clock"
)

var errNoSnapshot = errors.New("no ICS snapshot loaded yet")

type Feed interface {
	Fetch(ctx context.Context) ([]byte, error)
	Source() string
}

type snapshot struct {
	byDate   map[event.Date][]event.Record
	loadedAt time.Time
}

// Store serves event reads from the last successfully parsed ICS payload.
// A snapshot older than maxAge is treated as unavailable.
type Store struct {
	feed   Feed
	loc    *time.Location
	maxAge time.Duration
	clock  clock.Clock

	refreshMu sync.Mutex

	mu      sync.RWMutex
	current *snapshot
	lastErr error
}

func NewStore(feed Feed, loc *time.Location, maxAge time.Duration, clk clock.Clock) *Store {
	if loc == nil {
		loc = time.UTC
	}
	if clk == nil {
		clk = clock.NewRealClock()
	}
	return &Store{feed: feed, loc: loc, maxAge: maxAge, clock: clk}
}

// Refresh fetches and parses the feed. On failure the previous snapshot is kept.
func (s *Store) Refresh(ctx context.Context) error {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	body, err := s.feed.Fetch(ctx)
	if err != nil {
		return s.fail("failed to fetch ICS feed", err)
	}

	parsed, err := Parse(bytes.NewReader(body), s.loc)
	if err != nil {
		return s.fail("failed to parse ICS feed", err)
	}
	for _, sk := range parsed.Skipped {
		slog.Debug("ICS event skipped", "uid", sk.UID, "reason", sk.Reason)
	}

	byDate := make(map[event.Date][]event.Record)
	for _, rec := range parsed.Records {
		byDate[rec.Date()] = append(byDate[rec.Date()], rec)
	}
	for d := range byDate {
		slices.SortFunc(byDate[d], event.ByStart)
	}

	s.mu.Lock()
	s.current = &snapshot{byDate: byDate, loadedAt: s.clock.Now()}
	s.lastErr = nil
	s.mu.Unlock()

	slog.Info("ICS feed refreshed",
		"source", s.feed.Source(),
		"events", len(parsed.Records),
		"skipped", len(parsed.Skipped),
	)
	return nil
}

func (s *Store) fail(msg string, err error) error {
	slog.Warn("ICS refresh failed", "source", s.feed.Source(), "error", err)
	s.mu.Lock()
	s.lastErr = err
	s.mu.Unlock()
	return infra.WrapRepoErr(msg, err, infra.KindSourceUnavailable)
}

// LoadedAt returns the zero time before the first successful refresh.
func (s *Store) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return time.Time{}
	}
	return s.current.loadedAt
}

func (s *Store) FindByDate(ctx context.Context, date event.Date) ([]event.Record, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return append([]event.Record(nil), snap.byDate[date]...), nil
}

func (s *Store) FindInRange(ctx context.Context, start, end event.Date) ([]event.Record, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	var out []event.Record
	for d := start; !d.After(end); d = d.AddDays(1) {
		out = append(out, snap.byDate[d]...)
	}
	return out, nil
}

func (s *Store) snapshot(ctx context.Context) (*snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, infra.WrapRepoErr("ICS read cancelled", err, infra.KindSourceUnavailable)
	}

	s.mu.RLock()
	snap, lastErr := s.current, s.lastErr
	s.mu.RUnlock()

	if snap == nil {
		if lastErr == nil {
			lastErr = errNoSnapshot
		}
		return nil, infra.WrapRepoErr("ICS feed not loaded", lastErr, infra.KindSourceUnavailable)
	}
	if s.maxAge > 0 {
		if age := s.clock.Now().Sub(snap.loadedAt); age > s.maxAge {
			cause := lastErr
			if cause == nil {
				cause = errors.New("snapshot age " + age.String())
			}
			return nil, infra.WrapRepoErr("ICS snapshot is stale", cause, infra.KindSourceUnavailable)
		}
	}
	return snap, nil
}
