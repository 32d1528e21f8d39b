package coordinator

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"venue-calendar/internal/pkg/clock"
	"venue-calendar/internal/pkg/errs"
)

type State int

const (
	StateIdle State = iota
	StatePending
	StateInFlight
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateInFlight:
		return "in_flight"
	default:
		return "idle"
	}
}

// Result is the outcome of one request. Seq is unique across the coordinator
// and grows with every Submit.
type Result[T any] struct {
	Seq   uint64
	Value T
	Err   error
}

type FetchFunc[T any] func(ctx context.Context) (T, error)

type Options struct {
	Name     string
	Debounce time.Duration
	Timeout  time.Duration
	Clock    clock.Clock
}

// Coordinator runs at most one live request per key. A new Submit for a key
// supersedes whatever that key had pending or in flight: the superseded
// request's channel is closed without a value and its late result, if any, is
// dropped.
type Coordinator[T any] struct {
	name     string
	debounce time.Duration
	timeout  time.Duration
	clock    clock.Clock

	root   context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu     sync.Mutex
	seq    uint64
	keys   map[string]*keyState[T]
	closed bool
}

type request[T any] struct {
	seq   uint64
	fetch FetchFunc[T]
	out   chan Result[T]
}

type keyState[T any] struct {
	pending  *request[T]
	timer    clock.Timer
	inflight *request[T]
	cancel   context.CancelFunc
}

func New[T any](opts Options) *Coordinator[T] {
	if opts.Clock == nil {
		opts.Clock = clock.NewRealClock()
	}
	root, cancel := context.WithCancel(context.Background())
	return &Coordinator[T]{
		name:     opts.Name,
		debounce: opts.Debounce,
		timeout:  opts.Timeout,
		clock:    opts.Clock,
		root:     root,
		cancel:   cancel,
		keys:     make(map[string]*keyState[T]),
	}
}

// Submit schedules fetch under key. The returned channel yields exactly one
// Result, or is closed empty if a newer request for the same key arrives first.
func (c *Coordinator[T]) Submit(key string, fetch FetchFunc[T]) <-chan Result[T] {
	out := make(chan Result[T], 1)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		out <- Result[T]{Err: errs.ErrCoordinatorClosed}
		close(out)
		return out
	}

	c.seq++
	req := &request[T]{seq: c.seq, fetch: fetch, out: out}

	st, ok := c.keys[key]
	if !ok {
		st = &keyState[T]{}
		c.keys[key] = st
	}
	c.supersedeLocked(key, st)

	st.pending = req
	if c.debounce <= 0 {
		c.dispatchLocked(key, st)
		return out
	}
	st.timer = c.clock.AfterFunc(c.debounce, func() { c.fire(key, req) })
	return out
}

func (c *Coordinator[T]) supersedeLocked(key string, st *keyState[T]) {
	if st.pending != nil {
		if st.timer != nil {
			st.timer.Stop()
			st.timer = nil
		}
		slog.Debug("Query superseded while pending", "coordinator", c.name, "key", key, "seq", st.pending.seq)
		close(st.pending.out)
		st.pending = nil
	}
	if st.inflight != nil {
		st.cancel()
		slog.Debug("Query superseded while in flight", "coordinator", c.name, "key", key, "seq", st.inflight.seq)
		close(st.inflight.out)
		st.inflight = nil
		st.cancel = nil
	}
}

func (c *Coordinator[T]) fire(key string, req *request[T]) {
	c.mu.Lock()
	defer c.mu.Unlock()

	st, ok := c.keys[key]
	if !ok || st.pending != req {
		// stopped too late; a newer request owns the key
		return
	}
	st.timer = nil
	c.dispatchLocked(key, st)
}

func (c *Coordinator[T]) dispatchLocked(key string, st *keyState[T]) {
	req := st.pending
	st.pending = nil

	var ctx context.Context
	var cancel context.CancelFunc
	if c.timeout > 0 {
		ctx, cancel = context.WithTimeout(c.root, c.timeout)
	} else {
		ctx, cancel = context.WithCancel(c.root)
	}
	st.inflight = req
	st.cancel = cancel

	c.wg.Add(1)
	go c.run(ctx, key, req)
}

type outcome[T any] struct {
	value T
	err   error
}

// run waits for the fetch or for its context, whichever ends first. A fetch
// that ignores cancellation is left to finish on its own and its value dropped.
func (c *Coordinator[T]) run(ctx context.Context, key string, req *request[T]) {
	defer c.wg.Done()

	done := make(chan outcome[T], 1)
	go func() {
		value, err := req.fetch(ctx)
		done <- outcome[T]{value: value, err: err}
	}()

	var out outcome[T]
	select {
	case out = <-done:
	case <-ctx.Done():
		out.err = ctx.Err()
	}
	if out.err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		slog.Warn("Query timed out", "coordinator", c.name, "key", key, "seq", req.seq, "timeout", c.timeout)
		var zero T
		out = outcome[T]{
			value: zero,
			err:   errs.Mark(errs.Wrapf(out.err, "query %d timed out after %s", req.seq, c.timeout), errs.ErrRepositoryUnavailable),
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	st, ok := c.keys[key]
	if !ok || st.inflight != req {
		slog.Debug("Discarding stale query result", "coordinator", c.name, "key", key, "seq", req.seq)
		return
	}

	req.out <- Result[T]{Seq: req.seq, Value: out.value, Err: out.err}
	close(req.out)

	st.cancel()
	st.inflight = nil
	st.cancel = nil
	if st.pending == nil {
		delete(c.keys, key)
	}
}

func (c *Coordinator[T]) State(key string) State {
	c.mu.Lock()
	defer c.mu.Unlock()

	st, ok := c.keys[key]
	switch {
	case !ok:
		return StateIdle
	case st.pending != nil:
		return StatePending
	case st.inflight != nil:
		return StateInFlight
	default:
		return StateIdle
	}
}

// Do submits and waits. A superseded request returns ErrStaleResultDiscarded.
func (c *Coordinator[T]) Do(ctx context.Context, key string, fetch FetchFunc[T]) (Result[T], error) {
	ch := c.Submit(key, fetch)
	select {
	case res, ok := <-ch:
		if !ok {
			return Result[T]{}, errs.ErrStaleResultDiscarded
		}
		return res, res.Err
	case <-ctx.Done():
		return Result[T]{}, ctx.Err()
	}
}

// Close drops every pending and in-flight request and cancels running fetches.
// It does not wait for a fetch that ignores cancellation. Later Submits fail
// with ErrCoordinatorClosed.
func (c *Coordinator[T]) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	for key, st := range c.keys {
		c.supersedeLocked(key, st)
		delete(c.keys, key)
	}
	c.mu.Unlock()

	c.cancel()
	c.wg.Wait()
}
