package behaviortree

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

// ErrEvaluationError is recorded by a Ticker whose node evaluated to
// Error. A persistent Error from the root indicates a configuration bug in
// the tree.
var ErrEvaluationError = errors.New("behaviortree: node evaluated to error status")

// ErrManagerStopped is returned by Manager.Add after the manager has been
// stopped.
var ErrManagerStopped = errors.New("behaviortree: manager stopped")

// TickerOption configures a Ticker at construction.
type TickerOption func(*Ticker)

// WithStopOnFailure makes the ticker stop the first time the node
// evaluates to Failure. No error is recorded; Failure is a normal outcome.
func WithStopOnFailure() TickerOption {
	return func(t *Ticker) { t.stopOnFailure = true }
}

// WithTickerLogger sets a logger for per-tick Debug records and the stop
// reason. By default the ticker does not log.
func WithTickerLogger(logger *slog.Logger) TickerOption {
	return func(t *Ticker) { t.logger = logger }
}

// Ticker drives a root node at a fixed cadence from its own goroutine,
// passing the measured elapsed time between ticks, in seconds, as the
// delta. It stops when its context is canceled, when Stop is called, when
// the node evaluates to Error (recording ErrEvaluationError), or, with
// WithStopOnFailure, when the node evaluates to Failure.
//
// The driven node is ticked exclusively from the ticker's goroutine; do
// not evaluate it from anywhere else while the ticker runs.
type Ticker struct {
	node          Node
	interval      time.Duration
	cancel        context.CancelFunc
	done          chan struct{}
	logger        *slog.Logger
	stopOnFailure bool

	mu  sync.Mutex
	err error
}

// NewTicker starts a ticker evaluating node every interval. It panics on a
// nil node or a non-positive interval; both are programmer errors, not
// runtime conditions. A nil ctx is treated as context.Background().
func NewTicker(ctx context.Context, interval time.Duration, node Node, opts ...TickerOption) *Ticker {
	if node == nil {
		panic("behaviortree: NewTicker requires a non-nil node")
	}
	if interval <= 0 {
		panic("behaviortree: NewTicker requires a positive interval")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	t := &Ticker{
		node:     node,
		interval: interval,
		cancel:   cancel,
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(t)
	}
	go t.run(ctx)
	return t
}

func (t *Ticker) run(ctx context.Context) {
	defer close(t.done)
	defer t.cancel()
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			if t.logger != nil {
				t.logger.Debug("behavior tree ticker stopped", "reason", ctx.Err())
			}
			return
		case now := <-ticker.C:
			delta := now.Sub(last).Seconds()
			last = now
			status := t.node.Tick(delta)
			if t.logger != nil {
				t.logger.Debug("behavior tree tick", "status", status, "delta", delta)
			}
			switch {
			case status == Error:
				t.fail(ErrEvaluationError)
				return
			case status == Failure && t.stopOnFailure:
				if t.logger != nil {
					t.logger.Debug("behavior tree ticker stopped", "reason", "failure")
				}
				return
			}
		}
	}
}

func (t *Ticker) fail(err error) {
	t.mu.Lock()
	if t.err == nil {
		t.err = err
	}
	t.mu.Unlock()
	if t.logger != nil {
		t.logger.Debug("behavior tree ticker stopped", "reason", err)
	}
}

// Done returns a channel closed once the ticker has stopped and will never
// tick the node again.
func (t *Ticker) Done() <-chan struct{} {
	return t.done
}

// Err returns ErrEvaluationError if the ticker stopped because the node
// evaluated to Error, and nil otherwise (including after Stop or context
// cancellation).
func (t *Ticker) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}

// Stop stops the ticker. It is idempotent and safe to call from any
// goroutine; use Done to wait for the final tick to finish.
func (t *Ticker) Stop() {
	t.cancel()
}

// Manager aggregates tickers for lifecycle management: one Stop to halt a
// group, one Done to await it, one Err for the first evaluation error. The
// first ticker that stops with an error stops the whole group.
type Manager struct {
	mu      sync.Mutex
	tickers []*Ticker
	stopped bool
	err     error
	done    chan struct{}
}

// NewManager returns an empty manager.
func NewManager() *Manager {
	return &Manager{done: make(chan struct{})}
}

// Add registers a ticker with the manager. It returns ErrManagerStopped
// once the manager has been stopped; the ticker is left untouched in that
// case.
func (m *Manager) Add(t *Ticker) error {
	m.mu.Lock()
	if m.stopped {
		m.mu.Unlock()
		return ErrManagerStopped
	}
	m.tickers = append(m.tickers, t)
	m.mu.Unlock()

	go func() {
		<-t.Done()
		if err := t.Err(); err != nil {
			m.mu.Lock()
			if m.err == nil {
				m.err = err
			}
			m.mu.Unlock()
			m.Stop()
		}
	}()
	return nil
}

// Stop stops every registered ticker and closes Done once they have all
// finished. It is idempotent.
func (m *Manager) Stop() {
	m.mu.Lock()
	if m.stopped {
		m.mu.Unlock()
		return
	}
	m.stopped = true
	tickers := make([]*Ticker, len(m.tickers))
	copy(tickers, m.tickers)
	m.mu.Unlock()

	for _, t := range tickers {
		t.Stop()
	}
	go func() {
		for _, t := range tickers {
			<-t.Done()
		}
		close(m.done)
	}()
}

// Done returns a channel closed once the manager has been stopped (via
// Stop or a ticker error) and every registered ticker has finished.
func (m *Manager) Done() <-chan struct{} {
	return m.done
}

// Err returns the first ticker error observed by the manager, or nil.
func (m *Manager) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.err
}
