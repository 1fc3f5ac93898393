// Package warmer keeps the hottest cache entries fresh by querying them on an interval.
package warmer

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/namousaymane/KooraGoal/internal/domain/matches"
	"github.com/namousaymane/KooraGoal/internal/logging"
)

// Target is the subset of the query service the warmer drives. Every call goes
// through the regular cache path, so a fresh entry costs no upstream request.
type Target interface {
	LiveMatches(ctx context.Context) []matches.Summary
	MatchesByDate(ctx context.Context, date string) []matches.Fixture
}

// Warmer re-queries live and today's fixtures on a fixed interval.
type Warmer struct {
	target   Target
	logger   *slog.Logger
	interval time.Duration
	now      func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the most recent warm cycle.
type Status struct {
	Cycles      int
	LastRun     time.Time
	LastLive    int
	LastToday   int
	LastElapsed time.Duration
}

// Option customizes a Warmer.
type Option func(*Warmer)

// WithClock overrides the clock used to stamp cycles.
func WithClock(now func() time.Time) Option {
	return func(w *Warmer) {
		if now != nil {
			w.now = now
		}
	}
}

// New returns a Warmer, or nil when interval is not positive.
func New(target Target, logger *slog.Logger, interval time.Duration, opts ...Option) *Warmer {
	if target == nil || interval <= 0 {
		return nil
	}
	w := &Warmer{
		target:   target,
		logger:   logger,
		interval: interval,
		now:      time.Now,
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Start warms once immediately, then on every tick until ctx ends or Stop is called.
func (w *Warmer) Start(ctx context.Context) {
	if w == nil {
		return
	}
	w.startMu.Lock()
	if w.started {
		w.startMu.Unlock()
		return
	}
	w.started = true
	w.startMu.Unlock()

	w.ticker = time.NewTicker(w.interval)

	go func() {
		logging.Info(w.logger, "cache warmer started", slog.Int64(logging.FieldDurationMS, w.interval.Milliseconds()))
		w.warmOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				w.ticker.Stop()
				logging.Info(w.logger, "cache warmer stopped")
				return
			case <-w.done:
				w.ticker.Stop()
				logging.Info(w.logger, "cache warmer stopped")
				return
			case <-w.ticker.C:
				w.warmOnce(ctx)
			}
		}
	}()
}

// Stop halts the loop. Safe to call more than once and on a nil Warmer.
func (w *Warmer) Stop() {
	if w == nil {
		return
	}
	w.stopOnce.Do(func() { close(w.done) })
}

func (w *Warmer) warmOnce(ctx context.Context) {
	start := w.now()
	live := len(w.target.LiveMatches(ctx))
	// An empty date resolves to today in the service's timezone.
	today := len(w.target.MatchesByDate(ctx, ""))
	elapsed := w.now().Sub(start)

	w.statusMu.Lock()
	w.status.Cycles++
	w.status.LastRun = start
	w.status.LastLive = live
	w.status.LastToday = today
	w.status.LastElapsed = elapsed
	w.statusMu.Unlock()

	logging.Debug(w.logger, "cache warmed",
		slog.Int("live", live),
		slog.Int(logging.FieldCount, today),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	)
}

// Status returns a snapshot of the latest cycle.
func (w *Warmer) Status() Status {
	if w == nil {
		return Status{}
	}
	w.statusMu.RLock()
	defer w.statusMu.RUnlock()
	return w.status
}
