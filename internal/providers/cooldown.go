package providers

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/namousaymane/KooraGoal/internal/logging"
	"github.com/namousaymane/KooraGoal/internal/metrics"
)

const cooldownProvider = "cooldown"

// cooldownFetcher stops calling upstream while a Retry-After window is open.
// It never retries; callers get the last rate limit error until the window passes.
type cooldownFetcher struct {
	next     Fetcher
	logger   *slog.Logger
	recorder *metrics.Recorder
	now      func() time.Time

	mu      sync.Mutex
	until   time.Time
	lastErr *RateLimitError
}

// NewCooldownFetcher wraps next so that a rate limited upstream is not hammered.
func NewCooldownFetcher(next Fetcher, logger *slog.Logger, recorder *metrics.Recorder) Fetcher {
	return &cooldownFetcher{
		next:     next,
		logger:   logger,
		recorder: recorder,
		now:      time.Now,
	}
}

func (c *cooldownFetcher) Fetch(ctx context.Context, endpoint string, params map[string]string) (json.RawMessage, error) {
	if c == nil || c.next == nil {
		return nil, ErrProviderUnavailable
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if rlErr, remaining := c.blocked(); rlErr != nil {
		logWithProvider(ctx, logging.FromContext(ctx, c.logger), slog.LevelDebug, cooldownProvider, "upstream call skipped during cooldown",
			slog.String(logging.FieldEndpoint, endpoint),
			slog.Int64(logging.FieldDurationMS, remaining.Milliseconds()),
		)
		return nil, rlErr
	}

	raw, err := c.next.Fetch(ctx, endpoint, params)
	if rlErr, ok := AsRateLimitError(err); ok {
		c.recorder.RecordRateLimit(endpoint, rlErr.RetryAfter)
		if rlErr.RetryAfter > 0 {
			c.open(rlErr)
			logWithProvider(ctx, logging.FromContext(ctx, c.logger), slog.LevelWarn, cooldownProvider, "upstream rate limited; cooling down",
				slog.String(logging.FieldEndpoint, endpoint),
				slog.Int64(logging.FieldDurationMS, rlErr.RetryAfter.Milliseconds()),
			)
		}
	}
	return raw, err
}

func (c *cooldownFetcher) blocked() (*RateLimitError, time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.lastErr == nil {
		return nil, 0
	}
	remaining := c.until.Sub(c.now())
	if remaining <= 0 {
		c.lastErr = nil
		return nil, 0
	}
	return c.lastErr, remaining
}

func (c *cooldownFetcher) open(err *RateLimitError) {
	c.mu.Lock()
	defer c.mu.Unlock()

	until := c.now().Add(err.RetryAfter)
	if until.After(c.until) {
		c.until = until
	}
	c.lastErr = err
}
