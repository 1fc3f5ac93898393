// Package football is the query surface consumed by the app screens. Every method
// composes one or two cached upstream reads with a normalizer and never fails:
// lists come back empty and single entities come back nil.
package football

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/namousaymane/KooraGoal/internal/logging"
)

// Freshness windows per query.
const (
	LiveTTL       = 60 * time.Second
	TodayTTL      = 60 * time.Second
	OtherDayTTL   = time.Hour
	UpcomingTTL   = 30 * time.Minute
	TeamTTL       = 24 * time.Hour
	DetailTTL     = 5 * time.Minute
	StatisticsTTL = 5 * time.Minute
	HeadToHeadTTL = 24 * time.Hour
)

// Cache is the read-through fetch the service builds on.
type Cache interface {
	CachedFetch(ctx context.Context, endpoint string, params map[string]string, ttl time.Duration) json.RawMessage
}

// Service answers the app's football queries.
type Service struct {
	cache  Cache
	loc    *time.Location
	logger *slog.Logger
	now    func() time.Time
}

// Option customizes a Service.
type Option func(*Service)

// WithLogger sets the fallback logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithClock overrides the wall clock used for "today".
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService builds a Service. loc decides what "today" means and how times are shown;
// nil means UTC.
func NewService(cache Cache, loc *time.Location, opts ...Option) *Service {
	if loc == nil {
		loc = time.UTC
	}
	s := &Service{
		cache: cache,
		loc:   loc,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Location returns the configured display location.
func (s *Service) Location() *time.Location {
	return s.loc
}

func (s *Service) fetch(ctx context.Context, endpoint string, params map[string]string, ttl time.Duration) json.RawMessage {
	if s.cache == nil {
		return nil
	}
	return s.cache.CachedFetch(ctx, endpoint, params, ttl)
}

func (s *Service) logMapFailure(ctx context.Context, endpoint string, err error) {
	logging.Warn(logging.FromContext(ctx, s.logger), "normalize response failed",
		slog.String(logging.FieldEndpoint, endpoint),
		slog.Any("error", err),
	)
}

// validID accepts the numeric ids API-Football uses. Anything else is never sent upstream.
func validID(id string) bool {
	if id == "" {
		return false
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
