// Package cache is the read-through response cache in front of the upstream API.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	jsoniter "github.com/json-iterator/go"
	"golang.org/x/sync/singleflight"

	"github.com/namousaymane/KooraGoal/internal/kvstore"
	"github.com/namousaymane/KooraGoal/internal/logging"
	"github.com/namousaymane/KooraGoal/internal/metrics"
	"github.com/namousaymane/KooraGoal/internal/providers"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// emptyList is returned whenever no fresh data can be produced.
var emptyList = json.RawMessage(`[]`)

// flightTimeout bounds a shared upstream fetch once it is detached from its callers.
const flightTimeout = 10 * time.Second

// entry is the persisted envelope. StoredAt is unix milliseconds at write time.
type entry struct {
	Data     json.RawMessage `json:"data"`
	StoredAt int64           `json:"storedAt"`
}

// Manager serves upstream responses from a key-value store while they are fresh.
type Manager struct {
	store    kvstore.Store
	fetcher  providers.Fetcher
	logger   *slog.Logger
	recorder *metrics.Recorder
	now      func() time.Time
	flight   singleflight.Group
}

// Option customizes a Manager.
type Option func(*Manager)

// WithLogger sets the fallback logger used when the context carries none.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) { m.logger = logger }
}

// WithRecorder records lookup outcomes and writes.
func WithRecorder(rec *metrics.Recorder) Option {
	return func(m *Manager) { m.recorder = rec }
}

// WithClock overrides the wall clock.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

// NewManager wires a store and an upstream fetcher.
func NewManager(store kvstore.Store, fetcher providers.Fetcher, opts ...Option) *Manager {
	m := &Manager{
		store:   store,
		fetcher: fetcher,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// CachedFetch returns the response for endpoint and params, from the store when the
// entry is younger than ttl, otherwise from upstream. Failures are logged and yield
// an empty JSON list; the error never reaches the caller.
func (m *Manager) CachedFetch(ctx context.Context, endpoint string, params map[string]string, ttl time.Duration) json.RawMessage {
	key := Key(endpoint, params)
	logger := logging.FromContext(ctx, m.logger)
	if logger != nil {
		logger = logger.With(
			slog.String(logging.FieldEndpoint, endpoint),
			slog.String(logging.FieldCacheKey, key),
		)
	}

	if data, ok := m.lookup(ctx, logger, endpoint, key, ttl); ok {
		return data
	}

	// The flight outlives its callers; each caller waits on its own context.
	flights := m.flight.DoChan(key, func() (any, error) {
		flightCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), flightTimeout)
		defer cancel()
		return m.refresh(flightCtx, logger, endpoint, key, params)
	})

	select {
	case <-ctx.Done():
		logging.Warn(logger, "request canceled while waiting for upstream; serving empty result", slog.Any("error", ctx.Err()))
		return emptyList
	case res := <-flights:
		if res.Err != nil {
			logging.Warn(logger, "upstream fetch failed; serving empty result", slog.Any("error", res.Err))
			return emptyList
		}
		if res.Shared {
			logging.Debug(logger, "joined in-flight fetch")
		}
		return res.Val.(json.RawMessage)
	}
}

// lookup reads the key once. Stale and corrupt entries are deleted.
func (m *Manager) lookup(ctx context.Context, logger *slog.Logger, endpoint, key string, ttl time.Duration) (json.RawMessage, bool) {
	raw, ok, err := m.store.Get(ctx, key)
	if err != nil {
		logging.Warn(logger, "cache read failed; treating as miss", slog.Any("error", err))
		m.recorder.RecordCacheLookup(endpoint, metrics.CacheMiss)
		return nil, false
	}
	if !ok {
		logging.Debug(logger, "cache miss")
		m.recorder.RecordCacheLookup(endpoint, metrics.CacheMiss)
		return nil, false
	}

	var e entry
	if err := jsonAPI.Unmarshal([]byte(raw), &e); err != nil || len(e.Data) == 0 || e.StoredAt <= 0 {
		logging.Warn(logger, "corrupt cache entry; deleting", slog.Any("error", err))
		m.recorder.RecordCacheLookup(endpoint, metrics.CacheCorrupt)
		m.remove(ctx, logger, key)
		return nil, false
	}

	// A timestamp from the future means the clock moved backwards; its age is unknown.
	age := m.now().Sub(time.UnixMilli(e.StoredAt))
	if age < 0 || age >= ttl {
		logging.Debug(logger, "stale cache entry; deleting",
			slog.Int64(logging.FieldAgeMS, age.Milliseconds()),
			slog.Duration(logging.FieldTTL, ttl),
		)
		m.recorder.RecordCacheLookup(endpoint, metrics.CacheStale)
		m.remove(ctx, logger, key)
		return nil, false
	}

	logging.Debug(logger, "cache hit", slog.Int64(logging.FieldAgeMS, age.Milliseconds()))
	m.recorder.RecordCacheLookup(endpoint, metrics.CacheHit)
	return e.Data, true
}

// refresh performs the single upstream call and persists the result.
// A failed write is logged; the fetched data is still returned.
func (m *Manager) refresh(ctx context.Context, logger *slog.Logger, endpoint, key string, params map[string]string) (json.RawMessage, error) {
	if m.fetcher == nil {
		return nil, providers.ErrProviderUnavailable
	}
	data, err := m.fetcher.Fetch(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, providers.ErrNoResponse
	}

	encoded, err := jsonAPI.Marshal(entry{Data: data, StoredAt: m.now().UnixMilli()})
	if err != nil {
		logging.Error(logger, "encode cache entry failed", err)
		m.recorder.RecordCacheWrite(endpoint, err)
		return data, nil
	}
	err = m.store.Set(ctx, key, string(encoded))
	m.recorder.RecordCacheWrite(endpoint, err)
	if err != nil {
		logging.Error(logger, "cache write failed", err)
	}
	return data, nil
}

func (m *Manager) remove(ctx context.Context, logger *slog.Logger, key string) {
	if err := m.store.Delete(ctx, key); err != nil {
		logging.Warn(logger, "cache delete failed", slog.Any("error", err))
	}
}
