package metrics

import (
	"sort"
	"sync"
	"time"
)

type upstreamStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

type cacheStats struct {
	lookups     map[CacheOutcome]int
	writes      int
	writeErrors int
}

// Recorder captures lightweight, in-memory metrics about cache and upstream activity,
// mirroring them into OpenTelemetry instruments when configured.
type Recorder struct {
	mu       sync.Mutex
	upstream map[string]*upstreamStats
	cache    map[string]*cacheStats
	requests map[string]int
	otel     *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		upstream: make(map[string]*upstreamStats),
		cache:    make(map[string]*cacheStats),
		requests: make(map[string]int),
		otel:     otel,
	}
}

// RecordUpstreamAttempt increments counters for an upstream call and stores the last observed latency.
func (r *Recorder) RecordUpstreamAttempt(endpoint string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureUpstream(endpoint)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordUpstreamAttempt(endpoint, duration, err)
	}
}

// RecordRateLimit tracks that an upstream response hit a rate limit and stores the last Retry-After.
func (r *Recorder) RecordRateLimit(endpoint string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureUpstream(endpoint)
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRateLimit(endpoint, retryAfter)
	}
}

// RecordCacheLookup counts one cache lookup outcome for an endpoint.
func (r *Recorder) RecordCacheLookup(endpoint string, outcome CacheOutcome) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.ensureCache(endpoint).lookups[outcome]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordCacheLookup(endpoint, outcome)
	}
}

// RecordCacheWrite counts a cache write and whether it failed.
func (r *Recorder) RecordCacheWrite(endpoint string, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureCache(endpoint)
	stats.writes++
	if err != nil {
		stats.writeErrors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordCacheWrite(endpoint, err)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics for the gateway.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.requests[method+" "+path]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordHTTPRequest(method, path, status, duration)
	}
}

// HTTPRequests returns how many gateway requests were served for a method and route.
func (r *Recorder) HTTPRequests(method, path string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.requests[method+" "+path]
}

// Snapshot is a copy of the current stats for one endpoint.
type Snapshot struct {
	UpstreamCalls    int
	UpstreamErrors   int
	RateLimitHits    int
	LastRetryAfter   time.Duration
	LastCallLatency  time.Duration
	CacheHits        int
	CacheMisses      int
	CacheStale       int
	CacheCorrupt     int
	CacheWrites      int
	CacheWriteErrors int
}

// Snapshot returns a copy of the current stats for the endpoint.
func (r *Recorder) Snapshot(endpoint string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	var snap Snapshot
	if up, ok := r.upstream[endpoint]; ok {
		snap.UpstreamCalls = up.calls
		snap.UpstreamErrors = up.errors
		snap.RateLimitHits = up.rateLimitHits
		snap.LastRetryAfter = up.lastRetryAfter
		snap.LastCallLatency = up.lastCallLatency
	}
	if c, ok := r.cache[endpoint]; ok {
		snap.CacheHits = c.lookups[CacheHit]
		snap.CacheMisses = c.lookups[CacheMiss]
		snap.CacheStale = c.lookups[CacheStale]
		snap.CacheCorrupt = c.lookups[CacheCorrupt]
		snap.CacheWrites = c.writes
		snap.CacheWriteErrors = c.writeErrors
	}
	return snap
}

// Endpoints lists every endpoint with recorded cache or upstream activity, sorted.
func (r *Recorder) Endpoints() []string {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]bool, len(r.upstream)+len(r.cache))
	for endpoint := range r.upstream {
		seen[endpoint] = true
	}
	for endpoint := range r.cache {
		seen[endpoint] = true
	}
	out := make([]string, 0, len(seen))
	for endpoint := range seen {
		out = append(out, endpoint)
	}
	sort.Strings(out)
	return out
}

// UpstreamCalls returns the total attempts recorded for an endpoint.
func (r *Recorder) UpstreamCalls(endpoint string) int {
	return r.Snapshot(endpoint).UpstreamCalls
}

// CacheHits returns the number of fresh hits served for an endpoint.
func (r *Recorder) CacheHits(endpoint string) int {
	return r.Snapshot(endpoint).CacheHits
}

// RateLimitHits returns the number of rate limit events seen for an endpoint.
func (r *Recorder) RateLimitHits(endpoint string) int {
	return r.Snapshot(endpoint).RateLimitHits
}

// ensureUpstream and ensureCache expect r.mu to be held.
func (r *Recorder) ensureUpstream(endpoint string) *upstreamStats {
	stats, ok := r.upstream[endpoint]
	if !ok {
		stats = &upstreamStats{}
		r.upstream[endpoint] = stats
	}
	return stats
}

func (r *Recorder) ensureCache(endpoint string) *cacheStats {
	stats, ok := r.cache[endpoint]
	if !ok {
		stats = &cacheStats{lookups: make(map[CacheOutcome]int)}
		r.cache[endpoint] = stats
	}
	return stats
}
