package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/namousaymane/KooraGoal/internal/kvstore"
	"github.com/namousaymane/KooraGoal/internal/metrics"
	"github.com/namousaymane/KooraGoal/internal/providers"
	"github.com/namousaymane/KooraGoal/internal/teststubs"
	"github.com/namousaymane/KooraGoal/internal/testutil"
)

var liveParams = map[string]string{"live": "all"}

func newTestManager(store kvstore.Store, fetcher providers.Fetcher, clock *testutil.Clock) (*Manager, *metrics.Recorder, testutil.LogBuffer) {
	logger, buf := testutil.NewBufferLogger()
	rec := metrics.NewRecorder()
	m := NewManager(store, fetcher, WithLogger(logger), WithRecorder(rec), WithClock(clock.Now))
	return m, rec, buf
}

func TestCachedFetchMissThenHit(t *testing.T) {
	clock := testutil.NewClock(testutil.MustParseRFC3339("2024-05-01T12:00:00Z"))
	fetcher := &teststubs.StubFetcher{Responses: map[string]json.RawMessage{"fixtures": json.RawMessage(`[{"id":1}]`)}}
	store := kvstore.NewMemoryStore()
	m, rec, _ := newTestManager(store, fetcher, clock)
	ctx := context.Background()

	first := m.CachedFetch(ctx, "fixtures", liveParams, time.Minute)
	clock.Advance(30 * time.Second)
	second := m.CachedFetch(ctx, "fixtures", liveParams, time.Minute)

	if string(first) != `[{"id":1}]` || string(second) != `[{"id":1}]` {
		t.Fatalf("unexpected results %s %s", first, second)
	}
	if fetcher.Calls.Load() != 1 {
		t.Fatalf("expected exactly one upstream call, got %d", fetcher.Calls.Load())
	}
	snap := rec.Snapshot("fixtures")
	if snap.CacheMisses != 1 || snap.CacheHits != 1 || snap.CacheWrites != 1 {
		t.Fatalf("unexpected cache metrics %+v", snap)
	}
}

func TestCachedFetchPersistsEnvelope(t *testing.T) {
	now := testutil.MustParseRFC3339("2024-05-01T12:00:00Z")
	clock := testutil.NewClock(now)
	fetcher := &teststubs.StubFetcher{Responses: map[string]json.RawMessage{"teams": json.RawMessage(`[{"team":{"id":541}}]`)}}
	store := kvstore.NewMemoryStore()
	m, _, _ := newTestManager(store, fetcher, clock)

	m.CachedFetch(context.Background(), "teams", map[string]string{"id": "541"}, 24*time.Hour)

	raw, ok, _ := store.Get(context.Background(), "teams?id=541")
	if !ok {
		t.Fatalf("expected entry under canonical key")
	}
	var e struct {
		Data     json.RawMessage `json:"data"`
		StoredAt int64           `json:"storedAt"`
	}
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		t.Fatalf("entry is not valid json: %v", err)
	}
	if e.StoredAt != now.UnixMilli() || string(e.Data) != `[{"team":{"id":541}}]` {
		t.Fatalf("unexpected envelope %+v", e)
	}
}

func TestCachedFetchTTLBoundary(t *testing.T) {
	cases := []struct {
		name      string
		elapsed   time.Duration
		wantCalls int32
	}{
		{"just before expiry", 59 * time.Second, 1},
		{"exactly at ttl", 60 * time.Second, 2},
		{"just after expiry", 61 * time.Second, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clock := testutil.NewClock(testutil.MustParseRFC3339("2024-05-01T12:00:00Z"))
			fetcher := &teststubs.StubFetcher{}
			m, _, _ := newTestManager(kvstore.NewMemoryStore(), fetcher, clock)

			m.CachedFetch(context.Background(), "fixtures", liveParams, 60*time.Second)
			clock.Advance(tc.elapsed)
			m.CachedFetch(context.Background(), "fixtures", liveParams, 60*time.Second)

			if got := fetcher.Calls.Load(); got != tc.wantCalls {
				t.Fatalf("expected %d upstream calls, got %d", tc.wantCalls, got)
			}
		})
	}
}

func TestCachedFetchDeletesStaleEntryAndRefreshes(t *testing.T) {
	clock := testutil.NewClock(testutil.MustParseRFC3339("2024-05-01T12:00:00Z"))
	store := &teststubs.StubStore{}
	store.Put("fixtures?live=all", `{"data":[{"id":"old"}],"storedAt":`+itoa(clock.Now().Add(-2*time.Minute).UnixMilli())+`}`)
	fetcher := &teststubs.StubFetcher{Responses: map[string]json.RawMessage{"fixtures": json.RawMessage(`[{"id":"new"}]`)}}
	m, rec, _ := newTestManager(store, fetcher, clock)

	got := m.CachedFetch(context.Background(), "fixtures", liveParams, time.Minute)
	if string(got) != `[{"id":"new"}]` {
		t.Fatalf("expected fresh data, got %s", got)
	}
	if store.Deletes.Load() != 1 || store.Sets.Load() != 1 || store.Gets.Load() != 1 {
		t.Fatalf("expected one get, one delete and one set, got %d/%d/%d", store.Gets.Load(), store.Deletes.Load(), store.Sets.Load())
	}
	if rec.Snapshot("fixtures").CacheStale != 1 {
		t.Fatalf("expected stale lookup recorded")
	}
}

func TestCachedFetchTreatsFutureTimestampAsStale(t *testing.T) {
	clock := testutil.NewClock(testutil.MustParseRFC3339("2024-05-01T12:00:00Z"))
	store := &teststubs.StubStore{}
	// Written before the device clock was set back by an hour.
	store.Put("fixtures?live=all", `{"data":[{"id":"old"}],"storedAt":`+itoa(clock.Now().Add(time.Hour).UnixMilli())+`}`)
	fetcher := &teststubs.StubFetcher{Responses: map[string]json.RawMessage{"fixtures": json.RawMessage(`[{"id":"new"}]`)}}
	m, rec, _ := newTestManager(store, fetcher, clock)

	if got := m.CachedFetch(context.Background(), "fixtures", liveParams, time.Minute); string(got) != `[{"id":"new"}]` {
		t.Fatalf("expected refetch for entry stored in the future, got %s", got)
	}
	if fetcher.Calls.Load() != 1 || store.Deletes.Load() != 1 {
		t.Fatalf("expected one upstream call and one delete, got %d/%d", fetcher.Calls.Load(), store.Deletes.Load())
	}
	if rec.Snapshot("fixtures").CacheStale != 1 {
		t.Fatalf("expected stale lookup recorded")
	}
}

func TestCachedFetchStaleEntryWithFailingUpstreamReturnsEmpty(t *testing.T) {
	clock := testutil.NewClock(testutil.MustParseRFC3339("2024-05-01T12:00:00Z"))
	store := &teststubs.StubStore{}
	store.Put("fixtures?live=all", `{"data":[{"id":"old"}],"storedAt":`+itoa(clock.Now().Add(-time.Hour).UnixMilli())+`}`)
	fetcher := &teststubs.StubFetcher{Err: errors.New("network down")}
	m, _, _ := newTestManager(store, fetcher, clock)

	if got := m.CachedFetch(context.Background(), "fixtures", liveParams, time.Minute); string(got) != "[]" {
		t.Fatalf("expected empty fallback instead of stale data, got %s", got)
	}
	if _, ok := store.Peek("fixtures?live=all"); ok {
		t.Fatalf("expected stale entry removed")
	}
}

func TestCachedFetchCorruptEntries(t *testing.T) {
	cases := map[string]string{
		"not json":      `{not json`,
		"missing data":  `{"storedAt":1714564800000}`,
		"missing stamp": `{"data":[]}`,
		"wrong shape":   `[1,2,3]`,
	}
	for name, value := range cases {
		t.Run(name, func(t *testing.T) {
			clock := testutil.NewClock(testutil.MustParseRFC3339("2024-05-01T12:00:00Z"))
			store := &teststubs.StubStore{}
			store.Put("fixtures?live=all", value)
			fetcher := &teststubs.StubFetcher{Responses: map[string]json.RawMessage{"fixtures": json.RawMessage(`[{"id":1}]`)}}
			m, rec, buf := newTestManager(store, fetcher, clock)

			got := m.CachedFetch(context.Background(), "fixtures", liveParams, time.Minute)
			if string(got) != `[{"id":1}]` {
				t.Fatalf("expected upstream data, got %s", got)
			}
			if store.Deletes.Load() != 1 {
				t.Fatalf("expected corrupt entry deleted")
			}
			if rec.Snapshot("fixtures").CacheCorrupt != 1 {
				t.Fatalf("expected corrupt lookup recorded")
			}
			if !strings.Contains(buf.String(), "corrupt cache entry") {
				t.Fatalf("expected corrupt entry logged, got %q", buf.String())
			}
		})
	}
}

func TestCachedFetchUpstreamFailures(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"network", errors.New("dial tcp: timeout")},
		{"status", &providers.StatusError{Provider: "apifootball", StatusCode: 500}},
		{"rate limit", &providers.RateLimitError{StatusCode: 429}},
		{"no response", providers.ErrNoResponse},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clock := testutil.NewClock(testutil.MustParseRFC3339("2024-05-01T12:00:00Z"))
			store := &teststubs.StubStore{}
			fetcher := &teststubs.StubFetcher{Err: tc.err}
			m, _, buf := newTestManager(store, fetcher, clock)

			got := m.CachedFetch(context.Background(), "fixtures", liveParams, time.Minute)
			if string(got) != "[]" {
				t.Fatalf("expected [] fallback, got %s", got)
			}
			if store.Sets.Load() != 0 {
				t.Fatalf("expected no write on failure")
			}
			if !strings.Contains(buf.String(), "upstream fetch failed") {
				t.Fatalf("expected failure logged")
			}
		})
	}
}

func TestCachedFetchReadErrorIsAMiss(t *testing.T) {
	clock := testutil.NewClock(testutil.MustParseRFC3339("2024-05-01T12:00:00Z"))
	store := &teststubs.StubStore{GetErr: errors.New("disk unreadable")}
	fetcher := &teststubs.StubFetcher{Responses: map[string]json.RawMessage{"fixtures": json.RawMessage(`[{"id":1}]`)}}
	m, _, _ := newTestManager(store, fetcher, clock)

	if got := m.CachedFetch(context.Background(), "fixtures", liveParams, time.Minute); string(got) != `[{"id":1}]` {
		t.Fatalf("expected upstream data, got %s", got)
	}
	if fetcher.Calls.Load() != 1 {
		t.Fatalf("expected upstream call after read failure")
	}
}

func TestCachedFetchWriteErrorStillReturnsData(t *testing.T) {
	clock := testutil.NewClock(testutil.MustParseRFC3339("2024-05-01T12:00:00Z"))
	store := &teststubs.StubStore{SetErr: errors.New("disk full")}
	fetcher := &teststubs.StubFetcher{Responses: map[string]json.RawMessage{"fixtures": json.RawMessage(`[{"id":1}]`)}}
	m, rec, buf := newTestManager(store, fetcher, clock)

	if got := m.CachedFetch(context.Background(), "fixtures", liveParams, time.Minute); string(got) != `[{"id":1}]` {
		t.Fatalf("expected data despite write failure, got %s", got)
	}
	if rec.Snapshot("fixtures").CacheWriteErrors != 1 {
		t.Fatalf("expected write failure recorded")
	}
	if !strings.Contains(buf.String(), "cache write failed") {
		t.Fatalf("expected write failure logged")
	}
}

func TestCachedFetchWithoutFetcherFallsBack(t *testing.T) {
	clock := testutil.NewClock(testutil.MustParseRFC3339("2024-05-01T12:00:00Z"))
	m := NewManager(kvstore.NewMemoryStore(), nil, WithClock(clock.Now))
	if got := m.CachedFetch(context.Background(), "fixtures", liveParams, time.Minute); string(got) != "[]" {
		t.Fatalf("expected [] without fetcher, got %s", got)
	}
}

func TestCachedFetchCollapsesConcurrentMisses(t *testing.T) {
	clock := testutil.NewClock(testutil.MustParseRFC3339("2024-05-01T12:00:00Z"))
	gate := make(chan struct{})
	fetcher := &teststubs.StubFetcher{Gate: gate, Responses: map[string]json.RawMessage{"fixtures": json.RawMessage(`[{"id":1}]`)}}
	m, _, _ := newTestManager(kvstore.NewMemoryStore(), fetcher, clock)

	const callers = 5
	var (
		wg      sync.WaitGroup
		results = make([]string, callers)
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = string(m.CachedFetch(context.Background(), "fixtures", liveParams, time.Minute))
		}(i)
	}

	// Wait for the first flight to start before releasing it.
	deadline := time.Now().Add(2 * time.Second)
	for fetcher.Calls.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	time.Sleep(20 * time.Millisecond)
	close(gate)
	wg.Wait()

	for i, r := range results {
		if r != `[{"id":1}]` {
			t.Fatalf("caller %d got %s", i, r)
		}
	}
	if got := fetcher.Calls.Load(); got > callers || got < 1 {
		t.Fatalf("unexpected upstream call count %d", got)
	}
	if got := m.CachedFetch(context.Background(), "fixtures", liveParams, time.Minute); string(got) != `[{"id":1}]` {
		t.Fatalf("expected cached data after flight, got %s", got)
	}
}

func TestCachedFetchCanceledCallerDoesNotFailOthers(t *testing.T) {
	clock := testutil.NewClock(testutil.MustParseRFC3339("2024-05-01T12:00:00Z"))
	gate := make(chan struct{})
	fetcher := &teststubs.StubFetcher{Gate: gate, Responses: map[string]json.RawMessage{"fixtures": json.RawMessage(`[{"id":1}]`)}}
	m, _, buf := newTestManager(kvstore.NewMemoryStore(), fetcher, clock)

	leaderCtx, cancelLeader := context.WithCancel(context.Background())
	leaderDone := make(chan string, 1)
	go func() { leaderDone <- string(m.CachedFetch(leaderCtx, "fixtures", liveParams, time.Minute)) }()

	deadline := time.Now().Add(2 * time.Second)
	for fetcher.Calls.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}

	followerDone := make(chan string, 1)
	go func() { followerDone <- string(m.CachedFetch(context.Background(), "fixtures", liveParams, time.Minute)) }()
	time.Sleep(20 * time.Millisecond)

	cancelLeader()
	select {
	case got := <-leaderDone:
		if got != "[]" {
			t.Fatalf("expected canceled caller to get [], got %s", got)
		}
	case <-time.After(time.Second):
		t.Fatalf("canceled caller kept waiting on the shared fetch")
	}

	close(gate)
	select {
	case got := <-followerDone:
		if got != `[{"id":1}]` {
			t.Fatalf("expected live caller to get data, got %s", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("live caller never returned")
	}
	if got := fetcher.Calls.Load(); got < 1 || got > 2 {
		t.Fatalf("unexpected upstream call count %d", got)
	}

	before := fetcher.Calls.Load()
	if got := m.CachedFetch(context.Background(), "fixtures", liveParams, time.Minute); string(got) != `[{"id":1}]` {
		t.Fatalf("expected shared fetch to be cached, got %s", got)
	}
	if fetcher.Calls.Load() != before {
		t.Fatalf("expected cache hit after shared fetch")
	}
	if !strings.Contains(buf.String(), "request canceled while waiting for upstream") {
		t.Fatalf("expected cancellation logged, got %q", buf.String())
	}
}

func TestCachedFetchKeepsEndpointsSeparate(t *testing.T) {
	clock := testutil.NewClock(testutil.MustParseRFC3339("2024-05-01T12:00:00Z"))
	fetcher := &teststubs.StubFetcher{Responses: map[string]json.RawMessage{
		"teams":         json.RawMessage(`[{"team":{"id":541}}]`),
		"players/squad": json.RawMessage(`[{"players":[]}]`),
	}}
	m, _, _ := newTestManager(kvstore.NewMemoryStore(), fetcher, clock)
	ctx := context.Background()

	team := m.CachedFetch(ctx, "teams", map[string]string{"id": "541"}, time.Hour)
	squad := m.CachedFetch(ctx, "players/squad", map[string]string{"team": "541"}, time.Hour)
	if string(team) == string(squad) {
		t.Fatalf("expected distinct cached payloads")
	}
	if fetcher.Calls.Load() != 2 {
		t.Fatalf("expected one call per endpoint, got %d", fetcher.Calls.Load())
	}
}

func itoa(v int64) string {
	b, _ := json.Marshal(v)
	return string(b)
}
