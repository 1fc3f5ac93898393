package football

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"testing"
	"time"

	"github.com/namousaymane/KooraGoal/internal/cache"
	"github.com/namousaymane/KooraGoal/internal/kvstore"
	"github.com/namousaymane/KooraGoal/internal/providers"
	"github.com/namousaymane/KooraGoal/internal/providers/fixture"
	"github.com/namousaymane/KooraGoal/internal/testutil"
)

func newFixtureStack(t *testing.T, clock *testutil.Clock) (*Service, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	upstream := fixture.NewWithClock(clock.Now)
	counting := providers.FetcherFunc(func(ctx context.Context, endpoint string, params map[string]string) (json.RawMessage, error) {
		calls.Add(1)
		return upstream.Fetch(ctx, endpoint, params)
	})
	manager := cache.NewManager(kvstore.NewMemoryStore(), counting, cache.WithClock(clock.Now))
	return NewService(manager, time.UTC, WithClock(clock.Now)), &calls
}

func TestLiveMatchesServedFromCacheWithinTTL(t *testing.T) {
	clock := testutil.NewClock(testNow)
	svc, calls := newFixtureStack(t, clock)
	ctx := context.Background()

	first := svc.LiveMatches(ctx)
	clock.Advance(59 * time.Second)
	second := svc.LiveMatches(ctx)

	if len(first) == 0 || len(first) != len(second) {
		t.Fatalf("expected identical non-empty results, got %d and %d", len(first), len(second))
	}
	if calls.Load() != 1 {
		t.Fatalf("expected one upstream call, got %d", calls.Load())
	}

	clock.Advance(2 * time.Second)
	svc.LiveMatches(ctx)
	if calls.Load() != 2 {
		t.Fatalf("expected refetch after ttl, got %d calls", calls.Load())
	}
}

func TestFixtureStackAnswersEveryQuery(t *testing.T) {
	clock := testutil.NewClock(testNow)
	svc, _ := newFixtureStack(t, clock)
	ctx := context.Background()

	if len(svc.UpcomingMatches(ctx)) == 0 {
		t.Fatalf("expected upcoming matches")
	}
	if len(svc.MatchesByLeague(ctx, "")) == 0 {
		t.Fatalf("expected today's league groups")
	}
	if svc.MatchDetails(ctx, "1001") == nil {
		t.Fatalf("expected match details")
	}
	if len(svc.MatchStatistics(ctx, "1001")) == 0 {
		t.Fatalf("expected statistics")
	}
	if len(svc.HeadToHead(ctx, "541", "529")) != 4 {
		t.Fatalf("expected four meetings")
	}
	team := svc.TeamDetails(ctx, "541")
	if team == nil || len(team.Squad) != 4 || len(team.Squad[0].Data) == 0 {
		t.Fatalf("expected team with squad, got %+v", team)
	}
}

func TestTeamDetailsCachedForADay(t *testing.T) {
	clock := testutil.NewClock(testNow)
	svc, calls := newFixtureStack(t, clock)
	ctx := context.Background()

	svc.TeamDetails(ctx, "541")
	clock.Advance(23 * time.Hour)
	svc.TeamDetails(ctx, "541")
	if calls.Load() != 2 {
		t.Fatalf("expected team and squad fetched once each, got %d calls", calls.Load())
	}
}
