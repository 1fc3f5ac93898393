package football

import (
	"context"
	"strconv"

	"github.com/namousaymane/KooraGoal/internal/domain/matches"
	"github.com/namousaymane/KooraGoal/internal/domain/stats"
	"github.com/namousaymane/KooraGoal/internal/providers/apifootball"
	"github.com/namousaymane/KooraGoal/internal/timeutil"
)

// LiveMatches returns fixtures currently in play.
func (s *Service) LiveMatches(ctx context.Context) []matches.Summary {
	raw := s.fetch(ctx, apifootball.EndpointFixtures, map[string]string{"live": "all"}, LiveTTL)
	out, err := apifootball.MapLiveMatches(raw)
	if err != nil {
		s.logMapFailure(ctx, apifootball.EndpointFixtures, err)
		return []matches.Summary{}
	}
	return out
}

// UpcomingMatches returns the next scheduled fixtures with kickoff clocks in the service location.
func (s *Service) UpcomingMatches(ctx context.Context) []matches.Summary {
	params := map[string]string{"next": strconv.Itoa(apifootball.UpcomingCount)}
	raw := s.fetch(ctx, apifootball.EndpointFixtures, params, UpcomingTTL)
	out, err := apifootball.MapUpcomingMatches(raw, s.loc)
	if err != nil {
		s.logMapFailure(ctx, apifootball.EndpointFixtures, err)
		return []matches.Summary{}
	}
	return out
}

// MatchesByDate returns fixtures kicking off on date (YYYY-MM-DD) in the service location.
// An empty or malformed date means today.
func (s *Service) MatchesByDate(ctx context.Context, date string) []matches.Fixture {
	day := s.resolveDate(date)
	ttl := OtherDayTTL
	if day == s.today() {
		ttl = TodayTTL
	}

	params := map[string]string{"date": day, "timezone": s.loc.String()}
	raw := s.fetch(ctx, apifootball.EndpointFixtures, params, ttl)
	all, err := apifootball.MapFixtures(raw)
	if err != nil {
		s.logMapFailure(ctx, apifootball.EndpointFixtures, err)
		return []matches.Fixture{}
	}

	// The upstream day boundary follows its own timezone handling; filter on the raw instant.
	out := make([]matches.Fixture, 0, len(all))
	for _, f := range all {
		if timeutil.SameDay(f.Kickoff, day, s.loc) {
			out = append(out, f)
		}
	}
	return out
}

// MatchesByLeague returns the fixtures of date grouped by league in first-seen order.
func (s *Service) MatchesByLeague(ctx context.Context, date string) []matches.LeagueGroup {
	return apifootball.GroupByLeague(s.MatchesByDate(ctx, date))
}

// MatchDetails returns a single fixture snapshot, or nil when it cannot be produced.
func (s *Service) MatchDetails(ctx context.Context, id string) *matches.Detail {
	if !validID(id) {
		return nil
	}
	raw := s.fetch(ctx, apifootball.EndpointFixtures, map[string]string{"id": id}, DetailTTL)
	detail, err := apifootball.MapMatchDetail(raw, s.loc)
	if err != nil {
		s.logMapFailure(ctx, apifootball.EndpointFixtures, err)
		return nil
	}
	return detail
}

// MatchStatistics returns the merged home/away statistics of a fixture.
func (s *Service) MatchStatistics(ctx context.Context, id string) []stats.Statistic {
	if !validID(id) {
		return []stats.Statistic{}
	}
	raw := s.fetch(ctx, apifootball.EndpointStatistics, map[string]string{"fixture": id}, StatisticsTTL)
	out, err := apifootball.MapStatistics(raw)
	if err != nil {
		s.logMapFailure(ctx, apifootball.EndpointStatistics, err)
		return []stats.Statistic{}
	}
	return out
}

// HeadToHead returns the last meetings of two teams, most recent first.
func (s *Service) HeadToHead(ctx context.Context, team1, team2 string) []matches.HeadToHead {
	if !validID(team1) || !validID(team2) {
		return []matches.HeadToHead{}
	}
	params := map[string]string{
		"h2h":  team1 + "-" + team2,
		"last": strconv.Itoa(apifootball.HeadToHeadCount),
	}
	raw := s.fetch(ctx, apifootball.EndpointHeadToHead, params, HeadToHeadTTL)
	out, err := apifootball.MapHeadToHead(raw, s.loc)
	if err != nil {
		s.logMapFailure(ctx, apifootball.EndpointHeadToHead, err)
		return []matches.HeadToHead{}
	}
	return out
}
