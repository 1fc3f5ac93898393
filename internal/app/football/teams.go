package football

import (
	"context"

	"github.com/namousaymane/KooraGoal/internal/domain/players"
	"github.com/namousaymane/KooraGoal/internal/domain/teams"
	"github.com/namousaymane/KooraGoal/internal/providers/apifootball"
)

// TeamDetails returns team metadata with its squad, or nil when the team is unknown.
// The squad is only requested once the team itself resolved.
func (s *Service) TeamDetails(ctx context.Context, id string) *teams.Team {
	if !validID(id) {
		return nil
	}
	raw := s.fetch(ctx, apifootball.EndpointTeams, map[string]string{"id": id}, TeamTTL)
	team, err := apifootball.MapTeam(raw, nil)
	if err != nil {
		s.logMapFailure(ctx, apifootball.EndpointTeams, err)
		return nil
	}
	if team == nil {
		return nil
	}
	team.Squad = s.squad(ctx, id)
	return team
}

func (s *Service) squad(ctx context.Context, teamID string) []players.PositionGroup {
	raw := s.fetch(ctx, apifootball.EndpointSquads, map[string]string{"team": teamID}, TeamTTL)
	groups, err := apifootball.MapSquad(raw)
	if err != nil {
		s.logMapFailure(ctx, apifootball.EndpointSquads, err)
		return players.EmptySquad()
	}
	return groups
}
