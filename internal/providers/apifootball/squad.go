package apifootball

import (
	"encoding/json"

	"github.com/namousaymane/KooraGoal/internal/domain/players"
	"github.com/namousaymane/KooraGoal/internal/domain/teams"
)

// positionGroups maps exact upstream positions to squad group titles.
// API-Football labels forwards "Attacker".
var positionGroups = map[string]string{
	"Goalkeeper": players.Goalkeepers,
	"Defender":   players.Defenders,
	"Midfielder": players.Midfielders,
	"Attacker":   players.Forwards,
	"Forward":    players.Forwards,
}

// MapTeam maps the first team of a teams response and attaches squad.
// It returns nil when the response is empty.
func MapTeam(raw json.RawMessage, squad []players.PositionGroup) (*teams.Team, error) {
	items, err := decodeList[teamItem](raw)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	if squad == nil {
		squad = players.EmptySquad()
	}
	t := items[0]
	return &teams.Team{
		ID:      formatID(t.Team.ID),
		Name:    t.Team.Name,
		Country: t.Team.Country,
		Logo:    t.Team.Logo,
		Stadium: t.Venue.Name,
		Founded: t.Team.Founded,
		Code:    t.Team.Code,
		Squad:   squad,
	}, nil
}

// MapSquad groups every player of a squad response into the four position groups.
// Players whose position is not an exact known label are dropped.
func MapSquad(raw json.RawMessage) ([]players.PositionGroup, error) {
	items, err := decodeList[squadItem](raw)
	if err != nil {
		return nil, err
	}

	groups := players.EmptySquad()
	slot := make(map[string]int, len(groups))
	for i, g := range groups {
		slot[g.Title] = i
	}

	for _, item := range items {
		for _, p := range item.Players {
			title, ok := positionGroups[p.Position]
			if !ok {
				continue
			}
			i := slot[title]
			groups[i].Data = append(groups[i].Data, players.Player{
				ID:     formatID(p.ID),
				Name:   p.Name,
				Number: intOrZero(p.Number),
				Image:  p.Photo,
				Rating: players.RatingUnavailable,
			})
		}
	}
	return groups, nil
}
