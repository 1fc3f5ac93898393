package apifootball

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/namousaymane/KooraGoal/internal/domain/matches"
	"github.com/namousaymane/KooraGoal/internal/domain/teams"
	"github.com/namousaymane/KooraGoal/internal/timeutil"
)

var (
	liveStatuses      = map[string]bool{"1H": true, "HT": true, "2H": true, "ET": true, "BT": true, "P": true, "SUSP": true, "INT": true, "LIVE": true}
	scheduledStatuses = map[string]bool{"NS": true, "TBD": true}
)

func decodeList[T any](raw json.RawMessage) ([]T, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var items []T
	if err := jsonAPI.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%s: decode response: %w", providerName, err)
	}
	return items, nil
}

// MapLiveMatches maps a live fixtures response to the flat shape with score and elapsed minute.
func MapLiveMatches(raw json.RawMessage) ([]matches.Summary, error) {
	items, err := decodeList[fixtureItem](raw)
	if err != nil {
		return nil, err
	}
	out := make([]matches.Summary, 0, len(items))
	for _, item := range items {
		s := summary(item)
		s.Score = scoreLine(item.Goals)
		s.Time = elapsedLabel(item.Fixture.Status.Elapsed)
		s.Status = matches.StatusLive
		out = append(out, s)
	}
	return out, nil
}

// MapUpcomingMatches maps upcoming fixtures to the flat shape with the kickoff clock in loc.
func MapUpcomingMatches(raw json.RawMessage, loc *time.Location) ([]matches.Summary, error) {
	items, err := decodeList[fixtureItem](raw)
	if err != nil {
		return nil, err
	}
	out := make([]matches.Summary, 0, len(items))
	for _, item := range items {
		s := summary(item)
		s.Time = timeutil.FormatClock(s.Kickoff, loc)
		s.Status = matches.StatusUpcoming
		out = append(out, s)
	}
	return out, nil
}

// MapFixtures maps fixtures to the grouped shape, keeping upstream nulls for goals.
func MapFixtures(raw json.RawMessage) ([]matches.Fixture, error) {
	items, err := decodeList[fixtureItem](raw)
	if err != nil {
		return nil, err
	}
	out := make([]matches.Fixture, 0, len(items))
	for _, item := range items {
		out = append(out, matches.Fixture{
			Fixture: matches.Info{
				ID:        formatID(item.Fixture.ID),
				Date:      item.Fixture.Date,
				Timestamp: item.Fixture.Timestamp,
				Venue:     item.Fixture.Venue.Name,
				Status: matches.Status{
					Short:   item.Fixture.Status.Short,
					Long:    item.Fixture.Status.Long,
					Elapsed: item.Fixture.Status.Elapsed,
				},
			},
			League: matches.League{
				ID:      item.League.ID,
				Name:    item.League.Name,
				Country: item.League.Country,
				Logo:    item.League.Logo,
				Season:  item.League.Season,
				Round:   item.League.Round,
			},
			Teams: matches.Sides{
				Home: teamRef(item.Teams.Home),
				Away: teamRef(item.Teams.Away),
			},
			Goals: matches.Goals{
				Home: item.Goals.Home,
				Away: item.Goals.Away,
			},
			Kickoff: kickoff(item.Fixture),
		})
	}
	return out, nil
}

// GroupByLeague buckets fixtures per league, in the order leagues first appear.
func GroupByLeague(fixtures []matches.Fixture) []matches.LeagueGroup {
	groups := make([]matches.LeagueGroup, 0)
	index := make(map[int]int)
	for _, f := range fixtures {
		i, ok := index[f.League.ID]
		if !ok {
			i = len(groups)
			index[f.League.ID] = i
			groups = append(groups, matches.LeagueGroup{
				ID:    f.League.ID,
				Title: f.League.Name,
				Logo:  f.League.Logo,
				Data:  []matches.Fixture{},
			})
		}
		groups[i].Data = append(groups[i].Data, f)
	}
	return groups
}

// MapMatchDetail maps the first fixture of a by-id response. It returns nil when the response is empty.
func MapMatchDetail(raw json.RawMessage, loc *time.Location) (*matches.Detail, error) {
	items, err := decodeList[fixtureItem](raw)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	item := items[0]
	ko := kickoff(item.Fixture)
	status, clock := matchState(item.Fixture.Status, ko, loc)

	return &matches.Detail{
		ID:          formatID(item.Fixture.ID),
		HomeTeam:    teamRef(item.Teams.Home),
		AwayTeam:    teamRef(item.Teams.Away),
		Score:       scoreLine(item.Goals),
		Time:        clock,
		Status:      status,
		StatusShort: item.Fixture.Status.Short,
		League:      leagueLabel(item.League),
		Venue:       item.Fixture.Venue.Name,
		Date:        timeutil.FormatShortDate(ko, loc),
		Kickoff:     ko,
	}, nil
}

// MapHeadToHead maps past meetings, most recent first.
func MapHeadToHead(raw json.RawMessage, loc *time.Location) ([]matches.HeadToHead, error) {
	items, err := decodeList[fixtureItem](raw)
	if err != nil {
		return nil, err
	}
	out := make([]matches.HeadToHead, 0, len(items))
	for _, item := range items {
		ko := kickoff(item.Fixture)
		out = append(out, matches.HeadToHead{
			ID:      formatID(item.Fixture.ID),
			Home:    item.Teams.Home.Name,
			Away:    item.Teams.Away.Name,
			Score:   scoreLine(item.Goals),
			Date:    timeutil.FormatShortDate(ko, loc),
			League:  item.League.Name,
			Kickoff: ko,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Kickoff.After(out[j].Kickoff)
	})
	return out, nil
}

func summary(item fixtureItem) matches.Summary {
	return matches.Summary{
		ID:         formatID(item.Fixture.ID),
		HomeTeam:   item.Teams.Home.Name,
		AwayTeam:   item.Teams.Away.Name,
		HomeLogo:   item.Teams.Home.Logo,
		AwayLogo:   item.Teams.Away.Logo,
		League:     item.League.Name,
		LeagueLogo: item.League.Logo,
		Kickoff:    kickoff(item.Fixture),
	}
}

func teamRef(t teamBlock) teams.Ref {
	return teams.Ref{ID: formatID(t.ID), Name: t.Name, Logo: t.Logo}
}

// kickoff prefers the ISO date and falls back to the unix timestamp.
func kickoff(f fixtureBlock) time.Time {
	if t := timeutil.ParseInstant(f.Date); !t.IsZero() {
		return t
	}
	if f.Timestamp > 0 {
		return time.Unix(f.Timestamp, 0).UTC()
	}
	return time.Time{}
}

// matchState returns the display status and time label for a fixture.
func matchState(s statusBlock, ko time.Time, loc *time.Location) (string, string) {
	switch {
	case liveStatuses[s.Short]:
		return matches.StatusLive, elapsedLabel(s.Elapsed)
	case scheduledStatuses[s.Short]:
		return matches.StatusUpcoming, timeutil.FormatClock(ko, loc)
	case s.Long != "":
		return s.Long, s.Short
	default:
		return s.Short, s.Short
	}
}

func scoreLine(g goalsBlock) string {
	return fmt.Sprintf("%d - %d", intOrZero(g.Home), intOrZero(g.Away))
}

func elapsedLabel(elapsed *int) string {
	return fmt.Sprintf("%d'", intOrZero(elapsed))
}

// leagueLabel renders "La Liga • 2023/24".
func leagueLabel(l leagueBlock) string {
	if l.Season <= 0 {
		return l.Name
	}
	return fmt.Sprintf("%s • %d/%02d", l.Name, l.Season, (l.Season+1)%100)
}

func formatID(id int64) string {
	if id == 0 {
		return ""
	}
	return strconv.FormatInt(id, 10)
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
