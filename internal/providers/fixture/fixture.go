// Package fixture serves canned API-Football responses so the app runs without an API key.
package fixture

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/namousaymane/KooraGoal/internal/timeutil"
)

const logoBase = "https://media.api-sports.io/football"

// Provider implements providers.Fetcher with deterministic sample data.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return NewWithClock(time.Now)
}

// NewWithClock creates a fixture provider whose dates are relative to now.
func NewWithClock(now func() time.Time) *Provider {
	if now == nil {
		now = time.Now
	}
	return &Provider{now: now}
}

type obj = map[string]any

// Fetch answers the same endpoints as the live API with the response array only.
func (p *Provider) Fetch(ctx context.Context, endpoint string, params map[string]string) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var response []obj
	switch strings.TrimPrefix(endpoint, "/") {
	case "fixtures":
		response = p.fixtures(params)
	case "fixtures/statistics":
		response = statistics()
	case "fixtures/headtohead":
		response = headToHead(params["h2h"])
	case "teams":
		response = team(params["id"])
	case "players/squad":
		response = squad(params["team"])
	default:
		response = []obj{}
	}

	data, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(response)
	if err != nil {
		return nil, fmt.Errorf("fixture: encode %s: %w", endpoint, err)
	}
	return data, nil
}

func (p *Provider) fixtures(params map[string]string) []obj {
	loc := time.UTC
	if tz, err := time.LoadLocation(params["timezone"]); err == nil && params["timezone"] != "" {
		loc = tz
	}
	now := p.now().In(loc)

	switch {
	case params["live"] != "":
		return []obj{
			fixture(101, now.Add(-75*time.Minute), "2H", "Second Half", 75, 2, 1, premierLeague, side(50, "Man City"), side(40, "Liverpool")),
			fixture(102, now.Add(-15*time.Minute), "1H", "First Half", 15, 0, 0, laLiga, side(541, "Real Madrid"), side(529, "Barcelona")),
		}
	case params["next"] != "":
		tomorrow := timeutil.StartOfDay(now, loc).AddDate(0, 0, 1)
		return []obj{
			fixture(103, tomorrow.Add(20*time.Hour), "NS", "Not Started", -1, -1, -1, premierLeague, side(42, "Arsenal"), side(49, "Chelsea")),
			fixture(104, tomorrow.Add(20*time.Hour+45*time.Minute), "NS", "Not Started", -1, -1, -1, serieA, side(496, "Juventus"), side(489, "AC Milan")),
		}
	case params["id"] != "":
		id, _ := strconv.ParseInt(params["id"], 10, 64)
		if id <= 0 {
			return []obj{}
		}
		f := fixture(id, now.Add(-74*time.Minute), "2H", "Second Half", 74, 2, 1, laLiga, side(541, "Real Madrid"), side(529, "Barcelona"))
		f["fixture"].(obj)["venue"] = obj{"name": "Estadio Santiago Bernabéu", "city": "Madrid"}
		return []obj{f}
	case params["date"] != "":
		day, err := time.ParseInLocation(timeutil.DateLayout, params["date"], loc)
		if err != nil {
			return []obj{}
		}
		return dayFixtures(day, now)
	}
	return []obj{}
}

// dayFixtures finishes matches on past days, leaves future days unplayed.
func dayFixtures(day, now time.Time) []obj {
	type slot struct {
		id         int64
		offset     time.Duration
		league     obj
		home, away obj
		goalsH     int
		goalsA     int
	}
	slots := []slot{
		{105, 15 * time.Hour, premierLeague, side(33, "Man United"), side(47, "Spurs"), 1, 1},
		{106, 21 * time.Hour, ligue1, side(85, "PSG"), side(81, "Marseille"), 3, 0},
	}
	seed := day.Year()*1000 + day.YearDay()

	out := make([]obj, 0, len(slots))
	for _, s := range slots {
		ko := day.Add(s.offset)
		id := s.id*100000 + int64(seed%100000)
		if ko.Before(now) {
			out = append(out, fixture(id, ko, "FT", "Match Finished", 90, s.goalsH, s.goalsA, s.league, s.home, s.away))
			continue
		}
		out = append(out, fixture(id, ko, "NS", "Not Started", -1, -1, -1, s.league, s.home, s.away))
	}
	return out
}

var (
	premierLeague = league(39, "Premier League", "England")
	laLiga        = league(140, "La Liga", "Spain")
	serieA        = league(135, "Serie A", "Italy")
	ligue1        = league(61, "Ligue 1", "France")
)

func league(id int, name, country string) obj {
	return obj{"id": id, "name": name, "country": country, "logo": fmt.Sprintf("%s/leagues/%d.png", logoBase, id), "season": 2023}
}

func side(id int64, name string) obj {
	return obj{"id": id, "name": name, "logo": fmt.Sprintf("%s/teams/%d.png", logoBase, id)}
}

// fixture builds one response item. Negative elapsed or goals encode null.
func fixture(id int64, kickoff time.Time, short, long string, elapsed, goalsHome, goalsAway int, lg, home, away obj) obj {
	return obj{
		"fixture": obj{
			"id":        id,
			"date":      kickoff.Format(time.RFC3339),
			"timestamp": kickoff.Unix(),
			"venue":     obj{"name": nil, "city": nil},
			"status":    obj{"long": long, "short": short, "elapsed": nullable(elapsed)},
		},
		"league": lg,
		"teams":  obj{"home": home, "away": away},
		"goals":  obj{"home": nullable(goalsHome), "away": nullable(goalsAway)},
	}
}

func nullable(v int) any {
	if v < 0 {
		return nil
	}
	return v
}

func statistics() []obj {
	home := []obj{
		{"type": "Ball Possession", "value": "55%"},
		{"type": "Total Shots", "value": 12},
		{"type": "Shots on Goal", "value": 5},
		{"type": "Corner Kicks", "value": 7},
		{"type": "Offsides", "value": 2},
		{"type": "Fouls", "value": 10},
		{"type": "Yellow Cards", "value": 1},
	}
	away := []obj{
		{"type": "Ball Possession", "value": "45%"},
		{"type": "Total Shots", "value": 8},
		{"type": "Shots on Goal", "value": 3},
		{"type": "Corner Kicks", "value": 2},
		{"type": "Offsides", "value": 4},
		{"type": "Fouls", "value": 12},
		{"type": "Yellow Cards", "value": 3},
	}
	return []obj{
		{"team": side(541, "Real Madrid"), "statistics": home},
		{"team": side(529, "Barcelona"), "statistics": away},
	}
}

func headToHead(pair string) []obj {
	if !strings.Contains(pair, "-") {
		return []obj{}
	}
	rm, fcb := side(541, "Real Madrid"), side(529, "Barcelona")
	copa := league(143, "Copa del Rey", "Spain")
	at := func(date string) time.Time {
		t, _ := time.Parse(timeutil.DateLayout, date)
		return t.Add(20 * time.Hour)
	}
	return []obj{
		fixture(9001, at("2023-03-19"), "FT", "Match Finished", 90, 2, 1, laLiga, fcb, rm),
		fixture(9002, at("2022-10-16"), "FT", "Match Finished", 90, 3, 1, laLiga, rm, fcb),
		fixture(9003, at("2023-03-02"), "FT", "Match Finished", 90, 0, 1, copa, rm, fcb),
		fixture(9004, at("2022-03-20"), "FT", "Match Finished", 90, 0, 4, laLiga, rm, fcb),
	}
}

func team(id string) []obj {
	teamID, err := strconv.ParseInt(id, 10, 64)
	if err != nil || teamID <= 0 {
		return []obj{}
	}
	return []obj{{
		"team": obj{
			"id":      teamID,
			"name":    "Real Madrid",
			"code":    "REA",
			"country": "Spain",
			"founded": 1902,
			"logo":    fmt.Sprintf("%s/teams/541.png", logoBase),
		},
		"venue": obj{"name": "Estadio Santiago Bernabéu", "city": "Madrid"},
	}}
}

func squad(id string) []obj {
	teamID, err := strconv.ParseInt(id, 10, 64)
	if err != nil || teamID <= 0 {
		return []obj{}
	}
	player := func(pid int64, name string, number int, position string) obj {
		return obj{
			"id":       pid,
			"name":     name,
			"number":   number,
			"position": position,
			"photo":    fmt.Sprintf("%s/players/%d.png", logoBase, pid),
		}
	}
	return []obj{{
		"team": side(teamID, "Real Madrid"),
		"players": []obj{
			player(44, "Thibaut Courtois", 1, "Goalkeeper"),
			player(30409, "Andriy Lunin", 13, "Goalkeeper"),
			player(738, "David Alaba", 4, "Defender"),
			player(50125, "Éder Militão", 3, "Defender"),
			player(748, "Dani Carvajal", 2, "Defender"),
			player(157209, "Jude Bellingham", 5, "Midfielder"),
			player(756, "Toni Kroos", 8, "Midfielder"),
			player(757, "Luka Modrić", 10, "Midfielder"),
			player(50130, "Vinícius Júnior", 7, "Attacker"),
			player(60338, "Rodrygo", 11, "Attacker"),
		},
	}}
}
