package testutil

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// FixtureJSON renders one API-Football fixture item. Negative goals render as null.
func FixtureJSON(id int64, kickoff time.Time, short string, elapsed, goalsHome, goalsAway int, leagueID int, leagueName, home, away string) string {
	return fmt.Sprintf(`{
		"fixture": {"id": %d, "date": %q, "timestamp": %d, "status": {"long": "", "short": %q, "elapsed": %s}},
		"league": {"id": %d, "name": %q, "logo": "https://media.api-sports.io/football/leagues/%d.png", "season": 2023},
		"teams": {"home": {"id": %d, "name": %q, "logo": "h.png"}, "away": {"id": %d, "name": %q, "logo": "a.png"}},
		"goals": {"home": %s, "away": %s}
	}`, id, kickoff.Format(time.RFC3339), kickoff.Unix(), short, nullableInt(elapsed),
		leagueID, leagueName, leagueID, id*10+1, home, id*10+2, away,
		nullableInt(goalsHome), nullableInt(goalsAway))
}

// ResponseList joins items into a JSON array suitable as a fetcher response.
func ResponseList(items ...string) json.RawMessage {
	return json.RawMessage("[" + strings.Join(items, ",") + "]")
}

func nullableInt(v int) string {
	if v < 0 {
		return "null"
	}
	return fmt.Sprintf("%d", v)
}
