package apifootball

// Wire shapes of the API-Football response arrays. Nullable numbers that
// carry meaning (goals, elapsed, shirt number) are pointers; everything else
// relies on JSON null leaving the zero value in place.

type fixtureItem struct {
	Fixture fixtureBlock `json:"fixture"`
	League  leagueBlock  `json:"league"`
	Teams   teamsBlock   `json:"teams"`
	Goals   goalsBlock   `json:"goals"`
}

type fixtureBlock struct {
	ID        int64       `json:"id"`
	Date      string      `json:"date"`
	Timestamp int64       `json:"timestamp"`
	Venue     venueBlock  `json:"venue"`
	Status    statusBlock `json:"status"`
}

type venueBlock struct {
	Name string `json:"name"`
	City string `json:"city"`
}

type statusBlock struct {
	Long    string `json:"long"`
	Short   string `json:"short"`
	Elapsed *int   `json:"elapsed"`
}

type leagueBlock struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
	Logo    string `json:"logo"`
	Season  int    `json:"season"`
	Round   string `json:"round"`
}

type teamsBlock struct {
	Home teamBlock `json:"home"`
	Away teamBlock `json:"away"`
}

type teamBlock struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

type goalsBlock struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

type teamItem struct {
	Team  teamInfo   `json:"team"`
	Venue venueBlock `json:"venue"`
}

type teamInfo struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Code    string `json:"code"`
	Country string `json:"country"`
	Founded int    `json:"founded"`
	Logo    string `json:"logo"`
}

type squadItem struct {
	Team    teamBlock     `json:"team"`
	Players []squadPlayer `json:"players"`
}

type squadPlayer struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Number   *int   `json:"number"`
	Position string `json:"position"`
	Photo    string `json:"photo"`
}

type statisticsItem struct {
	Team       teamBlock   `json:"team"`
	Statistics []statEntry `json:"statistics"`
}

// Value is a number, a "55%" style string, or null.
type statEntry struct {
	Type  string `json:"type"`
	Value any    `json:"value"`
}
