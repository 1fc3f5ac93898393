package stats

// Statistic is one merged stat row. HomeValue and AwayValue are proportions that sum to ~1.
type Statistic struct {
	Label     string  `json:"label"`
	Home      string  `json:"home"`
	Away      string  `json:"away"`
	HomeValue float64 `json:"homeValue"`
	AwayValue float64 `json:"awayValue"`
}
