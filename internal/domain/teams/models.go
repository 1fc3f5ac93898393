package teams

import "github.com/namousaymane/KooraGoal/internal/domain/players"

// Ref is the minimal team reference embedded in fixtures and match details.
type Ref struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

// Team is the normalized team profile with its squad grouped by position.
type Team struct {
	ID      string                  `json:"id"`
	Name    string                  `json:"name"`
	Country string                  `json:"country"`
	Logo    string                  `json:"logo"`
	Stadium string                  `json:"stadium"`
	Founded int                     `json:"founded,omitempty"`
	Code    string                  `json:"code,omitempty"`
	Squad   []players.PositionGroup `json:"squad"`
}
