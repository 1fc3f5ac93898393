package players

// RatingUnavailable is shown when the upstream carries no rating for a player.
const RatingUnavailable = "N/A"

// Squad group titles, in display order.
const (
	Goalkeepers = "Goalkeepers"
	Defenders   = "Defenders"
	Midfielders = "Midfielders"
	Forwards    = "Forwards"
)

// GroupTitles lists the squad groups in the order they are rendered.
var GroupTitles = []string{Goalkeepers, Defenders, Midfielders, Forwards}

// Player is one squad member.
type Player struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Number int    `json:"number"`
	Image  string `json:"image"`
	Rating string `json:"rating"`
}

// PositionGroup is a titled bucket of players.
type PositionGroup struct {
	Title string   `json:"title"`
	Data  []Player `json:"data"`
}

// EmptySquad returns the four groups with no players, in display order.
func EmptySquad() []PositionGroup {
	groups := make([]PositionGroup, 0, len(GroupTitles))
	for _, title := range GroupTitles {
		groups = append(groups, PositionGroup{Title: title, Data: []Player{}})
	}
	return groups
}
