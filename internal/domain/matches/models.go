package matches

import (
	"time"

	"github.com/namousaymane/KooraGoal/internal/domain/teams"
)

// Display statuses for the flat match shape.
const (
	StatusLive     = "Live"
	StatusUpcoming = "Upcoming"
)

// Summary is the flat match shape used by the live and upcoming lists.
type Summary struct {
	ID         string    `json:"id"`
	HomeTeam   string    `json:"homeTeam"`
	AwayTeam   string    `json:"awayTeam"`
	HomeLogo   string    `json:"homeLogo"`
	AwayLogo   string    `json:"awayLogo"`
	League     string    `json:"league"`
	LeagueLogo string    `json:"leagueLogo"`
	Score      string    `json:"score,omitempty"`
	Time       string    `json:"time"`
	Status     string    `json:"status"`
	Kickoff    time.Time `json:"kickoff"`
}

// Status is the upstream fixture status block.
type Status struct {
	Short   string `json:"short"`
	Long    string `json:"long"`
	Elapsed *int   `json:"elapsed"`
}

// Info is the fixture block of the grouped shape.
type Info struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Timestamp int64  `json:"timestamp"`
	Venue     string `json:"venue,omitempty"`
	Status    Status `json:"status"`
}

// League identifies the competition a fixture belongs to.
type League struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country,omitempty"`
	Logo    string `json:"logo"`
	Season  int    `json:"season,omitempty"`
	Round   string `json:"round,omitempty"`
}

// Sides pairs the home and away teams.
type Sides struct {
	Home teams.Ref `json:"home"`
	Away teams.Ref `json:"away"`
}

// Goals keeps upstream nulls for matches that have not started.
type Goals struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

// Fixture is the grouped match shape used for date browsing.
type Fixture struct {
	Fixture Info      `json:"fixture"`
	League  League    `json:"league"`
	Teams   Sides     `json:"teams"`
	Goals   Goals     `json:"goals"`
	Kickoff time.Time `json:"-"`
}

// LeagueGroup is one section of the matches screen.
type LeagueGroup struct {
	ID    int       `json:"id"`
	Title string    `json:"title"`
	Logo  string    `json:"logo"`
	Data  []Fixture `json:"data"`
}

// Detail is the single match header.
type Detail struct {
	ID          string    `json:"id"`
	HomeTeam    teams.Ref `json:"homeTeam"`
	AwayTeam    teams.Ref `json:"awayTeam"`
	Score       string    `json:"score"`
	Time        string    `json:"time"`
	Status      string    `json:"status"`
	StatusShort string    `json:"statusShort"`
	League      string    `json:"league"`
	Venue       string    `json:"venue"`
	Date        string    `json:"date"`
	Kickoff     time.Time `json:"kickoff"`
}

// HeadToHead is one past meeting between two teams.
type HeadToHead struct {
	ID      string    `json:"id"`
	Home    string    `json:"home"`
	Away    string    `json:"away"`
	Score   string    `json:"score"`
	Date    string    `json:"date"`
	League  string    `json:"league"`
	Kickoff time.Time `json:"kickoff"`
}

// Day is one entry of the matches screen date picker.
type Day struct {
	Weekday string `json:"day"`
	Label   string `json:"date"`
	Value   string `json:"value"`
	Active  bool   `json:"active"`
}
