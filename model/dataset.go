package model

import (
	"slices"
	"time"
)

type LeagueAverage struct {
	YPT       float64 `json:"ypt"`
	CatchRate float64 `json:"catch_rate,omitempty"`
}

// LeagueAverages is keyed by zone. It may be empty when the dataset is a bare
// player list.
type LeagueAverages map[ZoneKey]LeagueAverage

func (l LeagueAverages) Get(k ZoneKey) (LeagueAverage, bool) {
	if l == nil {
		return LeagueAverage{}, false
	}
	a, found := l[k]
	return a, found
}

// Dataset is everything loaded at startup. It is never modified afterwards.
type Dataset struct {
	Players        []Player
	LeagueAverages LeagueAverages
	Source         string
	LoadedAt       time.Time
}

// Teams returns the sorted, de-duplicated list of team codes.
func (d *Dataset) Teams() []string {
	seen := make(map[string]bool)
	teams := make([]string, 0, 32)
	for _, p := range d.Players {
		if p.Team == "" || seen[p.Team] {
			continue
		}
		seen[p.Team] = true
		teams = append(teams, p.Team)
	}
	slices.Sort(teams)
	return teams
}

// Status describes the loaded dataset for health checks and the page footer.
type Status struct {
	Available bool      `json:"available"`
	Error     string    `json:"error,omitempty"`
	Source    string    `json:"source,omitempty"`
	LoadedAt  time.Time `json:"loaded_at"`
	Players   int       `json:"players"`
	Teams     int       `json:"teams"`
}

func (s Status) FormattedLoadedAt() string {
	if s.LoadedAt.IsZero() {
		return "unknown"
	}
	return s.LoadedAt.Format(time.DateTime)
}
