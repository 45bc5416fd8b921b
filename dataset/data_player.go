package dataset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mww/wr_zones/model"
)

var (
	errDuplicateZone = errors.New("duplicate zone")
	errMissingID     = errors.New("player is missing an id")
	errBadFormat     = errors.New("expected a list of players or an object with players")
)

type dataPlayer struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Team       string     `json:"team"`
	TotalStats dataStats  `json:"total_stats"`
	Zones      []dataZone `json:"zones"`
}

type dataStats struct {
	Targets    int `json:"targets"`
	Receptions int `json:"receptions"`
	Yards      int `json:"yards"`
	TDs        int `json:"tds"`
}

// dataZone also carries catch_rate and ypt when written by the build pipeline.
// They are ignored, rates are always recomputed from the counts.
type dataZone struct {
	Depth     string `json:"depth"`
	Direction string `json:"direction"`
	dataStats
	CatchRate float64 `json:"catch_rate"`
	YPT       float64 `json:"ypt"`
}

type dataLeagueAverage struct {
	YPT       float64 `json:"ypt"`
	CatchRate float64 `json:"catch_rate"`
}

type wrappedData struct {
	Players        []dataPlayer                 `json:"players"`
	LeagueAverages map[string]dataLeagueAverage `json:"league_averages"`
}

func (s dataStats) toStats() model.Stats {
	return model.Stats{
		Targets:    s.Targets,
		Receptions: s.Receptions,
		Yards:      s.Yards,
		TDs:        s.TDs,
	}
}

func (p *dataPlayer) toPlayer() (*model.Player, error) {
	if p.ID == "" {
		return nil, fmt.Errorf("%w (name: '%s')", errMissingID, p.Name)
	}

	player := &model.Player{
		ID:         p.ID,
		Name:       p.Name,
		Team:       p.Team,
		TotalStats: p.TotalStats.toStats(),
		Zones:      make([]model.ZoneStats, 0, len(p.Zones)),
	}

	seen := make(map[model.ZoneKey]bool)
	for _, z := range p.Zones {
		key, err := model.ParseZoneKey(z.Depth + "-" + z.Direction)
		if err != nil {
			return nil, fmt.Errorf("player %s: %w", p.ID, err)
		}
		if seen[key] {
			return nil, fmt.Errorf("player %s: %w %s", p.ID, errDuplicateZone, key)
		}
		seen[key] = true

		player.Zones = append(player.Zones, model.ZoneStats{
			Depth:     key.Depth,
			Direction: key.Direction,
			Stats:     z.toStats(),
		})
	}
	return player, nil
}

// Parse accepts both dataset layouts: a bare JSON array of players, or an
// object with "players" and "league_averages".
func Parse(b []byte) (*model.Dataset, error) {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 {
		return nil, errBadFormat
	}

	var wrapped wrappedData
	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(trimmed, &wrapped.Players); err != nil {
			return nil, fmt.Errorf("error decoding player list: %w", err)
		}
	case '{':
		if err := json.Unmarshal(trimmed, &wrapped); err != nil {
			return nil, fmt.Errorf("error decoding dataset: %w", err)
		}
	default:
		return nil, errBadFormat
	}

	ds := &model.Dataset{
		Players:        make([]model.Player, 0, len(wrapped.Players)),
		LeagueAverages: make(model.LeagueAverages, len(wrapped.LeagueAverages)),
	}

	for i := range wrapped.Players {
		p, err := wrapped.Players[i].toPlayer()
		if err != nil {
			return nil, err
		}
		ds.Players = append(ds.Players, *p)
	}

	for k, v := range wrapped.LeagueAverages {
		key, err := model.ParseZoneKey(k)
		if err != nil {
			return nil, fmt.Errorf("league averages: %w", err)
		}
		ds.LeagueAverages[key] = model.LeagueAverage{YPT: v.YPT, CatchRate: v.CatchRate}
	}

	return ds, nil
}
