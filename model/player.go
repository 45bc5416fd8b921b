package model

import (
	"fmt"
	"slices"
	"strings"
)

// TeamAggregatePrefix marks the ID of a synthesized team view so it can never
// collide with a real player ID.
const TeamAggregatePrefix = "team-"

type Stats struct {
	Targets    int `json:"targets"`
	Receptions int `json:"receptions"`
	Yards      int `json:"yards"`
	TDs        int `json:"tds"`
}

func (s *Stats) Add(o Stats) {
	s.Targets += o.Targets
	s.Receptions += o.Receptions
	s.Yards += o.Yards
	s.TDs += o.TDs
}

// CatchRate is receptions/targets in the 0-1 range, 0 if there were no targets.
func (s Stats) CatchRate() float64 {
	if s.Targets == 0 {
		return 0
	}
	return float64(s.Receptions) / float64(s.Targets)
}

// YardsPerCatch is 0 if there were no receptions.
func (s Stats) YardsPerCatch() float64 {
	if s.Receptions == 0 {
		return 0
	}
	return float64(s.Yards) / float64(s.Receptions)
}

// YardsPerTarget is 0 if there were no targets.
func (s Stats) YardsPerTarget() float64 {
	if s.Targets == 0 {
		return 0
	}
	return float64(s.Yards) / float64(s.Targets)
}

func (s Stats) TDsPerTarget() float64 {
	if s.Targets == 0 {
		return 0
	}
	return float64(s.TDs) / float64(s.Targets)
}

// FormattedCatchRate returns the catch rate as a percentage with one decimal, e.g. "68.2%".
func (s Stats) FormattedCatchRate() string {
	return Percent(s.CatchRate(), 1)
}

func (s Stats) FormattedYardsPerCatch() string {
	return ToFixed(s.YardsPerCatch(), 1)
}

type ZoneStats struct {
	Depth     Depth     `json:"depth"`
	Direction Direction `json:"direction"`
	Stats
}

func (z *ZoneStats) Key() ZoneKey {
	return ZoneKey{Depth: z.Depth, Direction: z.Direction}
}

type Player struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Team       string      `json:"team"`
	TotalStats Stats       `json:"total_stats"`
	Zones      []ZoneStats `json:"zones"`
}

func (p *Player) IsTeamAggregate() bool {
	return strings.HasPrefix(p.ID, TeamAggregatePrefix)
}

// Clone copies the player along with its zones.
func (p *Player) Clone() Player {
	c := *p
	c.Zones = slices.Clone(p.Zones)
	return c
}

// Zone returns the stats for a single zone, or nil if the player has no data there.
func (p *Player) Zone(k ZoneKey) *ZoneStats {
	for i := range p.Zones {
		if p.Zones[i].Key() == k {
			return &p.Zones[i]
		}
	}
	return nil
}

// OptionLabel is how the player is shown in the player selector.
func (p *Player) OptionLabel() string {
	return fmt.Sprintf("%s (%s) - %d yds", p.Name, p.Team, p.TotalStats.Yards)
}

func TeamAggregateID(team string) string {
	return TeamAggregatePrefix + team
}

func TeamAggregateName(team string) string {
	return fmt.Sprintf("%s WR Corps", team)
}
