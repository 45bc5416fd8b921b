package controller

import (
	"slices"

	"github.com/mww/wr_zones/model"
)

// aggregateTeam sums the totals and the per-zone stats of every player into a
// synthetic player for the team. Zones are unioned by (depth, direction), a
// zone missing for a player just doesn't contribute.
func aggregateTeam(players []model.Player, team string) *model.Player {
	agg := &model.Player{
		ID:    model.TeamAggregateID(team),
		Name:  model.TeamAggregateName(team),
		Team:  team,
		Zones: make([]model.ZoneStats, 0, 9),
	}

	zones := make(map[model.ZoneKey]*model.ZoneStats)
	for _, p := range players {
		agg.TotalStats.Add(p.TotalStats)

		for _, z := range p.Zones {
			key := z.Key()
			sum, found := zones[key]
			if !found {
				sum = &model.ZoneStats{Depth: z.Depth, Direction: z.Direction}
				zones[key] = sum
			}
			sum.Add(z.Stats)
		}
	}

	for _, z := range zones {
		agg.Zones = append(agg.Zones, *z)
	}
	slices.SortFunc(agg.Zones, func(a, b model.ZoneStats) int {
		switch {
		case a.Key().Less(b.Key()):
			return -1
		case b.Key().Less(a.Key()):
			return 1
		default:
			return 0
		}
	})

	return agg
}
