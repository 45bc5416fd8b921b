package controller

import (
	"context"

	"github.com/mww/wr_zones/model"
)

const (
	baselineLeague = "League avg"
	baselineTeam   = "Team avg"

	diffThreshold = 2.0
)

func diffColor(d float64) model.DiffColor {
	switch {
	case d >= diffThreshold:
		return model.DIFF_GREEN
	case d <= -diffThreshold:
		return model.DIFF_RED
	case d > 0:
		return model.DIFF_YELLOW
	default:
		return model.DIFF_NEUTRAL
	}
}

func (c *controller) ZoneDetail(ctx context.Context, entityID string, zone model.ZoneKey) (*model.ZoneComparison, error) {
	ds, err := c.dataset()
	if err != nil {
		return nil, err
	}
	entity, err := c.getEntity(ctx, entityID)
	if err != nil {
		return nil, err
	}
	return compareZone(ds, entity, zone), nil
}

// compareZone lines the entity's zone up against the league average and picks
// out the teammate doing the most with their targets there. For a team view
// every member of the team is a candidate and is measured against the league,
// for a player the other members of the same team are measured against the
// team's own average in the zone.
func compareZone(ds *model.Dataset, entity *model.Player, zone model.ZoneKey) *model.ZoneComparison {
	isTeam := entity.IsTeamAggregate()
	cmp := &model.ZoneComparison{
		EntityID:   entity.ID,
		EntityName: entity.Name,
		IsTeam:     isTeam,
		Zone:       zone.String(),
		Label:      zone.Label(),
		DiffColor:  model.DIFF_NEUTRAL,
	}

	if z := entity.Zone(zone); z != nil {
		cmp.HasData = true
		cmp.Stats = z.Stats
		cmp.YPT = z.YardsPerTarget()
	}

	league, hasLeague := ds.LeagueAverages.Get(zone)
	if hasLeague {
		cmp.HasLeague = true
		cmp.LeagueYPT = league.YPT
		cmp.Diff = cmp.YPT - league.YPT
		cmp.DiffColor = diffColor(cmp.Diff)
	}

	teammates := make([]model.Player, 0, 8)
	for _, p := range ds.Players {
		if p.Team == entity.Team && p.ID != entity.ID {
			teammates = append(teammates, p)
		}
	}

	best := bestInZone(teammates, zone)
	if best == nil {
		return cmp
	}

	bz := best.Zone(zone)
	tc := &model.TeammateComparison{
		PlayerID:  best.ID,
		Name:      best.Name,
		Targets:   bz.Targets,
		YPT:       bz.YardsPerTarget(),
		DiffColor: model.DIFF_NEUTRAL,
	}

	if isTeam {
		tc.BaselineName = baselineLeague
		if hasLeague {
			tc.HasBaseline = true
			tc.BaselineYPT = league.YPT
		}
	} else {
		tc.BaselineName = baselineTeam
		team := aggregateTeam(filterTeam(ds.Players, entity.Team), entity.Team)
		if tz := team.Zone(zone); tz != nil {
			tc.HasBaseline = true
			tc.BaselineYPT = tz.YardsPerTarget()
		}
	}
	if tc.HasBaseline {
		tc.Diff = tc.YPT - tc.BaselineYPT
		tc.DiffColor = diffColor(tc.Diff)
	}

	cmp.BestTeammate = tc
	return cmp
}

// bestInZone returns the player with the highest yards per target in the zone
// among those with enough targets. If nobody qualifies any player with a
// target there is used. Ties go to whoever comes first.
func bestInZone(players []model.Player, zone model.ZoneKey) *model.Player {
	var best, fallback *model.Player
	var bestYPT, fallbackYPT float64

	for i := range players {
		z := players[i].Zone(zone)
		if z == nil || z.Targets == 0 {
			continue
		}
		ypt := z.YardsPerTarget()
		if z.Targets >= minZoneTargets && (best == nil || ypt > bestYPT) {
			best, bestYPT = &players[i], ypt
		}
		if fallback == nil || ypt > fallbackYPT {
			fallback, fallbackYPT = &players[i], ypt
		}
	}

	if best != nil {
		return best
	}
	return fallback
}
