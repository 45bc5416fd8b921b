package controller

import (
	"context"
	"fmt"

	"github.com/mww/wr_zones/model"
	"go.uber.org/zap"
)

// Dashboard resolves the selectors to the entity being viewed. A player wins
// over a team, a team other than "all" shows its aggregate and anything else
// hides the dashboard.
func (c *controller) Dashboard(ctx context.Context, sel model.Selection) (*model.Dashboard, error) {
	ds, err := c.dataset()
	if err != nil {
		return nil, err
	}

	var entity *model.Player
	switch {
	case sel.PlayerID != "":
		entity, err = c.getEntity(ctx, sel.PlayerID)
	case !sel.AllTeams():
		entity, err = c.TeamAggregate(ctx, sel.Team)
	default:
		return &model.Dashboard{Visible: false}, nil
	}
	if err != nil {
		return nil, err
	}

	d := &model.Dashboard{
		Visible:   true,
		Entity:    entity,
		IsTeam:    entity.IsTeamAggregate(),
		CatchRate: entity.TotalStats.FormattedCatchRate(),
		YPC:       entity.TotalStats.FormattedYardsPerCatch(),
		Rows:      heatmapRows(entity),
	}
	d.Routes, d.Notice = recommendRoutes(scoreZones(entity), c.routes)

	if sel.Zone != "" {
		key, err := model.ParseZoneKey(sel.Zone)
		if err != nil {
			return nil, fmt.Errorf("error parsing zone: %w", err)
		}
		d.Detail = compareZone(ds, entity, key)
	}

	c.logger.Debug("dashboard built", zap.String("entity", entity.ID), zap.String("zone", sel.Zone))
	return d, nil
}
