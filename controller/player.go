package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/mww/wr_zones/model"
)

func (c *controller) Teams(ctx context.Context) ([]string, error) {
	ds, err := c.dataset()
	if err != nil {
		return nil, err
	}
	return ds.Teams(), nil
}

func (c *controller) Players(ctx context.Context, team string) ([]model.Player, error) {
	ds, err := c.dataset()
	if err != nil {
		return nil, err
	}

	// callers get copies, the loaded dataset is never handed out
	if team == "" || team == model.TeamAll {
		players := make([]model.Player, 0, len(ds.Players))
		for i := range ds.Players {
			players = append(players, ds.Players[i].Clone())
		}
		return players, nil
	}

	players := filterTeam(ds.Players, team)
	if len(players) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrTeamNotFound, team)
	}
	return players, nil
}

func (c *controller) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	ds, err := c.dataset()
	if err != nil {
		return nil, err
	}

	for i := range ds.Players {
		if ds.Players[i].ID == id {
			p := ds.Players[i].Clone()
			return &p, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrPlayerNotFound, id)
}

func (c *controller) TeamAggregate(ctx context.Context, team string) (*model.Player, error) {
	if team == "" || team == model.TeamAll {
		return nil, fmt.Errorf("%w: a single team is required", ErrTeamNotFound)
	}
	players, err := c.Players(ctx, team)
	if err != nil {
		return nil, err
	}
	return aggregateTeam(players, team), nil
}

// getEntity resolves either a real player id or a team aggregate id ("team-SEA").
func (c *controller) getEntity(ctx context.Context, id string) (*model.Player, error) {
	if team, found := strings.CutPrefix(id, model.TeamAggregatePrefix); found {
		return c.TeamAggregate(ctx, team)
	}
	return c.GetPlayer(ctx, id)
}

func filterTeam(players []model.Player, team string) []model.Player {
	result := make([]model.Player, 0, 8)
	for i := range players {
		if players[i].Team == team {
			result = append(result, players[i].Clone())
		}
	}
	return result
}
