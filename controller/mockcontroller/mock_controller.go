package mockcontroller

import (
	"context"

	"github.com/mww/wr_zones/model"
	"github.com/stretchr/testify/mock"
)

type C struct {
	mock.Mock
}

func (c *C) Status() model.Status {
	args := c.Called()
	return args.Get(0).(model.Status)
}

func (c *C) Teams(ctx context.Context) ([]string, error) {
	args := c.Called(ctx)

	var res []string
	if args.Get(0) != nil {
		res = args.Get(0).([]string)
	}

	return res, args.Error(1)
}

func (c *C) Players(ctx context.Context, team string) ([]model.Player, error) {
	args := c.Called(ctx, team)

	var res []model.Player
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Player)
	}

	return res, args.Error(1)
}

func (c *C) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	args := c.Called(ctx, id)

	var p *model.Player
	if args.Get(0) != nil {
		p = args.Get(0).(*model.Player)
	}

	return p, args.Error(1)
}

func (c *C) TeamAggregate(ctx context.Context, team string) (*model.Player, error) {
	args := c.Called(ctx, team)

	var p *model.Player
	if args.Get(0) != nil {
		p = args.Get(0).(*model.Player)
	}

	return p, args.Error(1)
}

func (c *C) Dashboard(ctx context.Context, sel model.Selection) (*model.Dashboard, error) {
	args := c.Called(ctx, sel)

	var d *model.Dashboard
	if args.Get(0) != nil {
		d = args.Get(0).(*model.Dashboard)
	}

	return d, args.Error(1)
}

func (c *C) ZoneDetail(ctx context.Context, entityID string, zone model.ZoneKey) (*model.ZoneComparison, error) {
	args := c.Called(ctx, entityID, zone)

	var z *model.ZoneComparison
	if args.Get(0) != nil {
		z = args.Get(0).(*model.ZoneComparison)
	}

	return z, args.Error(1)
}
