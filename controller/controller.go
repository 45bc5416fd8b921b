package controller

import (
	"context"
	"errors"
	"fmt"

	"github.com/mww/wr_zones/dataset"
	"github.com/mww/wr_zones/model"
	"go.uber.org/zap"
)

var (
	ErrPlayerNotFound = errors.New("player not found")
	ErrTeamNotFound   = errors.New("team not found")
)

// C encapsulates business logic without worrying about any web layers
type C interface {
	// Status reports whether the dataset loaded and where it came from.
	Status() model.Status

	// Teams returns the sorted team codes found in the dataset.
	Teams(ctx context.Context) ([]string, error)
	// Players returns the players of a team in dataset order, or every
	// player when team is "all" or empty.
	Players(ctx context.Context, team string) ([]model.Player, error)
	GetPlayer(ctx context.Context, id string) (*model.Player, error)
	// TeamAggregate sums every player of a team into a single player shaped record.
	TeamAggregate(ctx context.Context, team string) (*model.Player, error)

	// Dashboard maps the state of the selectors to everything that is shown
	// on the page.
	Dashboard(ctx context.Context, sel model.Selection) (*model.Dashboard, error)
	// ZoneDetail compares a player or team aggregate (by id) in a single zone
	// against the league and the best teammate.
	ZoneDetail(ctx context.Context, entityID string, zone model.ZoneKey) (*model.ZoneComparison, error)
}

type controller struct {
	ds      *model.Dataset
	loadErr error
	routes  RouteTable
	logger  *zap.Logger
}

// New loads the dataset once. A failed load does not fail New, the controller
// is still returned and every data call reports dataset.ErrDataUnavailable.
func New(ctx context.Context, source dataset.Client, routes RouteTable, logger *zap.Logger) (C, error) {
	if source == nil {
		return nil, errors.New("a dataset client is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if routes == nil {
		routes = DefaultRouteTable()
	}

	c := &controller{
		routes: routes,
		logger: logger,
	}

	ds, err := source.LoadDataset(ctx)
	if err != nil {
		if !errors.Is(err, dataset.ErrDataUnavailable) {
			err = fmt.Errorf("%w: %w", dataset.ErrDataUnavailable, err)
		}
		logger.Error("error loading data", zap.Error(err))
		c.loadErr = err
		return c, nil
	}

	c.ds = ds
	return c, nil
}

// NewFromDataset builds a controller around an already loaded dataset.
func NewFromDataset(ds *model.Dataset, routes RouteTable, logger *zap.Logger) C {
	if logger == nil {
		logger = zap.NewNop()
	}
	if routes == nil {
		routes = DefaultRouteTable()
	}
	return &controller{ds: ds, routes: routes, logger: logger}
}

func (c *controller) Status() model.Status {
	if c.loadErr != nil {
		return model.Status{Error: c.loadErr.Error()}
	}
	return model.Status{
		Available: true,
		Source:    c.ds.Source,
		LoadedAt:  c.ds.LoadedAt,
		Players:   len(c.ds.Players),
		Teams:     len(c.ds.Teams()),
	}
}

func (c *controller) dataset() (*model.Dataset, error) {
	if c.loadErr != nil {
		return nil, c.loadErr
	}
	return c.ds, nil
}
