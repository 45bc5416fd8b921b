package mockdataset

import (
	"context"

	"github.com/mww/wr_zones/model"
	"github.com/stretchr/testify/mock"
)

type Client struct {
	mock.Mock
}

func (c *Client) LoadDataset(ctx context.Context) (*model.Dataset, error) {
	args := c.Called(ctx)

	var ds *model.Dataset
	if args.Get(0) != nil {
		ds = args.Get(0).(*model.Dataset)
	}

	return ds, args.Error(1)
}
