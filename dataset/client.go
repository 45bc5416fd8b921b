package dataset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/mww/wr_zones/model"
	"go.uber.org/zap"
)

const DefaultSource = "wr_data.json"

// ErrDataUnavailable wraps every failure to fetch or parse the dataset.
var ErrDataUnavailable = errors.New("data unavailable")

type Client interface {
	// LoadDataset fetches and parses the dataset. It is called once at startup.
	LoadDataset(ctx context.Context) (*model.Dataset, error)
}

type client struct {
	source     string
	clock      clock.Clock
	logger     *zap.Logger
	httpClient *http.Client
}

// New creates a client for source, which is either a file path or an http(s) URL.
func New(source string, clock clock.Clock, logger *zap.Logger) (Client, error) {
	if source == "" {
		source = DefaultSource
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &client{
		source: source,
		clock:  clock,
		logger: logger,
		httpClient: &http.Client{
			Timeout: 1 * time.Minute,
		},
	}
	return c, nil
}

func (c *client) LoadDataset(ctx context.Context) (*model.Dataset, error) {
	start := c.clock.Now()

	var b []byte
	var err error
	if isURL(c.source) {
		b, err = c.fetch(ctx)
	} else {
		b, err = os.ReadFile(c.source)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: error reading %s: %w", ErrDataUnavailable, c.source, err)
	}

	ds, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%w: error parsing %s: %w", ErrDataUnavailable, c.source, err)
	}
	ds.Source = c.source
	ds.LoadedAt = c.clock.Now()

	c.logger.Info("dataset loaded",
		zap.String("source", c.source),
		zap.Int("players", len(ds.Players)),
		zap.Int("league_averages", len(ds.LeagueAverages)),
		zap.Duration("took", ds.LoadedAt.Sub(start)))
	return ds, nil
}

func (c *client) fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.source, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating http request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
