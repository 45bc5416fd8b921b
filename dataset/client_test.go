package dataset

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/itbasis/go-clock"
	"github.com/mww/wr_zones/testutils"
)

func newTestClient(t *testing.T, source string) Client {
	t.Helper()
	mockClock := clock.NewMock()
	mockClock.Set(testutils.LoadTime)

	c, err := New(source, mockClock, nil)
	if err != nil {
		t.Fatalf("error creating client: %v", err)
	}
	return c
}

func TestLoadDataset_fromURL(t *testing.T) {
	fake := testutils.NewFakeDataServer()
	defer fake.Close()

	c := newTestClient(t, fake.FileURL("players.json"))
	ds, err := c.LoadDataset(context.Background())
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}

	if diff := cmp.Diff(testutils.Players(), ds.Players); diff != "" {
		t.Errorf("players mismatch (-want +got):\n%s", diff)
	}
	if len(ds.LeagueAverages) != 0 {
		t.Errorf("a bare player list should not have league averages, got %d", len(ds.LeagueAverages))
	}
	if !ds.LoadedAt.Equal(testutils.LoadTime) {
		t.Errorf("unexpected load time: %v", ds.LoadedAt)
	}
	if ds.Source != fake.FileURL("players.json") {
		t.Errorf("unexpected source: %s", ds.Source)
	}
}

func TestLoadDataset_fromFile(t *testing.T) {
	b, err := testutils.ReadFile("wrapped.json")
	if err != nil {
		t.Fatalf("error reading fixture: %v", err)
	}
	path := filepath.Join(t.TempDir(), "wr_data.json")
	if err := os.WriteFile(path, b, 0o600); err != nil {
		t.Fatalf("error writing fixture: %v", err)
	}

	c := newTestClient(t, path)
	ds, err := c.LoadDataset(context.Background())
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}

	if diff := cmp.Diff(testutils.Players(), ds.Players); diff != "" {
		t.Errorf("players mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(testutils.LeagueAverages(), ds.LeagueAverages); diff != "" {
		t.Errorf("league averages mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadDataset_errors(t *testing.T) {
	fake := testutils.NewFakeDataServer()
	defer fake.Close()

	tests := map[string]struct {
		source string
		cause  error
	}{
		"server error":   {source: fake.URL() + "/broken"},
		"not found":      {source: fake.FileURL("missing.json")},
		"missing file":   {source: filepath.Join(t.TempDir(), "nope.json"), cause: os.ErrNotExist},
		"duplicate zone": {source: fake.FileURL("duplicate_zone.json"), cause: errDuplicateZone},
		"garbage":        {source: fake.FileURL("garbage.json"), cause: errBadFormat},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			c := newTestClient(t, tc.source)
			ds, err := c.LoadDataset(context.Background())
			if err == nil {
				t.Fatalf("expected an error, got dataset with %d players", len(ds.Players))
			}
			if !errors.Is(err, ErrDataUnavailable) {
				t.Errorf("error should wrap ErrDataUnavailable: %v", err)
			}
			if tc.cause != nil && !errors.Is(err, tc.cause) {
				t.Errorf("error should wrap %v: %v", tc.cause, err)
			}
		})
	}
}
