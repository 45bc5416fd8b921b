package controller

import (
	"context"
	"errors"
	"testing"

	"github.com/mww/wr_zones/model"
	"github.com/mww/wr_zones/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffColor(t *testing.T) {
	tests := map[string]struct {
		diff float64
		want model.DiffColor
	}{
		"well above":     {diff: 3.1, want: model.DIFF_GREEN},
		"exactly +2":     {diff: 2.0, want: model.DIFF_GREEN},
		"slightly above": {diff: 0.4, want: model.DIFF_YELLOW},
		"even":           {diff: 0, want: model.DIFF_NEUTRAL},
		"slightly below": {diff: -1.9, want: model.DIFF_NEUTRAL},
		"exactly -2":     {diff: -2.0, want: model.DIFF_RED},
		"well below":     {diff: -7, want: model.DIFF_RED},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := diffColor(tc.diff); got != tc.want {
				t.Errorf("diff color incorrect, wanted: '%s', got: '%s'", tc.want, got)
			}
		})
	}
}

func TestZoneDetail(t *testing.T) {
	type teammate struct {
		id           string
		ypt          float64
		baselineName string
		baselineYPT  float64
		diffColor    model.DiffColor
	}

	tests := map[string]struct {
		entityID      string
		zone          model.ZoneKey
		wantHasData   bool
		wantYPT       float64
		wantHasLeague bool
		wantLeague    float64
		wantColor     model.DiffColor
		wantTeammate  *teammate
	}{
		"team against league": {
			entityID: "team-SEA", zone: midMiddle,
			wantHasData: true, wantYPT: 140.0 / 11, wantHasLeague: true, wantLeague: 9.5, wantColor: model.DIFF_GREEN,
			wantTeammate: &teammate{id: testutils.IDMetcalf, ypt: 70.0 / 6, baselineName: "League avg", baselineYPT: 9.5, diffColor: model.DIFF_GREEN},
		},
		"player against team average": {
			entityID: testutils.IDMetcalf, zone: midMiddle,
			wantHasData: true, wantYPT: 70.0 / 6, wantHasLeague: true, wantLeague: 9.5, wantColor: model.DIFF_GREEN,
			wantTeammate: &teammate{id: testutils.IDSmithNjigba, ypt: 10, baselineName: "Team avg", baselineYPT: 140.0 / 11, diffColor: model.DIFF_RED},
		},
		"falls back to any targets": {
			entityID: testutils.IDMetcalf, zone: deepLeft,
			wantHasData: true, wantYPT: 22.5, wantHasLeague: true, wantLeague: 12, wantColor: model.DIFF_GREEN,
			wantTeammate: &teammate{id: testutils.IDLockett, ypt: 0, baselineName: "Team avg", baselineYPT: 15, diffColor: model.DIFF_RED},
		},
		"small positive diff": {
			entityID: testutils.IDSmithNjigba, zone: shortLeft,
			wantHasData: true, wantYPT: 7.5, wantHasLeague: true, wantLeague: 6, wantColor: model.DIFF_YELLOW,
			wantTeammate: &teammate{id: testutils.IDMetcalf, ypt: 6.25, baselineName: "Team avg", baselineYPT: 85.0 / 12, diffColor: model.DIFF_NEUTRAL},
		},
		"no data and no league average": {
			entityID: testutils.IDLockett, zone: shortRight,
			wantColor: model.DIFF_NEUTRAL,
		},
		"no teammates": {
			entityID: testutils.IDChase, zone: midMiddle,
			wantHasData: true, wantYPT: 8, wantHasLeague: true, wantLeague: 9.5, wantColor: model.DIFF_NEUTRAL,
		},
	}

	c := newTestController()
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			d, err := c.ZoneDetail(context.Background(), tc.entityID, tc.zone)
			require.NoError(t, err)

			assert.Equal(t, tc.entityID, d.EntityID)
			assert.Equal(t, tc.zone.String(), d.Zone)
			assert.Equal(t, tc.wantHasData, d.HasData)
			assert.InDelta(t, tc.wantYPT, d.YPT, 1e-9)
			assert.Equal(t, tc.wantHasLeague, d.HasLeague)
			assert.InDelta(t, tc.wantLeague, d.LeagueYPT, 1e-9)
			if tc.wantHasLeague {
				assert.InDelta(t, tc.wantYPT-tc.wantLeague, d.Diff, 1e-9)
			} else {
				assert.Zero(t, d.Diff)
			}
			assert.Equal(t, tc.wantColor, d.DiffColor)

			if tc.wantTeammate == nil {
				assert.Nil(t, d.BestTeammate)
				return
			}
			require.NotNil(t, d.BestTeammate)
			tm := d.BestTeammate
			assert.Equal(t, tc.wantTeammate.id, tm.PlayerID)
			assert.InDelta(t, tc.wantTeammate.ypt, tm.YPT, 1e-9)
			assert.Equal(t, tc.wantTeammate.baselineName, tm.BaselineName)
			assert.True(t, tm.HasBaseline)
			assert.InDelta(t, tc.wantTeammate.baselineYPT, tm.BaselineYPT, 1e-9)
			assert.InDelta(t, tc.wantTeammate.ypt-tc.wantTeammate.baselineYPT, tm.Diff, 1e-9)
			assert.Equal(t, tc.wantTeammate.diffColor, tm.DiffColor)
		})
	}
}

func TestZoneDetail_excludesViewedPlayer(t *testing.T) {
	c := newTestController()
	d, err := c.ZoneDetail(context.Background(), testutils.IDSmithNjigba, midMiddle)
	require.NoError(t, err)
	require.NotNil(t, d.BestTeammate)
	assert.NotEqual(t, testutils.IDSmithNjigba, d.BestTeammate.PlayerID)
	assert.Equal(t, testutils.IDMetcalf, d.BestTeammate.PlayerID)
}

func TestZoneDetail_noLeagueAverages(t *testing.T) {
	ds := testutils.Dataset()
	ds.LeagueAverages = nil
	c := NewFromDataset(ds, nil, nil)

	d, err := c.ZoneDetail(context.Background(), "team-SEA", midMiddle)
	require.NoError(t, err)
	assert.False(t, d.HasLeague)
	assert.Zero(t, d.Diff)
	assert.Equal(t, model.DIFF_NEUTRAL, d.DiffColor)

	require.NotNil(t, d.BestTeammate)
	assert.False(t, d.BestTeammate.HasBaseline)
	assert.Equal(t, model.DIFF_NEUTRAL, d.BestTeammate.DiffColor)
}

func TestZoneDetail_notFound(t *testing.T) {
	c := newTestController()
	ctx := context.Background()

	if _, err := c.ZoneDetail(ctx, "00-0000000", midMiddle); !errors.Is(err, ErrPlayerNotFound) {
		t.Errorf("wanted ErrPlayerNotFound, got: %v", err)
	}
	if _, err := c.ZoneDetail(ctx, "team-NYJ", midMiddle); !errors.Is(err, ErrTeamNotFound) {
		t.Errorf("wanted ErrTeamNotFound, got: %v", err)
	}
}
