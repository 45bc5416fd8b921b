package controller

import (
	"testing"

	"github.com/mww/wr_zones/model"
	"github.com/stretchr/testify/assert"
)

func TestComputeZoneMetrics_midMiddle(t *testing.T) {
	m := computeZoneMetrics(model.Stats{Targets: 10, Receptions: 7, Yards: 80, TDs: 1}, 14)

	assert.Equal(t, 0.7, m.catchRate)
	assert.Equal(t, 8.0, m.ypt)
	assert.Equal(t, 8.0, m.cappedYPT)
	assert.Equal(t, 0.1, m.tdsPerTarget)
	assert.Equal(t, 0.5, m.recShare)

	// 0.7*0.3 + 0.8*0.4 + 0.1*0.2 + 0.5*0.1 + 80/1500
	assert.InDelta(t, 0.21+0.32+0.02+0.05+80.0/1500, zoneScore(m, 80), 1e-12)
}

func TestComputeZoneMetrics_capsYPT(t *testing.T) {
	m := computeZoneMetrics(model.Stats{Targets: 2, Receptions: 2, Yards: 60}, 2)
	assert.Equal(t, 30.0, m.ypt)
	assert.Equal(t, yptCap, m.cappedYPT)
}

func TestComputeZoneMetrics_zeroDenominators(t *testing.T) {
	m := computeZoneMetrics(model.Stats{}, 0)
	assert.Equal(t, zoneMetrics{}, m)
	assert.Equal(t, 0.0, zoneScore(m, 0))
}

func TestZoneScore_deterministic(t *testing.T) {
	s := model.Stats{Targets: 11, Receptions: 8, Yards: 140, TDs: 1}
	first := buildCell(midMiddle, &model.ZoneStats{Stats: s}, 20)
	for i := 0; i < 50; i++ {
		again := buildCell(midMiddle, &model.ZoneStats{Stats: s}, 20)
		if again != first {
			t.Fatalf("cell changed between runs: %+v vs %+v", first, again)
		}
	}
}

func TestHeatColor(t *testing.T) {
	tests := map[string]struct {
		stats       model.Stats
		totalRec    int
		wantScore   float64
		wantBand    model.HeatBand
		wantOpacity string
	}{
		"red":                     {stats: model.Stats{Targets: 5, Receptions: 4, Yards: 40}, totalRec: 14, wantScore: 0.6152381, wantBand: model.BAND_RED, wantOpacity: "0.97"},
		"yellow":                  {stats: model.Stats{Targets: 10, Receptions: 7, Yards: 80, TDs: 1}, totalRec: 14, wantScore: 0.6533333, wantBand: model.BAND_YELLOW, wantOpacity: "0.41"},
		"green, low catch rate":   {stats: model.Stats{Targets: 6, Receptions: 3, Yards: 120, TDs: 2}, totalRec: 14, wantScore: 0.9180952, wantBand: model.BAND_GREEN, wantOpacity: "0.60"},
		"green, high catch rate":  {stats: model.Stats{Targets: 10, Receptions: 8, Yards: 150, TDs: 2}, totalRec: 20, wantScore: 1.02, wantBand: model.BAND_GREEN, wantOpacity: "0.79"},
		"too few targets":         {stats: model.Stats{Targets: 2, Receptions: 2, Yards: 40}, totalRec: 2, wantScore: 1.0266667, wantBand: model.BAND_NEUTRAL, wantOpacity: "0.05"},
		"high score, few targets": {stats: model.Stats{Targets: 2, Receptions: 1, Yards: 45, TDs: 1}, totalRec: 8, wantScore: 0.8925, wantBand: model.BAND_NEUTRAL, wantOpacity: "0.05"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			cell := buildCell(midMiddle, &model.ZoneStats{Stats: tc.stats}, tc.totalRec)
			assert.InDelta(t, tc.wantScore, cell.Score, 1e-7)
			assert.Equal(t, tc.wantBand, cell.Band)
			assert.Equal(t, tc.wantOpacity, cell.Opacity)
			assert.True(t, cell.HasData)
		})
	}
}

func TestHeatColor_colorString(t *testing.T) {
	band, opacity, color := heatColor(0.95, 0.8, 10)
	assert.Equal(t, model.BAND_GREEN, band)
	assert.Equal(t, "0.68", opacity)
	assert.Equal(t, "rgba(34, 197, 94, 0.68)", color)

	_, _, color = heatColor(2.0, 0.1, 1)
	assert.Equal(t, neutralColor, color)
}

func TestBuildCell_noData(t *testing.T) {
	cell := buildCell(shortRight, nil, 10)
	assert.False(t, cell.HasData)
	assert.Equal(t, model.BAND_NEUTRAL, cell.Band)
	assert.Equal(t, "Short-Right", cell.Zone)
	assert.Equal(t, "Short Right", cell.Label)
	assert.Empty(t, cell.Color)
}

func TestHeatmapRows(t *testing.T) {
	p := &model.Player{
		TotalStats: model.Stats{Targets: 13, Receptions: 9, Yards: 160, TDs: 1},
		Zones: []model.ZoneStats{
			zs(shortLeft, 5, 4, 40, 0),
			zs(deepRight, 8, 5, 120, 1),
		},
	}

	rows := heatmapRows(p)
	if len(rows) != 3 {
		t.Fatalf("wanted 3 rows, got %d", len(rows))
	}

	wantOrder := [][]string{
		{"Deep-Left", "Deep-Middle", "Deep-Right"},
		{"Mid-Left", "Mid-Middle", "Mid-Right"},
		{"Short-Left", "Short-Middle", "Short-Right"},
	}
	for i, row := range rows {
		for j, cell := range row {
			assert.Equal(t, wantOrder[i][j], cell.Zone)
		}
	}

	assert.True(t, rows[0][2].HasData)
	assert.True(t, rows[2][0].HasData)
	assert.False(t, rows[1][1].HasData)
}
