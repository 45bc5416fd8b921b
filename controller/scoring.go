package controller

import (
	"fmt"
	"math"

	"github.com/mww/wr_zones/model"
)

const (
	// Zones with fewer targets than this are drawn neutral and never recommended.
	minZoneTargets = 3
	yptCap         = 15.0

	greenThreshold  = 0.90
	yellowThreshold = 0.65
	// Green zones only reach full intensity with a catch rate of at least 65%.
	eliteCatchRate = 0.65

	neutralColor = "rgba(255, 255, 255, 0.05)"
	greenRGB     = "34, 197, 94"
	yellowRGB    = "234, 179, 8"
	redRGB       = "239, 68, 68"
)

type zoneMetrics struct {
	catchRate    float64
	ypt          float64
	cappedYPT    float64
	tdsPerTarget float64
	recShare     float64
}

func computeZoneMetrics(z model.Stats, totalReceptions int) zoneMetrics {
	m := zoneMetrics{
		catchRate:    z.CatchRate(),
		ypt:          z.YardsPerTarget(),
		tdsPerTarget: z.TDsPerTarget(),
	}
	m.cappedYPT = math.Min(m.ypt, yptCap)
	if totalReceptions > 0 {
		m.recShare = float64(z.Receptions) / float64(totalReceptions)
	}
	return m
}

// zoneScore is the weighted composite used for the heatmap and route ranking.
// The float64 conversions keep each product rounded on its own so no platform
// fuses them into a multiply-add and the score stays bit-for-bit stable.
func zoneScore(m zoneMetrics, yards int) float64 {
	return float64(m.catchRate*0.3) +
		float64((m.cappedYPT/10)*0.4) +
		float64(m.tdsPerTarget*0.2) +
		float64(m.recShare*0.1) +
		float64(yards)/1500
}

// heatColor maps a score to a band and an rgba color. The opacity scales
// linearly inside each band.
func heatColor(score, catchRate float64, targets int) (model.HeatBand, string, string) {
	if targets < minZoneTargets {
		return model.BAND_NEUTRAL, "0.05", neutralColor
	}

	var band model.HeatBand
	var rgb string
	var opacity float64
	switch {
	case score >= greenThreshold:
		band, rgb = model.BAND_GREEN, greenRGB
		if catchRate < eliteCatchRate {
			opacity = 0.6
		} else {
			// 0.6 -> 1.0 for scores 0.90 -> 1.15+
			ratio := math.Min(score-greenThreshold, 0.25) / 0.25
			opacity = 0.6 + float64(ratio*0.4)
		}
	case score >= yellowThreshold:
		band, rgb = model.BAND_YELLOW, yellowRGB
		// 0.4 -> 1.0 for scores 0.65 -> 0.90
		ratio := (score - yellowThreshold) / 0.25
		opacity = 0.4 + float64(ratio*0.6)
	default:
		band, rgb = model.BAND_RED, redRGB
		// 0.4 -> 1.0 for scores 0.0 -> 0.65
		ratio := math.Max(score, 0) / 0.65
		opacity = 0.4 + float64(ratio*0.6)
	}

	o := model.ToFixed(opacity, 2)
	return band, o, fmt.Sprintf("rgba(%s, %s)", rgb, o)
}

func buildCell(key model.ZoneKey, z *model.ZoneStats, totalReceptions int) model.ZoneCell {
	cell := model.ZoneCell{
		Key:   key,
		Zone:  key.String(),
		Label: key.Label(),
		Band:  model.BAND_NEUTRAL,
	}
	if z == nil {
		return cell
	}

	m := computeZoneMetrics(z.Stats, totalReceptions)
	cell.HasData = true
	cell.Stats = z.Stats
	cell.CatchRate = m.catchRate
	cell.YPT = m.ypt
	cell.CappedYPT = m.cappedYPT
	cell.TDsPerTarget = m.tdsPerTarget
	cell.RecShare = m.recShare
	cell.Score = zoneScore(m, z.Yards)
	cell.Band, cell.Opacity, cell.Color = heatColor(cell.Score, m.catchRate, z.Targets)
	return cell
}

// scoreZones returns a cell for every zone the player has data for, in the
// player's zone order.
func scoreZones(p *model.Player) []model.ZoneCell {
	cells := make([]model.ZoneCell, 0, len(p.Zones))
	for i := range p.Zones {
		z := &p.Zones[i]
		cells = append(cells, buildCell(z.Key(), z, p.TotalStats.Receptions))
	}
	return cells
}

// heatmapRows lays the nine zones out for display: deep zones on top, left to right.
func heatmapRows(p *model.Player) [][]model.ZoneCell {
	rows := make([][]model.ZoneCell, 0, len(model.Depths))
	for i := len(model.Depths) - 1; i >= 0; i-- {
		row := make([]model.ZoneCell, 0, len(model.Directions))
		for _, dir := range model.Directions {
			key := model.ZoneKey{Depth: model.Depths[i], Direction: dir}
			row = append(row, buildCell(key, p.Zone(key), p.TotalStats.Receptions))
		}
		rows = append(rows, row)
	}
	return rows
}
