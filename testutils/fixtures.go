package testutils

import (
	"time"

	"github.com/mww/wr_zones/model"
)

const (
	IDChase       = "00-0036900"
	IDMetcalf     = "00-0035640"
	IDSmithNjigba = "00-0037247"
	IDLockett     = "00-0033536"
)

// LoadTime is what the mock clock reads when fixture datasets are loaded.
var LoadTime = time.Date(2024, 9, 10, 12, 30, 0, 0, time.UTC)

func zone(depth model.Depth, dir model.Direction, targets, receptions, yards, tds int) model.ZoneStats {
	return model.ZoneStats{
		Depth:     depth,
		Direction: dir,
		Stats:     model.Stats{Targets: targets, Receptions: receptions, Yards: yards, TDs: tds},
	}
}

// Players returns a fresh copy of the fixture players, in the same order as
// wrdata/players.json. Three of them play for SEA.
func Players() []model.Player {
	return []model.Player{
		{
			ID:         IDChase,
			Name:       "Ja'Marr Chase",
			Team:       "CIN",
			TotalStats: model.Stats{Targets: 21, Receptions: 14, Yards: 240, TDs: 3},
			Zones: []model.ZoneStats{
				zone(model.DEPTH_SHORT, model.DIR_LEFT, 5, 4, 40, 0),
				zone(model.DEPTH_MID, model.DIR_MIDDLE, 10, 7, 80, 1),
				zone(model.DEPTH_DEEP, model.DIR_RIGHT, 6, 3, 120, 2),
			},
		},
		{
			ID:         IDMetcalf,
			Name:       "DK Metcalf",
			Team:       "SEA",
			TotalStats: model.Stats{Targets: 12, Receptions: 8, Yards: 140, TDs: 2},
			Zones: []model.ZoneStats{
				zone(model.DEPTH_SHORT, model.DIR_LEFT, 4, 3, 25, 0),
				zone(model.DEPTH_MID, model.DIR_MIDDLE, 6, 4, 70, 1),
				zone(model.DEPTH_DEEP, model.DIR_LEFT, 2, 1, 45, 1),
			},
		},
		{
			ID:         IDSmithNjigba,
			Name:       "Jaxon Smith-Njigba",
			Team:       "SEA",
			TotalStats: model.Stats{Targets: 14, Receptions: 10, Yards: 130, TDs: 1},
			Zones: []model.ZoneStats{
				zone(model.DEPTH_SHORT, model.DIR_LEFT, 8, 7, 60, 1),
				zone(model.DEPTH_MID, model.DIR_MIDDLE, 3, 2, 30, 0),
				zone(model.DEPTH_DEEP, model.DIR_RIGHT, 3, 1, 40, 0),
			},
		},
		{
			ID:         IDLockett,
			Name:       "Tyler Lockett",
			Team:       "SEA",
			TotalStats: model.Stats{Targets: 3, Receptions: 2, Yards: 40, TDs: 0},
			Zones: []model.ZoneStats{
				zone(model.DEPTH_MID, model.DIR_MIDDLE, 2, 2, 40, 0),
				zone(model.DEPTH_DEEP, model.DIR_LEFT, 1, 0, 0, 0),
			},
		},
	}
}

// LeagueAverages matches wrdata/wrapped.json. Short-Right has no entry.
func LeagueAverages() model.LeagueAverages {
	return model.LeagueAverages{
		{Depth: model.DEPTH_SHORT, Direction: model.DIR_LEFT}:   {YPT: 6.0, CatchRate: 0.78},
		{Depth: model.DEPTH_SHORT, Direction: model.DIR_MIDDLE}: {YPT: 6.5, CatchRate: 0.8},
		{Depth: model.DEPTH_MID, Direction: model.DIR_LEFT}:     {YPT: 8.5},
		{Depth: model.DEPTH_MID, Direction: model.DIR_MIDDLE}:   {YPT: 9.5},
		{Depth: model.DEPTH_MID, Direction: model.DIR_RIGHT}:    {YPT: 8.4},
		{Depth: model.DEPTH_DEEP, Direction: model.DIR_LEFT}:    {YPT: 12.0},
		{Depth: model.DEPTH_DEEP, Direction: model.DIR_MIDDLE}:  {YPT: 13.1},
		{Depth: model.DEPTH_DEEP, Direction: model.DIR_RIGHT}:   {YPT: 11.5},
	}
}

// Dataset is the wrapped fixture dataset as the loader would produce it.
func Dataset() *model.Dataset {
	return &model.Dataset{
		Players:        Players(),
		LeagueAverages: LeagueAverages(),
		Source:         "fixture",
		LoadedAt:       LoadTime,
	}
}
