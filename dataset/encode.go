package dataset

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/mww/wr_zones/model"
)

// Round rounds half to even at the given number of decimal places, which is
// how the published data files have always been rounded.
func Round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.RoundToEven(v*p) / p
}

func fromStats(s model.Stats) dataStats {
	return dataStats{
		Targets:    s.Targets,
		Receptions: s.Receptions,
		Yards:      s.Yards,
		TDs:        s.TDs,
	}
}

func fromPlayer(p *model.Player) dataPlayer {
	dp := dataPlayer{
		ID:         p.ID,
		Name:       p.Name,
		Team:       p.Team,
		TotalStats: fromStats(p.TotalStats),
		Zones:      make([]dataZone, 0, len(p.Zones)),
	}
	for _, z := range p.Zones {
		dp.Zones = append(dp.Zones, dataZone{
			Depth:     string(z.Depth),
			Direction: string(z.Direction),
			dataStats: fromStats(z.Stats),
			CatchRate: Round(z.CatchRate(), 3),
			YPT:       Round(z.YardsPerTarget(), 1),
		})
	}
	return dp
}

// Encode writes players in the layout Parse reads. With wrapped set the output
// is an object that also carries the league averages, otherwise it is a bare
// list of players. Zone rates are written for readers of the file, Parse
// ignores them.
func Encode(w io.Writer, players []model.Player, league model.LeagueAverages, wrapped bool) error {
	list := make([]dataPlayer, 0, len(players))
	for i := range players {
		list = append(list, fromPlayer(&players[i]))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	var err error
	if wrapped {
		out := wrappedData{
			Players:        list,
			LeagueAverages: make(map[string]dataLeagueAverage, len(league)),
		}
		for k, v := range league {
			out.LeagueAverages[k.String()] = dataLeagueAverage{YPT: v.YPT, CatchRate: v.CatchRate}
		}
		err = enc.Encode(out)
	} else {
		err = enc.Encode(list)
	}

	if err != nil {
		return fmt.Errorf("error encoding dataset: %w", err)
	}
	return nil
}
