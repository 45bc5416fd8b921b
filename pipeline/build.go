package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/mww/wr_zones/dataset"
	"github.com/mww/wr_zones/model"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultMinTargets drops receivers with too few targets to say anything
// about their zones.
const DefaultMinTargets = 20

type Options struct {
	MinTargets int
	// Wrapped writes league averages along with the players.
	Wrapped bool
}

type Result struct {
	Players        []model.Player
	LeagueAverages model.LeagueAverages
	// Targets counts the targets of the kept players.
	Targets int
}

// Input is one of the two source tables, either a CSV file or a parquet file
// as nflverse publishes them.
type Input struct {
	csv  io.Reader
	pq   io.ReaderAt
	size int64
}

func CSVInput(r io.Reader) Input {
	return Input{csv: r}
}

// ParquetInput reads a parquet file of the given size in bytes.
func ParquetInput(r io.ReaderAt, size int64) Input {
	return Input{pq: r, size: size}
}

func (in Input) table(name string, required ...string) (*table, error) {
	if in.pq != nil {
		return newParquetTable(name, in.pq, in.size, required...)
	}
	if in.csv == nil {
		return nil, fmt.Errorf("no %s input", name)
	}
	return newCSVTable(name, in.csv, required...)
}

type playerTotals struct {
	entry rosterEntry
	total model.Stats
	zones map[model.ZoneKey]*model.Stats
}

// Build turns play by play and roster tables into per zone receiving stats
// for every wide receiver with at least opts.MinTargets targets. The two
// inputs are read concurrently.
func Build(ctx context.Context, pbp, rosters Input, opts Options, logger *zap.Logger) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.MinTargets <= 0 {
		opts.MinTargets = DefaultMinTargets
	}

	var targets []target
	var wrs map[string]rosterEntry

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		targets, err = readTargets(gctx, pbp)
		return err
	})
	g.Go(func() error {
		var err error
		wrs, err = readWideReceivers(gctx, rosters)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	logger.Debug("inputs read", zap.Int("targets", len(targets)), zap.Int("wide_receivers", len(wrs)))

	players := make(map[string]*playerTotals)
	wrTargets := 0
	for _, t := range targets {
		wr, found := wrs[t.receiverID]
		if !found {
			continue
		}
		wrTargets++

		p, found := players[wr.id]
		if !found {
			p = &playerTotals{entry: wr, zones: make(map[model.ZoneKey]*model.Stats)}
			players[wr.id] = p
		}
		p.total.Add(t.Stats)

		z, found := p.zones[t.zone]
		if !found {
			z = &model.Stats{}
			p.zones[t.zone] = z
		}
		z.Add(t.Stats)
	}

	result := &Result{
		Players:        make([]model.Player, 0, len(players)),
		LeagueAverages: make(model.LeagueAverages),
	}
	league := make(map[model.ZoneKey]*model.Stats)
	for _, p := range players {
		if p.total.Targets < opts.MinTargets {
			continue
		}
		result.Targets += p.total.Targets

		player := model.Player{
			ID:         p.entry.id,
			Name:       p.entry.name,
			Team:       p.entry.team,
			TotalStats: p.total,
			Zones:      make([]model.ZoneStats, 0, len(p.zones)),
		}
		for _, key := range model.AllZones() {
			z, found := p.zones[key]
			if !found {
				continue
			}
			player.Zones = append(player.Zones, model.ZoneStats{Depth: key.Depth, Direction: key.Direction, Stats: *z})

			l, found := league[key]
			if !found {
				l = &model.Stats{}
				league[key] = l
			}
			l.Add(*z)
		}
		result.Players = append(result.Players, player)
	}

	for key, s := range league {
		result.LeagueAverages[key] = model.LeagueAverage{
			YPT:       dataset.Round(s.YardsPerTarget(), 2),
			CatchRate: dataset.Round(s.CatchRate(), 3),
		}
	}

	// most yards first, ties by id so the output is stable
	slices.SortFunc(result.Players, func(a, b model.Player) int {
		if a.TotalStats.Yards != b.TotalStats.Yards {
			return b.TotalStats.Yards - a.TotalStats.Yards
		}
		return strings.Compare(a.ID, b.ID)
	})

	logger.Info("built dataset",
		zap.Int("wr_targets", wrTargets),
		zap.Int("players", len(result.Players)),
		zap.Int("min_targets", opts.MinTargets))
	return result, nil
}

// BuildFiles runs Build on two files and writes the dataset JSON to out.
// Files ending in .parquet are read as parquet, anything else as CSV.
func BuildFiles(ctx context.Context, pbpPath, rostersPath, outPath string, opts Options, logger *zap.Logger) (*Result, error) {
	pbpFile, pbp, err := openInput(pbpPath)
	if err != nil {
		return nil, fmt.Errorf("error opening play by play file: %w", err)
	}
	defer pbpFile.Close()

	rostersFile, rosters, err := openInput(rostersPath)
	if err != nil {
		return nil, fmt.Errorf("error opening rosters file: %w", err)
	}
	defer rostersFile.Close()

	result, err := Build(ctx, pbp, rosters, opts, logger)
	if err != nil {
		return nil, err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return nil, fmt.Errorf("error creating output file: %w", err)
	}
	if err := dataset.Encode(out, result.Players, result.LeagueAverages, opts.Wrapped); err != nil {
		out.Close()
		return nil, err
	}
	if err := out.Close(); err != nil {
		return nil, fmt.Errorf("error writing output file: %w", err)
	}
	return result, nil
}

func openInput(path string) (*os.File, Input, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Input{}, err
	}
	if !strings.EqualFold(filepath.Ext(path), ".parquet") {
		return f, CSVInput(f), nil
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, Input{}, err
	}
	return f, ParquetInput(f, info.Size()), nil
}
