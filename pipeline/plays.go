package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/mww/wr_zones/model"
)

var pbpColumns = []string{
	"pass_attempt", "two_point_attempt", "air_yards", "pass_location",
	"receiver_player_id", "complete_pass", "yards_gained", "touchdown",
}

// target is a single pass thrown at a receiver.
type target struct {
	receiverID string
	zone       model.ZoneKey
	model.Stats
}

// depthForAirYards buckets a throw: under 10 yards is Short, under 20 Mid and
// anything longer Deep.
func depthForAirYards(airYards float64) model.Depth {
	switch {
	case airYards < 10:
		return model.DEPTH_SHORT
	case airYards < 20:
		return model.DEPTH_MID
	default:
		return model.DEPTH_DEEP
	}
}

// readTargets keeps the non two-point pass attempts that have a receiver, air
// yards and a pass location.
func readTargets(ctx context.Context, in Input) ([]target, error) {
	t, err := in.table("play by play", pbpColumns...)
	if err != nil {
		return nil, err
	}

	result := make([]target, 0, 1024)
	for {
		if t.row%1000 == 0 && ctx.Err() != nil {
			return nil, ctx.Err()
		}

		record, err := t.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		tgt, keep, err := parseTarget(t, record)
		if err != nil {
			return nil, err
		}
		if keep {
			result = append(result, tgt)
		}
	}
	return result, nil
}

func parseTarget(t *table, record []string) (target, bool, error) {
	if !isOne(t, record, "pass_attempt") || !isZero(t, record, "two_point_attempt") {
		return target{}, false, nil
	}

	receiver := t.str(record, "receiver_player_id")
	location := t.str(record, "pass_location")
	airYards, err := t.num(record, "air_yards")
	if errors.Is(err, errMissingValue) || receiver == "" || location == "" {
		return target{}, false, nil
	}
	if err != nil {
		return target{}, false, err
	}

	dir, err := model.ParseDirection(location)
	if err != nil {
		return target{}, false, fmt.Errorf("%s: %w", t.where(), err)
	}

	tgt := target{
		receiverID: receiver,
		zone:       model.ZoneKey{Depth: depthForAirYards(airYards), Direction: dir},
	}
	tgt.Targets = 1
	if tgt.Receptions, err = t.count(record, "complete_pass"); err != nil {
		return target{}, false, err
	}
	if tgt.Yards, err = t.count(record, "yards_gained"); err != nil {
		return target{}, false, err
	}
	if tgt.TDs, err = t.count(record, "touchdown"); err != nil {
		return target{}, false, err
	}
	return tgt, true, nil
}

// isOne and isZero treat missing or unparsable flags as neither.
func isOne(t *table, record []string, column string) bool {
	v, err := t.num(record, column)
	return err == nil && v == 1
}

func isZero(t *table, record []string, column string) bool {
	v, err := t.num(record, column)
	return err == nil && v == 0
}
