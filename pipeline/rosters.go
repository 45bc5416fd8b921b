package pipeline

import (
	"context"
	"errors"
	"io"

	"github.com/mww/wr_zones/model"
)

type rosterEntry struct {
	id   string
	name string
	team string
}

// readWideReceivers returns the WRs on the roster keyed by player id. A player
// listed more than once keeps the first row.
func readWideReceivers(ctx context.Context, in Input) (map[string]rosterEntry, error) {
	t, err := in.table("rosters", "position", "full_name", "team")
	if err != nil {
		return nil, err
	}
	// older nflverse roster files only have gsis_id
	t.alias("player_id", "gsis_id")
	if !t.has("player_id") {
		return nil, errors.New("error finding required columns in rosters: player_id")
	}

	result := make(map[string]rosterEntry)
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

		if model.ParsePosition(t.str(record, "position")) != model.POS_WR {
			continue
		}
		id := t.str(record, "player_id")
		if id == "" {
			continue
		}
		if _, found := result[id]; found {
			continue
		}
		result[id] = rosterEntry{
			id:   id,
			name: t.str(record, "full_name"),
			team: t.str(record, "team"),
		}
	}
	return result, nil
}
