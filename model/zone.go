package model

import (
	"errors"
	"fmt"
	"strings"
)

var ErrBadZone = errors.New("bad zone")

type Depth string

const (
	DEPTH_SHORT Depth = "Short"
	DEPTH_MID   Depth = "Mid"
	DEPTH_DEEP  Depth = "Deep"
)

type Direction string

const (
	DIR_LEFT   Direction = "Left"
	DIR_MIDDLE Direction = "Middle"
	DIR_RIGHT  Direction = "Right"
)

// Depths and Directions are in grid order, deep zones are drawn at the top of
// the field but Short comes first everywhere else (sorting, aggregation).
var (
	Depths     = []Depth{DEPTH_SHORT, DEPTH_MID, DEPTH_DEEP}
	Directions = []Direction{DIR_LEFT, DIR_MIDDLE, DIR_RIGHT}
)

func ParseDepth(s string) (Depth, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "short":
		return DEPTH_SHORT, nil
	case "mid":
		return DEPTH_MID, nil
	case "deep":
		return DEPTH_DEEP, nil
	default:
		return "", fmt.Errorf("%w: unknown depth '%s'", ErrBadZone, s)
	}
}

func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return DIR_LEFT, nil
	case "middle":
		return DIR_MIDDLE, nil
	case "right":
		return DIR_RIGHT, nil
	default:
		return "", fmt.Errorf("%w: unknown direction '%s'", ErrBadZone, s)
	}
}

func (d Depth) index() int {
	for i, v := range Depths {
		if v == d {
			return i
		}
	}
	return len(Depths)
}

func (d Direction) index() int {
	for i, v := range Directions {
		if v == d {
			return i
		}
	}
	return len(Directions)
}

// ZoneKey identifies one of the nine zones. Its string form is
// "<Depth>-<Direction>", the same form used by league averages in the dataset.
type ZoneKey struct {
	Depth     Depth
	Direction Direction
}

func (k ZoneKey) String() string {
	return fmt.Sprintf("%s-%s", k.Depth, k.Direction)
}

// Label is the human readable name, e.g. "Short Left".
func (k ZoneKey) Label() string {
	return fmt.Sprintf("%s %s", k.Depth, k.Direction)
}

// Less orders zones by depth first and then by direction.
func (k ZoneKey) Less(o ZoneKey) bool {
	if k.Depth != o.Depth {
		return k.Depth.index() < o.Depth.index()
	}
	return k.Direction.index() < o.Direction.index()
}

// ParseZoneKey accepts "Mid-Middle", "mid-middle" or "Mid Middle".
func ParseZoneKey(s string) (ZoneKey, error) {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == '-' || r == ' ' })
	if len(parts) != 2 {
		return ZoneKey{}, fmt.Errorf("%w: '%s'", ErrBadZone, s)
	}

	depth, err := ParseDepth(parts[0])
	if err != nil {
		return ZoneKey{}, err
	}
	dir, err := ParseDirection(parts[1])
	if err != nil {
		return ZoneKey{}, err
	}
	return ZoneKey{Depth: depth, Direction: dir}, nil
}

// AllZones returns the nine zone keys in grid order.
func AllZones() []ZoneKey {
	keys := make([]ZoneKey, 0, len(Depths)*len(Directions))
	for _, d := range Depths {
		for _, dir := range Directions {
			keys = append(keys, ZoneKey{Depth: d, Direction: dir})
		}
	}
	return keys
}
