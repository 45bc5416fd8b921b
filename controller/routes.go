package controller

import (
	"fmt"
	"os"
	"slices"

	"github.com/mww/wr_zones/model"
	"gopkg.in/yaml.v3"
)

const (
	maxRecommendations = 3
	InsufficientData   = "Insufficient data for specific recommendations."
)

// fallbackRoutes is used for a zone label the table doesn't know.
var fallbackRoutes = []string{"Routes"}

// RouteTable maps a zone label ("Short Left") to the route concepts that
// attack that area of the field.
type RouteTable map[string][]string

func DefaultRouteTable() RouteTable {
	return RouteTable{
		"Short Left":   {"Flat", "Screen", "Slant"},
		"Short Middle": {"Slant", "Drag", "Quick In"},
		"Short Right":  {"Flat", "Screen", "Hitch"},
		"Mid Left":     {"Out", "Dig", "Curl"},
		"Mid Middle":   {"Post", "Crosser", "Seam"},
		"Mid Right":    {"Out", "Dig", "Curl"},
		"Deep Left":    {"Go", "Fade", "Deep Post"},
		"Deep Middle":  {"Post", "Seam", "Deep Cross"},
		"Deep Right":   {"Go", "Fade", "Comeback"},
	}
}

func (t RouteTable) Routes(label string) []string {
	if r, found := t[label]; found && len(r) > 0 {
		return r
	}
	return fallbackRoutes
}

// LoadRouteTable reads a YAML file of overrides, e.g.
//
//	Deep Left: [Go, Fade, Corner]
//
// Zones not present in the file keep their default routes. Keys may be
// written as "Deep Left" or "Deep-Left".
func LoadRouteTable(path string) (RouteTable, error) {
	table := DefaultRouteTable()
	if path == "" {
		return table, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading routes file: %w", err)
	}

	var overrides map[string][]string
	if err := yaml.Unmarshal(b, &overrides); err != nil {
		return nil, fmt.Errorf("error parsing routes file %s: %w", path, err)
	}

	for k, routes := range overrides {
		key, err := model.ParseZoneKey(k)
		if err != nil {
			return nil, fmt.Errorf("routes file %s: %w", path, err)
		}
		if len(routes) == 0 {
			return nil, fmt.Errorf("routes file %s: no routes for %s", path, k)
		}
		table[key.Label()] = routes
	}
	return table, nil
}

// recommendRoutes keeps zones with enough targets, ranks them by score and
// maps the top three to route concepts. When nothing qualifies the returned
// notice is set instead.
func recommendRoutes(cells []model.ZoneCell, table RouteTable) ([]model.RouteRecommendation, string) {
	valid := make([]model.ZoneCell, 0, len(cells))
	for _, c := range cells {
		if c.HasData && c.Stats.Targets >= minZoneTargets {
			valid = append(valid, c)
		}
	}

	if len(valid) == 0 {
		return nil, InsufficientData
	}

	slices.SortStableFunc(valid, func(a, b model.ZoneCell) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		default:
			return 0
		}
	})

	if len(valid) > maxRecommendations {
		valid = valid[:maxRecommendations]
	}

	result := make([]model.RouteRecommendation, 0, len(valid))
	for _, c := range valid {
		result = append(result, model.RouteRecommendation{
			Zone:   c.Label,
			Routes: table.Routes(c.Label),
			Score:  c.Score,
		})
	}
	return result, ""
}
