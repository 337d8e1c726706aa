package cli

import (
	"fmt"
	"strconv"
	"strings"

	da "github.com/lockcole/OpenLevelUp-sub000/pkg/datastructure"
)

// parsePoint reads "lat,lon,level".
func parsePoint(s string) (da.Coordinate, float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return da.Coordinate{}, 0, fmt.Errorf("point %q: want lat,lon,level", s)
	}
	vals := make([]float64, 3)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return da.Coordinate{}, 0, fmt.Errorf("point %q: %w", s, err)
		}
		vals[i] = v
	}
	if vals[0] < -90 || vals[0] > 90 || vals[1] < -180 || vals[1] > 180 {
		return da.Coordinate{}, 0, fmt.Errorf("point %q: coordinate out of range", s)
	}
	return da.NewCoordinate(vals[0], vals[1]), vals[2], nil
}

// parseAvoidList turns entries like "stairs,elevator" or "" into avoidance sets.
func parseAvoidList(entries []string) ([]da.AvoidSet, error) {
	sets := make([]da.AvoidSet, 0, len(entries))
	seen := make(map[da.AvoidSet]struct{}, len(entries))
	for _, e := range entries {
		a, err := da.ParseAvoidSet(e)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		sets = append(sets, a)
	}
	return sets, nil
}
