package spatialindex

import (
	da "github.com/lockcole/OpenLevelUp-sub000/pkg/datastructure"
	"github.com/paulmach/orb"
)

// ContainmentIndex answers which walkable area encloses a coordinate on a level. Areas
// are scanned linearly; each ring's bound is only a prefilter.
type ContainmentIndex struct {
	graph   *da.Graph
	bounds  []orb.Bound
	polygon [][]da.Point
}

func NewContainmentIndex(graph *da.Graph) *ContainmentIndex {
	areas := graph.GetAreas()
	ci := &ContainmentIndex{
		graph:   graph,
		bounds:  make([]orb.Bound, len(areas)),
		polygon: make([][]da.Point, len(areas)),
	}
	for i := range areas {
		ring := make(orb.Ring, 0, len(areas[i].Members)+1)
		poly := make([]da.Point, 0, len(areas[i].Members))
		for _, m := range areas[i].Members {
			ring = append(ring, orb.Point{m.Coord.Lon, m.Coord.Lat})
			poly = append(poly, da.NewPoint(m.Coord.Lon, m.Coord.Lat))
		}
		ci.bounds[i] = ring.Bound()
		ci.polygon[i] = poly
	}
	return ci
}

// FindContainingArea returns the boundary nodes of the first area defined on level that
// contains (lat, lon), along with the area's position in the graph.
func (ci *ContainmentIndex) FindContainingArea(lat, lon, level float64) ([]da.Index, int, bool) {
	q := orb.Point{lon, lat}
	for i := range ci.polygon {
		if len(ci.polygon[i]) < 3 || !ci.bounds[i].Contains(q) {
			continue
		}
		members, ok := ci.graph.GetArea(i).MembersOnLevel(level)
		if !ok {
			continue
		}
		if da.PointInPolygon(da.NewPoint(lon, lat), ci.polygon[i]) {
			return members, i, true
		}
	}
	return nil, -1, false
}

// AreaContains reports whether area i, on level, contains (lat, lon).
func (ci *ContainmentIndex) AreaContains(i int, lat, lon, level float64) bool {
	if i < 0 || i >= len(ci.polygon) || len(ci.polygon[i]) < 3 {
		return false
	}
	if _, ok := ci.graph.GetArea(i).MembersOnLevel(level); !ok {
		return false
	}
	return ci.bounds[i].Contains(orb.Point{lon, lat}) &&
		da.PointInPolygon(da.NewPoint(lon, lat), ci.polygon[i])
}
