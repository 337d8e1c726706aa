package routing

import (
	"math"

	da "github.com/lockcole/OpenLevelUp-sub000/pkg/datastructure"
	"github.com/lockcole/OpenLevelUp-sub000/pkg/geo"
)

// Anchor is the graph node a query coordinate resolves to. Area is -1 when the coordinate
// is not inside any area on its level.
type Anchor struct {
	Node da.Index
	Area int
}

// ResolveAnchor first looks for an enclosing area on level and takes the nearest of its
// boundary nodes, otherwise the nearest node of the whole level.
func (r *Router) ResolveAnchor(coord da.Coordinate, level float64) (Anchor, bool) {
	if members, area, ok := r.containment.FindContainingArea(coord.Lat, coord.Lon, level); ok {
		if u, found := r.nearestAmong(coord, members); found {
			return Anchor{Node: u, Area: area}, true
		}
	}
	u, ok := r.rtree.Nearest(coord.Lat, coord.Lon, level, r.searchRadius)
	if !ok {
		return Anchor{Node: da.INVALID_INDEX, Area: -1}, false
	}
	return Anchor{Node: u, Area: -1}, true
}

func (r *Router) nearestAmong(coord da.Coordinate, candidates []da.Index) (da.Index, bool) {
	best := da.INVALID_INDEX
	bestDist := math.Inf(1)
	for _, u := range candidates {
		n := r.graph.GetNode(u)
		d := geo.PlanarDistance(coord.Lat, coord.Lon, n.Coord.Lat, n.Coord.Lon)
		if d < bestDist {
			best = u
			bestDist = d
		}
	}
	return best, best != da.INVALID_INDEX
}
