package spatialindex

import (
	"math"

	da "github.com/lockcole/OpenLevelUp-sub000/pkg/datastructure"
	"github.com/lockcole/OpenLevelUp-sub000/pkg/geo"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"
)

const (
	// beyond this radius (meters) the nearest search falls back to a scan of the level
	maxSearchRadius = 5000.0
)

// Rtree indexes graph nodes per level. Each node is a point leaf.
type Rtree struct {
	graph  *da.Graph
	levels map[float64]*rtree.RTreeG[da.Index]
}

func NewRtree() *Rtree {
	return &Rtree{
		levels: make(map[float64]*rtree.RTreeG[da.Index]),
	}
}

func (rt *Rtree) Build(graph *da.Graph, log *zap.Logger) {
	rt.graph = graph
	rt.levels = make(map[float64]*rtree.RTreeG[da.Index])
	for u := 0; u < graph.NumberOfNodes(); u++ {
		n := graph.GetNode(da.Index(u))
		tr, ok := rt.levels[n.Level]
		if !ok {
			tr = &rtree.RTreeG[da.Index]{}
			rt.levels[n.Level] = tr
		}
		p := [2]float64{n.Coord.Lon, n.Coord.Lat}
		tr.Insert(p, p, da.Index(u))
	}
	log.Debug("R-tree spatial index built.", zap.Int("levels", len(rt.levels)),
		zap.Int("nodes", graph.NumberOfNodes()))
}

// SearchWithinRadius returns the nodes of level inside the bounding box of a circle of radius
// meters around (qLat, qLon). The result may hold nodes slightly outside the circle.
func (rt *Rtree) SearchWithinRadius(qLat, qLon, level, radius float64) []da.Index {
	tr, ok := rt.levels[level]
	if !ok {
		return nil
	}
	minLat, minLon, maxLat, maxLon := geo.BoundingBoxAround(qLat, qLon, radius)
	results := make([]da.Index, 0, 10)
	tr.Search([2]float64{minLon, minLat}, [2]float64{maxLon, maxLat},
		func(min, max [2]float64, data da.Index) bool {
			results = append(results, data)
			return true
		})
	return results
}

// Nearest returns the node of level closest to (qLat, qLon). Equal distances resolve to the
// lowest node handle.
func (rt *Rtree) Nearest(qLat, qLon, level, initialRadius float64) (da.Index, bool) {
	tr, ok := rt.levels[level]
	if !ok || tr.Len() == 0 {
		return da.INVALID_INDEX, false
	}
	if initialRadius <= 0 {
		initialRadius = 1
	}

	for radius := initialRadius; radius <= maxSearchRadius; radius *= 2 {
		candidates := rt.SearchWithinRadius(qLat, qLon, level, radius)
		if len(candidates) == 0 {
			continue
		}
		_, best := rt.closest(qLat, qLon, candidates)
		// a closer node may sit outside the first box but inside the circle of radius best
		exact := rt.SearchWithinRadius(qLat, qLon, level, best*1.01+1)
		idx, _ := rt.closest(qLat, qLon, exact)
		return idx, true
	}

	all := make([]da.Index, 0, tr.Len())
	tr.Scan(func(min, max [2]float64, data da.Index) bool {
		all = append(all, data)
		return true
	})
	idx, _ := rt.closest(qLat, qLon, all)
	return idx, true
}

func (rt *Rtree) closest(qLat, qLon float64, candidates []da.Index) (da.Index, float64) {
	best := da.INVALID_INDEX
	bestDist := math.Inf(1)
	for _, idx := range candidates {
		n := rt.graph.GetNode(idx)
		d := geo.PlanarDistance(qLat, qLon, n.Coord.Lat, n.Coord.Lon)
		if d < bestDist || (d == bestDist && idx < best) {
			best = idx
			bestDist = d
		}
	}
	return best, bestDist
}
