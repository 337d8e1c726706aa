package routing

import (
	da "github.com/lockcole/OpenLevelUp-sub000/pkg/datastructure"
)

// Normalize shortens a path for display. A run of consecutive nodes that share an area is
// reduced to its first and last node, and when a query point lies inside an area of the
// first or last node a synthetic node with the query coordinate is added at that end.
// The cost is left as found by the search.
func (r *Router) Normalize(path *Path, start da.Coordinate, startLevel float64, end da.Coordinate,
	endLevel float64) *Path {
	if path == nil || len(path.Nodes) == 0 {
		return path
	}

	nodes := make([]PathNode, 0, len(path.Nodes)+2)
	if r.insideAreaOf(path.Nodes[0], start, startLevel) {
		nodes = append(nodes, newSyntheticNode(start, startLevel))
	}

	for i := 0; i < len(path.Nodes); {
		common := r.graph.AreasOf(path.Nodes[i].Index)
		j := i
		for len(common) > 0 && j+1 < len(path.Nodes) {
			next := intersect(common, r.graph.AreasOf(path.Nodes[j+1].Index))
			if len(next) == 0 {
				break
			}
			common = next
			j++
		}
		nodes = append(nodes, path.Nodes[i])
		if j > i {
			nodes = append(nodes, path.Nodes[j])
		}
		i = j + 1
	}

	if r.insideAreaOf(path.Nodes[len(path.Nodes)-1], end, endLevel) {
		nodes = append(nodes, newSyntheticNode(end, endLevel))
	}
	return &Path{Nodes: nodes, Cost: path.Cost}
}

func (r *Router) insideAreaOf(n PathNode, coord da.Coordinate, level float64) bool {
	if n.IsSynthetic() || n.Coord == coord {
		return false
	}
	for _, area := range r.graph.AreasOf(n.Index) {
		if r.containment.AreaContains(area, coord.Lat, coord.Lon, level) {
			return true
		}
	}
	return false
}

func intersect(a, b []int) []int {
	out := make([]int, 0, len(a))
	for _, x := range a {
		for _, y := range b {
			if x == y {
				out = append(out, x)
				break
			}
		}
	}
	return out
}
