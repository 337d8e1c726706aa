package routing

import (
	da "github.com/lockcole/OpenLevelUp-sub000/pkg/datastructure"
)

// PathNode is one step of a route. Synthetic anchors added by Normalize carry
// da.INVALID_INDEX.
type PathNode struct {
	Index      da.Index
	Coord      da.Coordinate
	Level      float64
	Kind       da.NodeKind
	Name       string
	Transition da.TransitionKind // kind of the edge that reached this node
}

func (p PathNode) IsSynthetic() bool {
	return p.Index == da.INVALID_INDEX
}

type Path struct {
	Nodes []PathNode
	Cost  float64
}

func newPathNode(g *da.Graph, u da.Index, transition da.TransitionKind) PathNode {
	n := g.GetNode(u)
	return PathNode{
		Index:      u,
		Coord:      n.Coord,
		Level:      n.Level,
		Kind:       n.Kind,
		Name:       n.Name,
		Transition: transition,
	}
}

func newSyntheticNode(coord da.Coordinate, level float64) PathNode {
	return PathNode{
		Index: da.INVALID_INDEX,
		Coord: coord,
		Level: level,
	}
}

func (p *Path) Coordinates() []da.Coordinate {
	coords := make([]da.Coordinate, len(p.Nodes))
	for i, n := range p.Nodes {
		coords[i] = n.Coord
	}
	return coords
}

// Levels returns the levels the path visits, in order, with consecutive repeats removed.
func (p *Path) Levels() []float64 {
	levels := make([]float64, 0, 2)
	for i, n := range p.Nodes {
		if i == 0 || n.Level != p.Nodes[i-1].Level {
			levels = append(levels, n.Level)
		}
	}
	return levels
}
