package datastructure

import (
	"math"

	"github.com/lockcole/OpenLevelUp-sub000/pkg/geo"
	"github.com/lockcole/OpenLevelUp-sub000/pkg/util"
)

type Index uint32

const (
	INVALID_INDEX Index = math.MaxUint32
)

// NodeIdentity is the immutable part of a graph node. Adjacency lives in the graph,
// indexed by the node handle.
type NodeIdentity struct {
	Coord    Coordinate
	Level    float64
	HasLevel bool // false for the level-less placeholder of a point
	Kind     NodeKind
	Name     string
}

func NewNodeIdentity(coord Coordinate, level float64, kind NodeKind, name string) NodeIdentity {
	return NodeIdentity{
		Coord:    coord,
		Level:    level,
		HasLevel: true,
		Kind:     kind,
		Name:     name,
	}
}

func (n NodeIdentity) Equal(o NodeIdentity) bool {
	return n.Name == o.Name &&
		n.HasLevel == o.HasLevel &&
		n.Level == o.Level &&
		n.Kind == o.Kind &&
		n.Coord == o.Coord
}

// IsOnLevel reports whether the node exists on exactly this level.
func (n NodeIdentity) IsOnLevel(level float64) bool {
	return n.HasLevel && n.Level == level
}

type Edge struct {
	To         Index
	Cost       float64
	Transition TransitionKind
}

type AreaMember struct {
	PointID int64
	Coord   Coordinate
	Nodes   map[float64]Index // level -> node of this member on that level
}

// Area is the boundary of a closed walkable polygon. The closing repeat of the ring is
// not stored.
type Area struct {
	ElementID int64
	Members   []AreaMember
}

// MembersOnLevel returns the member nodes on level, or false when at least one member
// has no node there.
func (a *Area) MembersOnLevel(level float64) ([]Index, bool) {
	out := make([]Index, 0, len(a.Members))
	for _, m := range a.Members {
		idx, ok := m.Nodes[level]
		if !ok {
			return nil, false
		}
		out = append(out, idx)
	}
	return out, true
}

// Graph is read-only once built. Every node holds at least one incident edge.
type Graph struct {
	nodes        []NodeIdentity
	adj          [][]Edge
	areas        []Area
	nodeAreas    map[Index][]int
	levelPenalty float64
}

func NewGraph(nodes []NodeIdentity, adj [][]Edge, areas []Area, levelPenalty float64) *Graph {
	util.AssertPanic(len(nodes) == len(adj), "every node needs an adjacency list")
	g := &Graph{
		nodes:        nodes,
		adj:          adj,
		areas:        areas,
		nodeAreas:    make(map[Index][]int),
		levelPenalty: levelPenalty,
	}
	for i := range areas {
		for _, m := range areas[i].Members {
			for _, idx := range m.Nodes {
				g.nodeAreas[idx] = appendUnique(g.nodeAreas[idx], i)
			}
		}
	}
	return g
}

func appendUnique(arr []int, v int) []int {
	for _, x := range arr {
		if x == v {
			return arr
		}
	}
	return append(arr, v)
}

func (g *Graph) NumberOfNodes() int {
	return len(g.nodes)
}

func (g *Graph) NumberOfEdges() int {
	n := 0
	for _, edges := range g.adj {
		n += len(edges)
	}
	return n
}

func (g *Graph) NumberOfAreas() int {
	return len(g.areas)
}

func (g *Graph) GetNode(u Index) NodeIdentity {
	return g.nodes[u]
}

// GetEdges returns the outgoing edges of u. Callers must not modify the slice.
func (g *Graph) GetEdges(u Index) []Edge {
	return g.adj[u]
}

func (g *Graph) ForOutEdgesOf(u Index, handle func(e Edge)) {
	for _, e := range g.adj[u] {
		handle(e)
	}
}

func (g *Graph) GetAreas() []Area {
	return g.areas
}

func (g *Graph) GetArea(i int) *Area {
	return &g.areas[i]
}

// AreasOf returns the indices of the areas u is a boundary node of.
func (g *Graph) AreasOf(u Index) []int {
	return g.nodeAreas[u]
}

func (g *Graph) GetLevelPenalty() float64 {
	return g.levelPenalty
}

// Equal compares two nodes by name, level, kind, coordinate and neighbor count.
func (g *Graph) Equal(u, v Index) bool {
	return g.EqualIdentity(u, g.nodes[v], len(g.adj[v]))
}

// EqualIdentity compares node u against a node that may not belong to the graph.
func (g *Graph) EqualIdentity(u Index, other NodeIdentity, neighbors int) bool {
	return g.nodes[u].Equal(other) && len(g.adj[u]) == neighbors
}

// VerticalDistance is the cost model between two nodes of the graph.
func (g *Graph) VerticalDistance(u, v Index) float64 {
	a, b := g.nodes[u], g.nodes[v]
	return geo.VerticalDistance(a.Coord.Lat, a.Coord.Lon, a.Level, b.Coord.Lat, b.Coord.Lon, b.Level, g.levelPenalty)
}

// Levels returns every level that holds at least one node.
func (g *Graph) Levels() []float64 {
	levels := make([]float64, 0)
	seen := make(map[float64]struct{})
	for _, n := range g.nodes {
		if _, ok := seen[n.Level]; ok {
			continue
		}
		seen[n.Level] = struct{}{}
		levels = append(levels, n.Level)
	}
	return util.SortedUnique(levels)
}

func (g *Graph) NodesOnLevel(level float64) []Index {
	out := make([]Index, 0)
	for i, n := range g.nodes {
		if n.IsOnLevel(level) {
			out = append(out, Index(i))
		}
	}
	return out
}

// GraphArena is the mutable node store used while a graph is being built.
type GraphArena struct {
	nodes    []NodeIdentity
	adj      [][]Edge
	inDegree []int
}

func NewGraphArena() *GraphArena {
	return &GraphArena{
		nodes:    make([]NodeIdentity, 0),
		adj:      make([][]Edge, 0),
		inDegree: make([]int, 0),
	}
}

func (a *GraphArena) AddNode(n NodeIdentity) Index {
	a.nodes = append(a.nodes, n)
	a.adj = append(a.adj, nil)
	a.inDegree = append(a.inDegree, 0)
	return Index(len(a.nodes) - 1)
}

func (a *GraphArena) GetNode(u Index) NodeIdentity {
	return a.nodes[u]
}

func (a *GraphArena) NumberOfNodes() int {
	return len(a.nodes)
}

func (a *GraphArena) AddEdge(from, to Index, cost float64, kind TransitionKind) {
	a.adj[from] = append(a.adj[from], Edge{To: to, Cost: cost, Transition: kind})
	a.inDegree[to]++
}

// Build keeps every leveled node with at least one incident edge, compacts the handles and
// remaps the areas (given in arena handles) onto the compacted graph.
func (a *GraphArena) Build(areas []Area, levelPenalty float64) *Graph {
	remap := make([]Index, len(a.nodes))
	nodes := make([]NodeIdentity, 0, len(a.nodes))
	for i, n := range a.nodes {
		remap[i] = INVALID_INDEX
		if !n.HasLevel || (len(a.adj[i]) == 0 && a.inDegree[i] == 0) {
			continue
		}
		remap[i] = Index(len(nodes))
		nodes = append(nodes, n)
	}

	adj := make([][]Edge, len(nodes))
	for i, edges := range a.adj {
		if remap[i] == INVALID_INDEX {
			continue
		}
		out := make([]Edge, 0, len(edges))
		for _, e := range edges {
			if remap[e.To] == INVALID_INDEX {
				continue
			}
			out = append(out, Edge{To: remap[e.To], Cost: e.Cost, Transition: e.Transition})
		}
		adj[remap[i]] = out
	}

	remapped := make([]Area, 0, len(areas))
	for _, area := range areas {
		members := make([]AreaMember, len(area.Members))
		for j, m := range area.Members {
			levelNodes := make(map[float64]Index, len(m.Nodes))
			for level, idx := range m.Nodes {
				if remap[idx] != INVALID_INDEX {
					levelNodes[level] = remap[idx]
				}
			}
			members[j] = AreaMember{PointID: m.PointID, Coord: m.Coord, Nodes: levelNodes}
		}
		remapped = append(remapped, Area{ElementID: area.ElementID, Members: members})
	}

	return NewGraph(nodes, adj, remapped, levelPenalty)
}
