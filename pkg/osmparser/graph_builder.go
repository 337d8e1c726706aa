package osmparser

import (
	"fmt"
	"sort"
	"strconv"

	da "github.com/lockcole/OpenLevelUp-sub000/pkg/datastructure"
	"github.com/lockcole/OpenLevelUp-sub000/pkg/geo"
	"github.com/lockcole/OpenLevelUp-sub000/pkg/level"
	"github.com/lockcole/OpenLevelUp-sub000/pkg/util"
	"go.uber.org/zap"
)

// GraphBuilder turns indoor map elements into a routing graph. It holds no per-build
// state, so one builder can serve concurrent builds.
type GraphBuilder struct {
	cfg    BuilderConfig
	levels *level.Parser
	log    *zap.Logger
}

func NewGraphBuilder(cfg BuilderConfig, levels *level.Parser, log *zap.Logger) *GraphBuilder {
	return &GraphBuilder{cfg: cfg, levels: levels, log: log}
}

func (b *GraphBuilder) LevelParser() *level.Parser {
	return b.levels
}

// pointNodes holds every node created for one map point.
type pointNodes struct {
	id          int64
	coord       da.Coordinate
	kind        da.NodeKind
	placeholder da.Index
	byLevel     map[float64]da.Index
}

type buildState struct {
	b      *GraphBuilder
	avoid  da.AvoidSet
	arena  *da.GraphArena
	points map[int64]*pointNodes
	areas  []pendingArea
}

type pendingArea struct {
	elementID int64
	pointIDs  []int64
}

// Build runs the node pass, the edge pass and finalization. Edges of the avoided transition
// kinds are never created.
func (b *GraphBuilder) Build(elements []da.Element, avoid da.AvoidSet) *da.Graph {
	s := &buildState{
		b:      b,
		avoid:  avoid,
		arena:  da.NewGraphArena(),
		points: make(map[int64]*pointNodes),
		areas:  make([]pendingArea, 0),
	}

	for i := range elements {
		if elements[i].Type == da.POINT {
			s.addPoint(&elements[i])
		}
	}

	// single-level paths first so that the member nodes transitions attach to already exist
	deferred := make([]*da.Element, 0)
	for i := range elements {
		e := &elements[i]
		if e.Type != da.PATH {
			continue
		}
		levels := b.levels.ParseElement(e.Tags, e.Memberships)
		if len(levels) == 1 && !isElevator(e.Tags) {
			s.addPath(e, levels)
			continue
		}
		deferred = append(deferred, e)
	}
	for _, e := range deferred {
		levels := b.levels.ParseElement(e.Tags, e.Memberships)
		if isElevator(e.Tags) && len(levels) > 0 && !avoid.Has(da.TRANSITION_ELEVATOR) {
			s.addElevatorPath(e, levels)
			continue
		}
		s.addPath(e, levels)
	}

	g := s.arena.Build(s.finalizeAreas(), b.cfg.LevelPenalty)
	b.log.Sugar().Infof("indoor graph built (avoid=%q): %d nodes, %d edges, %d areas",
		avoid.String(), g.NumberOfNodes(), g.NumberOfEdges(), g.NumberOfAreas())
	return g
}

func nodeName(id int64, level float64) string {
	return fmt.Sprintf("%d@%s", id, util.FormatFloat(level))
}

func (s *buildState) addPoint(e *da.Element) {
	kind := da.NODE_KIND_NONE
	if isDoor(e.Tags) {
		kind = da.NODE_KIND_DOOR
	}
	p := &pointNodes{
		id:      e.ID,
		coord:   e.Coord,
		kind:    kind,
		byLevel: make(map[float64]da.Index),
	}
	p.placeholder = s.arena.AddNode(da.NodeIdentity{Coord: e.Coord, Kind: kind, Name: strconv.FormatInt(e.ID, 10)})
	s.points[e.ID] = p

	levels := s.b.levels.ParseElement(e.Tags, e.Memberships)
	for _, l := range levels {
		s.nodeAt(p, l)
	}

	if isElevator(e.Tags) && !s.avoid.Has(da.TRANSITION_ELEVATOR) {
		for i := 1; i < len(levels); i++ {
			s.link(p.byLevel[levels[i-1]], p.byLevel[levels[i]], da.TRANSITION_ELEVATOR, BOTH)
		}
	}
}

// nodeAt returns the node of p on level, creating it when needed.
func (s *buildState) nodeAt(p *pointNodes, level float64) da.Index {
	if idx, ok := p.byLevel[level]; ok {
		return idx
	}
	idx := s.arena.AddNode(da.NewNodeIdentity(p.coord, level, p.kind, nodeName(p.id, level)))
	p.byLevel[level] = idx
	return idx
}

func (s *buildState) link(from, to da.Index, kind da.TransitionKind, dir int) {
	a, c := s.arena.GetNode(from), s.arena.GetNode(to)
	cost := geo.VerticalDistance(a.Coord.Lat, a.Coord.Lon, a.Level, c.Coord.Lat, c.Coord.Lon, c.Level,
		s.b.cfg.LevelPenalty)
	if dir >= 0 {
		s.arena.AddEdge(from, to, cost, kind)
	}
	if dir <= 0 {
		s.arena.AddEdge(to, from, cost, kind)
	}
}

// addElevatorPath links the first entrance found on each level to the entrance of the next
// level up.
func (s *buildState) addElevatorPath(e *da.Element, levels []float64) {
	entries := make(map[float64]da.Index, len(levels))
	for _, id := range e.NodeIDs {
		p, ok := s.points[id]
		if !ok || p.kind != da.NODE_KIND_DOOR {
			continue
		}
		for _, l := range levels {
			idx, ok := p.byLevel[l]
			if !ok {
				continue
			}
			if _, seen := entries[l]; !seen {
				entries[l] = idx
			}
		}
	}

	reached := make([]float64, 0, len(entries))
	for l := range entries {
		reached = append(reached, l)
	}
	sort.Float64s(reached)
	if len(reached) < 2 {
		s.b.log.Debug("elevator way without two reachable levels", zap.Int64("way", e.ID))
	}
	for i := 1; i < len(reached); i++ {
		s.link(entries[reached[i-1]], entries[reached[i]], da.TRANSITION_ELEVATOR, BOTH)
	}
}

func (s *buildState) addPath(e *da.Element, levels []float64) {
	if !s.b.cfg.isWalkable(e.Tags) {
		return
	}
	kind := transitionKind(e.Tags)
	if s.avoid.Has(kind) {
		return
	}
	if !s.b.cfg.isAccessible(e.Tags) {
		return
	}
	last := len(e.NodeIDs) - 1
	// the area is kept even when the way itself adds no edge
	if s.b.cfg.isArea(e) {
		s.areas = append(s.areas, pendingArea{elementID: e.ID, pointIDs: e.NodeIDs[:last]})
	}
	if len(levels) == 0 {
		return
	}
	dir := direction(e.Tags)

	prev := da.INVALID_INDEX
	for i, id := range e.NodeIDs {
		p, ok := s.points[id]
		if !ok {
			s.b.log.Debug("way references a missing point", zap.Int64("way", e.ID), zap.Int64("point", id))
			prev = da.INVALID_INDEX
			continue
		}

		cur := da.INVALID_INDEX
		switch {
		case len(levels) == 1:
			cur = s.nodeAt(p, levels[0])
		case len(levels) == 2 && kind != da.TRANSITION_NONE && i > 0 && i < last:
			cur = s.nodeAt(p, (levels[0]+levels[1])/2)
		default:
			for _, l := range levels {
				if idx, ok := p.byLevel[l]; ok {
					cur = idx
					break
				}
			}
		}

		if cur == da.INVALID_INDEX {
			prev = da.INVALID_INDEX
			continue
		}
		if prev != da.INVALID_INDEX && prev != cur {
			s.link(prev, cur, kind, dir)
		}
		prev = cur
	}
}

// finalizeAreas resolves area members once every per-level node exists.
func (s *buildState) finalizeAreas() []da.Area {
	areas := make([]da.Area, 0, len(s.areas))
NEXT_AREA:
	for _, pa := range s.areas {
		members := make([]da.AreaMember, 0, len(pa.pointIDs))
		for _, id := range pa.pointIDs {
			p, ok := s.points[id]
			if !ok {
				continue NEXT_AREA
			}
			nodes := make(map[float64]da.Index, len(p.byLevel))
			for l, idx := range p.byLevel {
				nodes[l] = idx
			}
			members = append(members, da.AreaMember{PointID: id, Coord: p.coord, Nodes: nodes})
		}
		areas = append(areas, da.Area{ElementID: pa.elementID, Members: members})
	}
	return areas
}
