package routing

import (
	"math"

	da "github.com/lockcole/OpenLevelUp-sub000/pkg/datastructure"
	"github.com/lockcole/OpenLevelUp-sub000/pkg/spatialindex"
	"github.com/lockcole/OpenLevelUp-sub000/pkg/util"
	"go.uber.org/zap"
)

const (
	DEFAULT_SEARCH_RADIUS = 25.0
)

// Router answers route queries over one read-only graph. It is safe for concurrent use.
type Router struct {
	graph        *da.Graph
	rtree        *spatialindex.Rtree
	containment  *spatialindex.ContainmentIndex
	searchRadius float64
	log          *zap.Logger
}

func NewRouter(graph *da.Graph, searchRadius float64, log *zap.Logger) *Router {
	if searchRadius <= 0 {
		searchRadius = DEFAULT_SEARCH_RADIUS
	}
	rt := spatialindex.NewRtree()
	rt.Build(graph, log)
	return &Router{
		graph:        graph,
		rtree:        rt,
		containment:  spatialindex.NewContainmentIndex(graph),
		searchRadius: searchRadius,
		log:          log,
	}
}

func (r *Router) GetGraph() *da.Graph {
	return r.graph
}

type Query struct {
	Start      da.Coordinate
	StartLevel float64
	End        da.Coordinate
	EndLevel   float64
	Normalize  bool
}

func NewQuery(start da.Coordinate, startLevel float64, end da.Coordinate, endLevel float64) Query {
	return Query{
		Start:      start,
		StartLevel: startLevel,
		End:        end,
		EndLevel:   endLevel,
	}
}

func validCoordinate(c da.Coordinate) bool {
	return !math.IsNaN(c.Lat) && !math.IsNaN(c.Lon) &&
		c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

func validLevel(l float64) bool {
	return !math.IsNaN(l) && !math.IsInf(l, 0)
}

func (q Query) validate() error {
	if !validCoordinate(q.Start) || !validCoordinate(q.End) {
		return util.WrapErrorf(ErrInvalidQuery, util.ErrBadParamInput, "coordinates out of range")
	}
	if !validLevel(q.StartLevel) || !validLevel(q.EndLevel) {
		return util.WrapErrorf(ErrInvalidQuery, util.ErrBadParamInput, "level must be a finite number")
	}
	return nil
}

// Route resolves both anchors, runs the search and optionally normalizes the result.
func (r *Router) Route(q Query) (*Path, error) {
	if err := q.validate(); err != nil {
		return nil, err
	}
	path, err := r.ShortestPath(q.Start, q.StartLevel, q.End, q.EndLevel)
	if err != nil {
		return nil, err
	}
	if q.Normalize {
		path = r.Normalize(path, q.Start, q.StartLevel, q.End, q.EndLevel)
	}
	return path, nil
}
