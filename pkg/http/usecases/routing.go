package usecases

import (
	da "github.com/lockcole/OpenLevelUp-sub000/pkg/datastructure"
	"github.com/lockcole/OpenLevelUp-sub000/pkg/engine"
	"github.com/lockcole/OpenLevelUp-sub000/pkg/engine/routing"
	"github.com/lockcole/OpenLevelUp-sub000/pkg/geo"
	"go.uber.org/zap"
)

type RoutingService struct {
	log    *zap.Logger
	engine RoutingEngine
}

func NewRoutingService(log *zap.Logger, engine RoutingEngine) *RoutingService {
	return &RoutingService{
		log:    log,
		engine: engine,
	}
}

type Route struct {
	Path     *routing.Path
	Polyline string
}

// ShortestPath returns the route with its encoded polyline.
func (rs *RoutingService) ShortestPath(req engine.RouteRequest) (Route, error) {
	path, err := rs.engine.Route(req)
	if err != nil {
		return Route{}, err
	}
	latLons := make([][]float64, len(path.Nodes))
	for i, n := range path.Nodes {
		latLons[i] = []float64{n.Coord.Lat, n.Coord.Lon}
	}
	return Route{
		Path:     path,
		Polyline: geo.PolylineFromCoords(latLons),
	}, nil
}

func (rs *RoutingService) Levels() []float64 {
	return rs.engine.Levels()
}

type GraphStats struct {
	Nodes      int
	Edges      int
	Areas      int
	Components int
	Levels     []float64
}

func (rs *RoutingService) GraphStats(avoid da.AvoidSet) (GraphStats, error) {
	g, err := rs.engine.Graph(avoid)
	if err != nil {
		return GraphStats{}, err
	}
	_, components := g.StronglyConnectedComponents()
	return GraphStats{
		Nodes:      g.NumberOfNodes(),
		Edges:      g.NumberOfEdges(),
		Areas:      g.NumberOfAreas(),
		Components: components,
		Levels:     g.Levels(),
	}, nil
}
