package usecases

import (
	da "github.com/lockcole/OpenLevelUp-sub000/pkg/datastructure"
	"github.com/lockcole/OpenLevelUp-sub000/pkg/engine"
	"github.com/lockcole/OpenLevelUp-sub000/pkg/engine/routing"
)

type RoutingEngine interface {
	Route(req engine.RouteRequest) (*routing.Path, error)
	Graph(avoid da.AvoidSet) (*da.Graph, error)
	Levels() []float64
}
