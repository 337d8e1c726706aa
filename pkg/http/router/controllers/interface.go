package controllers

import (
	da "github.com/lockcole/OpenLevelUp-sub000/pkg/datastructure"
	"github.com/lockcole/OpenLevelUp-sub000/pkg/engine"
	"github.com/lockcole/OpenLevelUp-sub000/pkg/http/usecases"
)

type RoutingService interface {
	ShortestPath(req engine.RouteRequest) (usecases.Route, error)
	Levels() []float64
	GraphStats(avoid da.AvoidSet) (usecases.GraphStats, error)
}
