package controllers

import (
	"github.com/lockcole/OpenLevelUp-sub000/pkg/http/usecases"
)

type shortestPathRequest struct {
	StartLat   float64 `json:"start_lat" validate:"min=-90,max=90"`
	StartLon   float64 `json:"start_lon" validate:"min=-180,max=180"`
	StartLevel float64 `json:"start_level" validate:"min=-1000,max=1000"`
	EndLat     float64 `json:"end_lat" validate:"min=-90,max=90"`
	EndLon     float64 `json:"end_lon" validate:"min=-180,max=180"`
	EndLevel   float64 `json:"end_level" validate:"min=-1000,max=1000"`
	Avoid      string  `json:"avoid" validate:"max=64"`
	Normalize  bool    `json:"normalize"`
}

type pathNodeResponse struct {
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
	Level      float64 `json:"level"`
	Kind       string  `json:"kind,omitempty"`
	Transition string  `json:"transition,omitempty"`
	Name       string  `json:"name,omitempty"`
}

type shortestPathResponse struct {
	Cost     float64            `json:"cost"`
	Path     []pathNodeResponse `json:"path"`
	Polyline string             `json:"polyline"`
	Levels   []float64          `json:"levels"`
}

func NewShortestPathResponse(route usecases.Route) shortestPathResponse {
	path := route.Path
	nodes := make([]pathNodeResponse, len(path.Nodes))
	for i, n := range path.Nodes {
		nodes[i] = pathNodeResponse{
			Lat:   n.Coord.Lat,
			Lon:   n.Coord.Lon,
			Level: n.Level,
			Kind:  n.Kind.String(),
			Name:  n.Name,
		}
		if i > 0 {
			nodes[i].Transition = n.Transition.String()
		}
	}
	return shortestPathResponse{
		Cost:     path.Cost,
		Path:     nodes,
		Polyline: route.Polyline,
		Levels:   path.Levels(),
	}
}

type levelsResponse struct {
	Levels []float64 `json:"levels"`
}

type graphStatsResponse struct {
	Avoid      string    `json:"avoid"`
	Nodes      int       `json:"nodes"`
	Edges      int       `json:"edges"`
	Areas      int       `json:"areas"`
	Components int       `json:"strongly_connected_components"`
	Levels     []float64 `json:"levels"`
}

func NewGraphStatsResponse(avoid string, stats usecases.GraphStats) graphStatsResponse {
	return graphStatsResponse{
		Avoid:      avoid,
		Nodes:      stats.Nodes,
		Edges:      stats.Edges,
		Areas:      stats.Areas,
		Components: stats.Components,
		Levels:     stats.Levels,
	}
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
