package routing

import "errors"

var (
	ErrNoStartNode  = errors.New("no graph node near the start point on its level")
	ErrNoEndNode    = errors.New("no graph node near the end point on its level")
	ErrNoRoute      = errors.New("no route between start and end")
	ErrInvalidQuery = errors.New("invalid route query")
)
