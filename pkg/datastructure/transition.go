package datastructure

import (
	"fmt"
	"strings"
)

type TransitionKind uint8

const (
	TRANSITION_NONE TransitionKind = iota
	TRANSITION_STAIRS
	TRANSITION_ESCALATOR
	TRANSITION_ELEVATOR
)

func (k TransitionKind) String() string {
	switch k {
	case TRANSITION_STAIRS:
		return "stairs"
	case TRANSITION_ESCALATOR:
		return "escalator"
	case TRANSITION_ELEVATOR:
		return "elevator"
	default:
		return "none"
	}
}

func ParseTransitionKind(s string) (TransitionKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "stairs", "steps":
		return TRANSITION_STAIRS, nil
	case "escalator":
		return TRANSITION_ESCALATOR, nil
	case "elevator", "lift":
		return TRANSITION_ELEVATOR, nil
	case "", "none":
		return TRANSITION_NONE, nil
	}
	return TRANSITION_NONE, fmt.Errorf("unknown transition kind %q", s)
}

// AvoidSet is the set of transition kinds a route must not use. The zero value avoids nothing.
type AvoidSet uint8

func NewAvoidSet(kinds ...TransitionKind) AvoidSet {
	var a AvoidSet
	for _, k := range kinds {
		a = a.With(k)
	}
	return a
}

// ParseAvoidSet reads a comma separated list such as "stairs,elevator".
func ParseAvoidSet(s string) (AvoidSet, error) {
	var a AvoidSet
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		k, err := ParseTransitionKind(part)
		if err != nil {
			return 0, err
		}
		a = a.With(k)
	}
	return a, nil
}

func (a AvoidSet) With(k TransitionKind) AvoidSet {
	if k == TRANSITION_NONE {
		return a
	}
	return a | 1<<k
}

func (a AvoidSet) Has(k TransitionKind) bool {
	if k == TRANSITION_NONE {
		return false
	}
	return a&(1<<k) != 0
}

func (a AvoidSet) Kinds() []TransitionKind {
	kinds := make([]TransitionKind, 0, 3)
	for _, k := range []TransitionKind{TRANSITION_STAIRS, TRANSITION_ESCALATOR, TRANSITION_ELEVATOR} {
		if a.Has(k) {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

func (a AvoidSet) String() string {
	kinds := a.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return strings.Join(names, ",")
}

type NodeKind uint8

const (
	NODE_KIND_NONE NodeKind = iota
	NODE_KIND_DOOR
)

func (k NodeKind) String() string {
	if k == NODE_KIND_DOOR {
		return "door"
	}
	return ""
}
