package osmparser

import (
	"github.com/lockcole/OpenLevelUp-sub000/pkg"
	da "github.com/lockcole/OpenLevelUp-sub000/pkg/datastructure"
)

// BuilderConfig is the tag classification the graph builder works with. It is read-only
// once the builder is created and may be shared by concurrent builds.
type BuilderConfig struct {
	// way-type key -> accepted values. A nil value set accepts any value.
	WalkableTags map[string]map[string]struct{}
	// indoor values that make a closed walkable way an area even without area=yes
	AreaIndoorValues map[string]struct{}
	AccessAllowed    map[string]struct{}
	LevelPenalty     float64
}

func DefaultBuilderConfig() BuilderConfig {
	return BuilderConfig{
		WalkableTags: map[string]map[string]struct{}{
			pkg.TAG_HIGHWAY: {
				"footway":       struct{}{},
				"pedestrian":    struct{}{},
				"path":          struct{}{},
				"steps":         struct{}{},
				"corridor":      struct{}{},
				"elevator":      struct{}{},
				"service":       struct{}{},
				"living_street": struct{}{},
				"residential":   struct{}{},
				"unclassified":  struct{}{},
				"track":         struct{}{},
				"cycleway":      struct{}{},
				"platform":      struct{}{},
			},
			pkg.TAG_INDOOR: {
				"corridor": struct{}{},
				"area":     struct{}{},
				"room":     struct{}{},
			},
			pkg.TAG_BUILDINGPART: {
				"corridor":        struct{}{},
				"hall":            struct{}{},
				"room":            struct{}{},
				"verticalpassage": struct{}{},
			},
			"railway": {
				"platform": struct{}{},
			},
			"public_transport": {
				"platform": struct{}{},
			},
		},
		AreaIndoorValues: map[string]struct{}{
			"area": struct{}{},
			"room": struct{}{},
		},
		AccessAllowed: map[string]struct{}{
			"yes":         struct{}{},
			"permissive":  struct{}{},
			"destination": struct{}{},
			"customers":   struct{}{},
		},
		LevelPenalty: pkg.LEVEL_PENALTY_METERS,
	}
}

func (c *BuilderConfig) isAccessible(tags da.Tags) bool {
	access, ok := tags.Get(pkg.TAG_ACCESS)
	if !ok {
		return true
	}
	_, allowed := c.AccessAllowed[access]
	return allowed
}

func (c *BuilderConfig) isWalkable(tags da.Tags) bool {
	for key, values := range c.WalkableTags {
		v, ok := tags.Get(key)
		if !ok {
			continue
		}
		if values == nil {
			return true
		}
		if _, accepted := values[v]; accepted {
			return true
		}
	}
	return false
}

func (c *BuilderConfig) isArea(e *da.Element) bool {
	if !e.IsClosed() {
		return false
	}
	if e.Tags.Is(pkg.TAG_AREA, "yes") {
		return true
	}
	_, ok := c.AreaIndoorValues[e.Tags.Value(pkg.TAG_INDOOR)]
	return ok
}

func isElevator(tags da.Tags) bool {
	return tags.Is(pkg.TAG_HIGHWAY, "elevator") ||
		tags.Is(pkg.TAG_VERTICAL_PASSAGE, "elevator") ||
		tags.Is(pkg.TAG_INDOOR, "elevator")
}

func isEscalator(tags da.Tags) bool {
	if tags.Is(pkg.TAG_HIGHWAY, "escalator") || tags.Is(pkg.TAG_VERTICAL_PASSAGE, "escalator") {
		return true
	}
	conveying, ok := tags.Get(pkg.TAG_CONVEYING)
	return ok && conveying != "no"
}

func isStairs(tags da.Tags) bool {
	return tags.Is(pkg.TAG_HIGHWAY, "steps") ||
		tags.Is(pkg.TAG_STAIRS, "yes") ||
		tags.Is(pkg.TAG_VERTICAL_PASSAGE, "stairway", "stairs", "steps")
}

// transitionKind classifies a way; the first match of elevator, escalator, stairs wins.
func transitionKind(tags da.Tags) da.TransitionKind {
	switch {
	case isElevator(tags):
		return da.TRANSITION_ELEVATOR
	case isEscalator(tags):
		return da.TRANSITION_ESCALATOR
	case isStairs(tags):
		return da.TRANSITION_STAIRS
	default:
		return da.TRANSITION_NONE
	}
}

func isDoor(tags da.Tags) bool {
	if tags.HasKey(pkg.TAG_ENTRANCE) {
		return true
	}
	door, ok := tags.Get(pkg.TAG_DOOR)
	return ok && door != "no"
}

const (
	FORWARD  = 1
	BACKWARD = -1
	BOTH     = 0
)

// direction returns FORWARD, BACKWARD or BOTH from oneway and conveying tags.
func direction(tags da.Tags) int {
	switch tags.Value(pkg.TAG_ONEWAY) {
	case "yes", "true", "1":
		return FORWARD
	case "-1", "reverse":
		return BACKWARD
	}
	switch tags.Value(pkg.TAG_CONVEYING) {
	case "forward":
		return FORWARD
	case "backward":
		return BACKWARD
	}
	return BOTH
}
