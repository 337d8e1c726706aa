package pkg

const (
	INF_WEIGHT float64 = 1e15

	// LEVEL_PENALTY_METERS scales one level of height difference into planar meters.
	LEVEL_PENALTY_METERS = 2.5

	EARTH_RADIUS_METERS = 6371008.8

	// MAX_LEVEL_ABS bounds both ends of a level interval; wider intervals are rejected.
	MAX_LEVEL_ABS = 1000
)

// osm keys used while classifying indoor elements
const (
	TAG_LEVEL            = "level"
	TAG_REPEAT_ON        = "repeat_on"
	TAG_MIN_LEVEL        = "min_level"
	TAG_MAX_LEVEL        = "max_level"
	TAG_FLOOR_RANGE      = "buildingpart:verticalpassage:floorrange"
	TAG_TYPE             = "type"
	TAG_HIGHWAY          = "highway"
	TAG_INDOOR           = "indoor"
	TAG_BUILDINGPART     = "buildingpart"
	TAG_VERTICAL_PASSAGE = "buildingpart:verticalpassage"
	TAG_AREA             = "area"
	TAG_ACCESS           = "access"
	TAG_ONEWAY           = "oneway"
	TAG_CONVEYING        = "conveying"
	TAG_DOOR             = "door"
	TAG_ENTRANCE         = "entrance"
	TAG_STAIRS           = "stairs"
	TAG_ELEVATOR         = "elevator"
	TAG_ESCALATOR        = "escalator"
)

const (
	RELATION_TYPE_LEVEL = "level"
)
