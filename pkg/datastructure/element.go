package datastructure

type ElementType uint8

const (
	POINT ElementType = iota
	PATH
	GROUP
)

func (t ElementType) String() string {
	switch t {
	case POINT:
		return "point"
	case PATH:
		return "path"
	case GROUP:
		return "group"
	default:
		return "unknown"
	}
}

// Membership is the relation a point belongs to, with the relation's own tags.
type Membership struct {
	RelationID int64
	Tags       Tags
}

// Element is a read-only snapshot of one map object. Points carry Coord, paths carry
// the ordered ids of their member points in NodeIDs.
type Element struct {
	Type        ElementType
	ID          int64
	Coord       Coordinate
	NodeIDs     []int64
	Tags        Tags
	Memberships []Membership
}

func NewPointElement(id int64, coord Coordinate, tags Tags, memberships ...Membership) Element {
	return Element{
		Type:        POINT,
		ID:          id,
		Coord:       coord,
		Tags:        tags,
		Memberships: memberships,
	}
}

func NewPathElement(id int64, nodeIDs []int64, tags Tags) Element {
	return Element{
		Type:    PATH,
		ID:      id,
		NodeIDs: nodeIDs,
		Tags:    tags,
	}
}

func NewGroupElement(id int64, tags Tags) Element {
	return Element{
		Type: GROUP,
		ID:   id,
		Tags: tags,
	}
}

// IsClosed reports whether the path is a ring (first member repeated as last).
func (e *Element) IsClosed() bool {
	n := len(e.NodeIDs)
	return e.Type == PATH && n >= 4 && e.NodeIDs[0] == e.NodeIDs[n-1]
}
