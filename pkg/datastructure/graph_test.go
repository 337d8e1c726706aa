package datastructure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraphArenaBuildPrunesIsolatedNodes(t *testing.T) {
	a := NewGraphArena()
	placeholder := a.AddNode(NodeIdentity{Coord: NewCoordinate(1, 1), Name: "1"})
	n0 := a.AddNode(NewNodeIdentity(NewCoordinate(1, 1), 0, NODE_KIND_NONE, "1@0"))
	isolated := a.AddNode(NewNodeIdentity(NewCoordinate(2, 2), 0, NODE_KIND_NONE, "2@0"))
	n1 := a.AddNode(NewNodeIdentity(NewCoordinate(3, 3), 0, NODE_KIND_DOOR, "3@0"))
	sink := a.AddNode(NewNodeIdentity(NewCoordinate(4, 4), 1, NODE_KIND_NONE, "4@1"))

	a.AddEdge(n0, n1, 5, TRANSITION_NONE)
	a.AddEdge(n1, n0, 5, TRANSITION_NONE)
	a.AddEdge(n1, sink, 7, TRANSITION_STAIRS)

	areas := []Area{{
		ElementID: 99,
		Members: []AreaMember{
			{PointID: 1, Nodes: map[float64]Index{0: n0}},
			{PointID: 2, Nodes: map[float64]Index{0: isolated}},
		},
	}}

	g := a.Build(areas, 2.5)

	// placeholder and isolated are gone, the one-way sink survives
	require.Equal(t, 3, g.NumberOfNodes())
	assert.Equal(t, 3, g.NumberOfEdges())
	assert.Equal(t, "1@0", g.GetNode(0).Name)
	assert.Equal(t, "3@0", g.GetNode(1).Name)
	assert.Equal(t, "4@1", g.GetNode(2).Name)
	assert.Equal(t, []Edge{{To: 0, Cost: 5}, {To: 2, Cost: 7, Transition: TRANSITION_STAIRS}}, g.GetEdges(1))
	assert.Empty(t, g.GetEdges(2))
	_ = placeholder

	require.Equal(t, 1, g.NumberOfAreas())
	_, ok := g.GetArea(0).MembersOnLevel(0)
	assert.False(t, ok, "pruned member makes the area undefined on its level")
	assert.Equal(t, []int{0}, g.AreasOf(0))
	assert.Equal(t, []float64{0, 1}, g.Levels())
	assert.Equal(t, []Index{0, 1}, g.NodesOnLevel(0))
}

func TestGraphEqual(t *testing.T) {
	a := NewGraphArena()
	u := a.AddNode(NewNodeIdentity(NewCoordinate(1, 1), 0, NODE_KIND_NONE, "1@0"))
	v := a.AddNode(NewNodeIdentity(NewCoordinate(1, 1), 0, NODE_KIND_NONE, "1@0"))
	w := a.AddNode(NewNodeIdentity(NewCoordinate(2, 2), 0, NODE_KIND_NONE, "2@0"))
	a.AddEdge(u, w, 1, TRANSITION_NONE)
	a.AddEdge(v, w, 1, TRANSITION_NONE)
	a.AddEdge(w, u, 1, TRANSITION_NONE)
	g := a.Build(nil, 2.5)

	assert.True(t, g.Equal(0, 1), "same identity and neighbor count")
	assert.False(t, g.Equal(0, 2))

	synthetic := NewNodeIdentity(NewCoordinate(1, 1), 0, NODE_KIND_NONE, "1@0")
	assert.True(t, g.EqualIdentity(0, synthetic, 1))
	assert.False(t, g.EqualIdentity(0, synthetic, 0))
}

func TestAvoidSet(t *testing.T) {
	testCases := []struct {
		name    string
		in      string
		want    []TransitionKind
		str     string
		wantErr bool
	}{
		{name: "empty", in: "", want: []TransitionKind{}, str: ""},
		{name: "two kinds", in: "elevator, stairs", want: []TransitionKind{TRANSITION_STAIRS, TRANSITION_ELEVATOR}, str: "stairs,elevator"},
		{name: "aliases", in: "lift,steps,escalator", want: []TransitionKind{TRANSITION_STAIRS, TRANSITION_ESCALATOR, TRANSITION_ELEVATOR}, str: "stairs,escalator,elevator"},
		{name: "unknown", in: "ramp", wantErr: true},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAvoidSet(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Kinds())
			assert.Equal(t, tt.str, got.String())
			assert.False(t, got.Has(TRANSITION_NONE))
		})
	}
}

func TestTags(t *testing.T) {
	tags := NewTags("highway", "steps", "level", "0;1")
	assert.True(t, tags.HasKey("level"))
	assert.False(t, tags.HasKey("indoor"))
	v, ok := tags.Get("level")
	assert.True(t, ok)
	assert.Equal(t, "0;1", v)
	assert.Equal(t, "", tags.Value("indoor"))
	assert.True(t, tags.Is("highway", "footway", "steps"))
	assert.False(t, tags.Is("indoor", ""))
}

func TestStronglyConnectedComponents(t *testing.T) {
	a := NewGraphArena()
	n0 := a.AddNode(NewNodeIdentity(NewCoordinate(1, 1), 0, NODE_KIND_NONE, "1@0"))
	n1 := a.AddNode(NewNodeIdentity(NewCoordinate(2, 2), 0, NODE_KIND_NONE, "2@0"))
	n2 := a.AddNode(NewNodeIdentity(NewCoordinate(3, 3), 0, NODE_KIND_NONE, "3@0"))
	n3 := a.AddNode(NewNodeIdentity(NewCoordinate(4, 4), 1, NODE_KIND_NONE, "4@1"))
	a.AddEdge(n0, n1, 1, TRANSITION_NONE)
	a.AddEdge(n1, n2, 1, TRANSITION_NONE)
	a.AddEdge(n2, n0, 1, TRANSITION_NONE)
	a.AddEdge(n2, n3, 1, TRANSITION_STAIRS)
	g := a.Build(nil, 2.5)

	comp, count := g.StronglyConnectedComponents()
	require.Equal(t, 2, count)
	assert.Equal(t, comp[0], comp[1])
	assert.Equal(t, comp[1], comp[2])
	assert.NotEqual(t, comp[2], comp[3])
}
