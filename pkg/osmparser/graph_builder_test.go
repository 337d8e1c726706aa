package osmparser

import (
	"testing"

	da "github.com/lockcole/OpenLevelUp-sub000/pkg/datastructure"
	"github.com/lockcole/OpenLevelUp-sub000/pkg/level"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestBuilder(t *testing.T) *GraphBuilder {
	log := zaptest.NewLogger(t)
	return NewGraphBuilder(DefaultBuilderConfig(), level.NewParser(level.DefaultConfig(), log), log)
}

func point(id int64, lat, lon float64, kv ...string) da.Element {
	return da.NewPointElement(id, da.NewCoordinate(lat, lon), da.NewTags(kv...))
}

func path(id int64, ids []int64, kv ...string) da.Element {
	return da.NewPathElement(id, ids, da.NewTags(kv...))
}

// two corridors on level 0 and 1 joined by stairs (2-3) and an elevator point (5)
func twoFloorElements() []da.Element {
	return []da.Element{
		point(1, 48.0000, 2.0000),
		point(2, 48.0001, 2.0000),
		point(3, 48.0001, 2.0001),
		point(4, 48.0000, 2.0001),
		point(5, 48.0000, 2.00005, "highway", "elevator", "level", "0;1"),
		path(10, []int64{1, 5, 2}, "highway", "corridor", "level", "0"),
		path(11, []int64{3, 4, 5}, "highway", "corridor", "level", "1"),
		path(12, []int64{2, 3}, "highway", "steps", "level", "0;1"),
	}
}

func countTransitions(g *da.Graph, kind da.TransitionKind) int {
	n := 0
	for u := 0; u < g.NumberOfNodes(); u++ {
		g.ForOutEdgesOf(da.Index(u), func(e da.Edge) {
			if e.Transition == kind {
				n++
			}
		})
	}
	return n
}

func TestBuildSingleLevelCorridor(t *testing.T) {
	b := newTestBuilder(t)
	elements := []da.Element{
		point(1, 48.0000, 2.0000),
		point(2, 48.0001, 2.0000),
		point(3, 48.0002, 2.0000),
		path(10, []int64{1, 2, 3}, "highway", "footway", "level", "0"),
	}

	g := b.Build(elements, da.NewAvoidSet())

	require.Equal(t, 3, g.NumberOfNodes())
	assert.Equal(t, 4, g.NumberOfEdges())
	assert.Equal(t, []float64{0}, g.Levels())
	for u := 0; u < g.NumberOfNodes(); u++ {
		n := g.GetNode(da.Index(u))
		assert.True(t, n.IsOnLevel(0))
		g.ForOutEdgesOf(da.Index(u), func(e da.Edge) {
			assert.InDelta(t, g.VerticalDistance(da.Index(u), e.To), e.Cost, 1e-9)
			assert.Equal(t, da.TRANSITION_NONE, e.Transition)
		})
	}
	assert.Equal(t, "1@0", g.GetNode(0).Name)
}

func TestBuildTransitions(t *testing.T) {
	testCases := []struct {
		name          string
		avoid         da.AvoidSet
		wantNodes     int
		wantStairs    int
		wantElevators int
	}{
		{"no avoidance", da.NewAvoidSet(), 6, 2, 2},
		{"avoid stairs", da.NewAvoidSet(da.TRANSITION_STAIRS), 6, 0, 2},
		{"avoid elevator", da.NewAvoidSet(da.TRANSITION_ELEVATOR), 6, 2, 0},
		{"avoid both", da.NewAvoidSet(da.TRANSITION_ELEVATOR, da.TRANSITION_STAIRS), 6, 0, 0},
	}

	b := newTestBuilder(t)
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := b.Build(twoFloorElements(), tc.avoid)
			assert.Equal(t, tc.wantNodes, g.NumberOfNodes())
			assert.Equal(t, tc.wantStairs, countTransitions(g, da.TRANSITION_STAIRS))
			assert.Equal(t, tc.wantElevators, countTransitions(g, da.TRANSITION_ELEVATOR))
			assert.Equal(t, []float64{0, 1}, g.Levels())
		})
	}
}

func TestBuildStairsInteriorNodesUseMidLevel(t *testing.T) {
	b := newTestBuilder(t)
	elements := []da.Element{
		point(1, 48.0000, 2.0000),
		point(2, 48.0001, 2.0000),
		point(3, 48.0002, 2.0000),
		point(4, 48.0003, 2.0000),
		path(10, []int64{1}, "highway", "corridor", "level", "0"),
		path(11, []int64{1, 2}, "highway", "corridor", "level", "0"),
		path(12, []int64{3, 4}, "highway", "corridor", "level", "2"),
		path(13, []int64{2, 5, 3}, "highway", "steps", "level", "0;2"),
		point(5, 48.00015, 2.0000),
	}

	g := b.Build(elements, da.NewAvoidSet())

	assert.Equal(t, []float64{0, 1, 2}, g.Levels())
	mid := g.NodesOnLevel(1)
	require.Len(t, mid, 1)
	assert.Equal(t, "5@1", g.GetNode(mid[0]).Name)
	assert.Len(t, g.GetEdges(mid[0]), 2)
}

func TestBuildElevatorWayLinksEntrances(t *testing.T) {
	b := newTestBuilder(t)
	elements := []da.Element{
		point(1, 48.0000, 2.0000, "door", "yes", "level", "0"),
		point(2, 48.0000, 2.0001, "entrance", "yes", "level", "1"),
		point(3, 48.0001, 2.0001, "level", "0"),
		point(4, 48.0001, 2.0002, "level", "1"),
		point(6, 48.0000, 2.00005),
		path(10, []int64{3, 1}, "highway", "corridor", "level", "0"),
		path(11, []int64{4, 2}, "highway", "corridor", "level", "1"),
		path(12, []int64{1, 6, 2, 1}, "highway", "elevator", "level", "0;1"),
	}

	g := b.Build(elements, da.NewAvoidSet())
	assert.Equal(t, 2, countTransitions(g, da.TRANSITION_ELEVATOR))
	assert.Equal(t, 4, g.NumberOfNodes())

	g = b.Build(elements, da.NewAvoidSet(da.TRANSITION_ELEVATOR))
	assert.Equal(t, 0, countTransitions(g, da.TRANSITION_ELEVATOR))
}

func TestBuildDirectionAndAccess(t *testing.T) {
	base := []da.Element{
		point(1, 48.0000, 2.0000),
		point(2, 48.0001, 2.0000),
	}
	testCases := []struct {
		name      string
		tags      []string
		wantEdges int
	}{
		{"both ways", []string{"highway", "footway", "level", "0"}, 2},
		{"oneway", []string{"highway", "footway", "level", "0", "oneway", "yes"}, 1},
		{"reverse oneway", []string{"highway", "footway", "level", "0", "oneway", "-1"}, 1},
		{"escalator forward", []string{"highway", "steps", "conveying", "forward", "level", "0"}, 1},
		{"private", []string{"highway", "footway", "level", "0", "access", "private"}, 0},
		{"customers", []string{"highway", "footway", "level", "0", "access", "customers"}, 2},
		{"not walkable", []string{"highway", "motorway", "level", "0"}, 0},
		{"no level", []string{"highway", "footway"}, 0},
	}

	b := newTestBuilder(t)
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			elements := append(append([]da.Element{}, base...), path(10, []int64{1, 2}, tc.tags...))
			g := b.Build(elements, da.NewAvoidSet())
			assert.Equal(t, tc.wantEdges, g.NumberOfEdges())
		})
	}
}

func TestBuildReverseOnewayDirection(t *testing.T) {
	b := newTestBuilder(t)
	elements := []da.Element{
		point(1, 48.0000, 2.0000),
		point(2, 48.0001, 2.0000),
		path(10, []int64{1, 2}, "highway", "footway", "level", "0", "oneway", "-1"),
	}
	g := b.Build(elements, da.NewAvoidSet())
	require.Equal(t, 2, g.NumberOfNodes())
	// node 0 is 1@0; its only edge must be incoming
	assert.Empty(t, g.GetEdges(0))
	require.Len(t, g.GetEdges(1), 1)
	assert.Equal(t, da.Index(0), g.GetEdges(1)[0].To)
}

func TestBuildRecordsAreas(t *testing.T) {
	b := newTestBuilder(t)
	elements := []da.Element{
		point(1, 48.0000, 2.0000),
		point(2, 48.0001, 2.0000),
		point(3, 48.0001, 2.0001),
		point(4, 48.0000, 2.0001),
		path(10, []int64{1, 2, 3, 4, 1}, "indoor", "room", "level", "0"),
		path(11, []int64{1, 2, 3, 4, 1}, "highway", "footway", "level", "0"),
		path(12, []int64{1, 2, 3, 4, 1}, "highway", "pedestrian", "area", "yes", "level", "0"),
	}

	g := b.Build(elements, da.NewAvoidSet())

	require.Equal(t, 2, g.NumberOfAreas())
	area := g.GetArea(0)
	assert.Equal(t, int64(10), area.ElementID)
	members, ok := area.MembersOnLevel(0)
	require.True(t, ok)
	assert.Len(t, members, 4)
	_, ok = area.MembersOnLevel(1)
	assert.False(t, ok)
	assert.ElementsMatch(t, []int{0, 1}, g.AreasOf(members[0]))
}

func TestBuildSkipsAreasOfInaccessibleRooms(t *testing.T) {
	testCases := []struct {
		name      string
		access    string
		wantAreas int
	}{
		{"private room", "private", 0},
		{"staff only room", "no", 0},
		{"customers room", "customers", 1},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := newTestBuilder(t)
			elements := append(twoFloorElements(),
				path(20, []int64{1, 2, 3, 4, 1}, "indoor", "room", "level", "0", "access", tc.access))

			g := b.Build(elements, da.NewAvoidSet())

			assert.Equal(t, tc.wantAreas, g.NumberOfAreas())
		})
	}
}

func TestBuildPrunesIsolatedNodes(t *testing.T) {
	b := newTestBuilder(t)
	elements := []da.Element{
		point(1, 48.0000, 2.0000, "level", "0"),
		point(2, 48.0001, 2.0000, "level", "0;1;2"),
		point(3, 48.0002, 2.0000),
		path(10, []int64{2, 3}, "highway", "footway", "level", "1"),
	}

	g := b.Build(elements, da.NewAvoidSet())

	assert.Equal(t, 2, g.NumberOfNodes())
	assert.Equal(t, []float64{1}, g.Levels())
	for u := 0; u < g.NumberOfNodes(); u++ {
		assert.NotEmpty(t, g.GetEdges(da.Index(u)))
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	b := newTestBuilder(t)
	first := b.Build(twoFloorElements(), da.NewAvoidSet())
	second := b.Build(twoFloorElements(), da.NewAvoidSet())

	require.Equal(t, first.NumberOfNodes(), second.NumberOfNodes())
	for u := 0; u < first.NumberOfNodes(); u++ {
		assert.True(t, first.GetNode(da.Index(u)).Equal(second.GetNode(da.Index(u))))
		assert.Equal(t, first.GetEdges(da.Index(u)), second.GetEdges(da.Index(u)))
	}
}
