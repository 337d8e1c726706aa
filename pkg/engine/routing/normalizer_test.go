package routing

import (
	"testing"

	da "github.com/lockcole/OpenLevelUp-sub000/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// square room 1-2-3-4 with a corridor leaving corner 3 to the east
func roomElements() []da.Element {
	return []da.Element{
		point(1, 48.0000, 2.0000),
		point(2, 48.0010, 2.0000),
		point(3, 48.0010, 2.0010),
		point(4, 48.0000, 2.0010),
		point(5, 48.0010, 2.0020),
		point(6, 48.0010, 2.0030),
		path(10, []int64{1, 2, 3, 4, 1}, "indoor", "room", "level", "0"),
		path(11, []int64{3, 5, 6}, "highway", "corridor", "level", "0"),
	}
}

func TestAnchorUsesContainingArea(t *testing.T) {
	r := newTestRouter(t, roomElements(), da.NewAvoidSet())

	a, ok := r.ResolveAnchor(da.NewCoordinate(48.0001, 2.0001), 0)
	require.True(t, ok)
	assert.Equal(t, 0, a.Area)
	assert.Equal(t, "1@0", r.GetGraph().GetNode(a.Node).Name)

	a, ok = r.ResolveAnchor(da.NewCoordinate(48.0011, 2.0029), 0)
	require.True(t, ok)
	assert.Equal(t, -1, a.Area)
	assert.Equal(t, "6@0", r.GetGraph().GetNode(a.Node).Name)
}

func TestNormalize(t *testing.T) {
	r := newTestRouter(t, roomElements(), da.NewAvoidSet())
	start := da.NewCoordinate(48.0001, 2.0001)
	end := da.NewCoordinate(48.0010, 2.0030)

	raw, err := r.ShortestPath(start, 0, end, 0)
	require.NoError(t, err)
	require.Len(t, raw.Nodes, 5)

	p, err := r.Route(Query{Start: start, StartLevel: 0, End: end, EndLevel: 0, Normalize: true})
	require.NoError(t, err)

	names := make([]string, 0, len(p.Nodes))
	for _, n := range p.Nodes[1:] {
		names = append(names, n.Name)
	}
	require.Len(t, p.Nodes, 5)
	assert.True(t, p.Nodes[0].IsSynthetic())
	assert.Equal(t, start, p.Nodes[0].Coord)
	assert.Equal(t, []string{"1@0", "3@0", "5@0", "6@0"}, names)
	assert.Equal(t, raw.Cost, p.Cost)
}

func TestNormalizeKeepsPathsOutsideAreas(t *testing.T) {
	r := newTestRouter(t, corridorElements(), da.NewAvoidSet())
	start := da.NewCoordinate(48.0000, 2.0000)
	end := da.NewCoordinate(48.0004, 2.0003)

	raw, err := r.ShortestPath(start, 0, end, 0)
	require.NoError(t, err)
	p := r.Normalize(raw, start, 0, end, 0)
	assert.Equal(t, raw.Nodes, p.Nodes)
	assert.Nil(t, r.Normalize(nil, start, 0, end, 0))
}
