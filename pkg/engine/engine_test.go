package engine

import (
	"context"
	"sync"
	"testing"

	da "github.com/lockcole/OpenLevelUp-sub000/pkg/datastructure"
	"github.com/lockcole/OpenLevelUp-sub000/pkg/engine/routing"
	"github.com/lockcole/OpenLevelUp-sub000/pkg/metrics"
	"github.com/lockcole/OpenLevelUp-sub000/pkg/util"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func point(id int64, lat, lon float64, kv ...string) da.Element {
	return da.NewPointElement(id, da.NewCoordinate(lat, lon), da.NewTags(kv...))
}

func path(id int64, ids []int64, kv ...string) da.Element {
	return da.NewPathElement(id, ids, da.NewTags(kv...))
}

// two floors joined by an elevator at point 5 and stairs between 2 and 3
func buildingElements() []da.Element {
	return []da.Element{
		point(1, 48.0000, 2.0000),
		point(2, 48.0001, 2.0000),
		point(3, 48.0001, 2.0001),
		point(4, 48.0000, 2.0001),
		point(5, 48.0000, 2.00005, "highway", "elevator", "level", "0;1"),
		point(6, 48.0005, 2.0005, "level", "3"),
		path(10, []int64{1, 5, 2}, "highway", "corridor", "level", "0"),
		path(11, []int64{3, 4, 5}, "highway", "corridor", "level", "1"),
		path(12, []int64{2, 3}, "highway", "steps", "level", "0;1"),
		da.NewGroupElement(20, da.NewTags("type", "level", "level", "7")),
	}
}

func newTestEngine(t *testing.T) (*Engine, *metrics.Registry) {
	reg := metrics.NewRegistry()
	e, err := NewEngine(buildingElements(), DefaultConfig(), reg, zaptest.NewLogger(t))
	require.NoError(t, err)
	return e, reg
}

func TestLevels(t *testing.T) {
	e, _ := newTestEngine(t)
	assert.Equal(t, []float64{0, 1, 3}, e.Levels())
	assert.Equal(t, 10, e.NumberOfElements())
}

func TestRouteWithAvoidance(t *testing.T) {
	e, reg := newTestEngine(t)
	q := routing.NewQuery(da.NewCoordinate(48.0001, 2.0000), 0, da.NewCoordinate(48.0001, 2.0001), 1)

	testCases := []struct {
		name           string
		avoid          da.AvoidSet
		wantTransition da.TransitionKind
		wantErr        error
	}{
		{"stairs are shortest", da.NewAvoidSet(), da.TRANSITION_STAIRS, nil},
		{"elevator when stairs avoided", da.NewAvoidSet(da.TRANSITION_STAIRS), da.TRANSITION_ELEVATOR, nil},
		{"no connector left", da.NewAvoidSet(da.TRANSITION_STAIRS, da.TRANSITION_ELEVATOR), da.TRANSITION_NONE, routing.ErrNoRoute},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := e.Route(RouteRequest{Query: q, Avoid: tc.avoid})
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			found := false
			for _, n := range p.Nodes {
				if n.Transition == tc.wantTransition {
					found = true
				}
			}
			assert.True(t, found)
		})
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(reg.RouteQueriesTotal.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(reg.RouteQueriesTotal.WithLabelValues("no_route")))
}

func TestRouterIsCachedPerAvoidSet(t *testing.T) {
	e, reg := newTestEngine(t)

	first, err := e.Router(da.NewAvoidSet())
	require.NoError(t, err)
	second, err := e.Router(da.NewAvoidSet())
	require.NoError(t, err)
	other, err := e.Router(da.NewAvoidSet(da.TRANSITION_ELEVATOR))
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.NotSame(t, first, other)
	assert.Equal(t, 1.0, testutil.ToFloat64(reg.GraphCacheTotal.WithLabelValues("hit")))
	assert.Equal(t, 2.0, testutil.ToFloat64(reg.GraphCacheTotal.WithLabelValues("miss")))
}

func TestConcurrentRouterCallsShareOneGraph(t *testing.T) {
	e, reg := newTestEngine(t)

	var wg sync.WaitGroup
	routers := make([]*routing.Router, 8)
	for i := range routers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			routers[i], _ = e.Router(da.NewAvoidSet(da.TRANSITION_STAIRS))
		}(i)
	}
	wg.Wait()

	require.NotNil(t, routers[0])
	for _, r := range routers {
		assert.Same(t, routers[0], r)
	}
	assert.Equal(t, 1.0, testutil.ToFloat64(reg.GraphBuildsTotal.WithLabelValues("stairs")))
}

func TestPrewarm(t *testing.T) {
	e, reg := newTestEngine(t)
	avoidSets := []da.AvoidSet{
		da.NewAvoidSet(),
		da.NewAvoidSet(da.TRANSITION_ELEVATOR),
		da.NewAvoidSet(da.TRANSITION_STAIRS, da.TRANSITION_ESCALATOR),
	}

	require.NoError(t, e.Prewarm(context.Background(), avoidSets))
	for _, a := range avoidSets {
		assert.True(t, e.cache.Contains(a))
	}
	assert.Equal(t, 1.0, testutil.ToFloat64(reg.GraphBuildsTotal.WithLabelValues("none")))
	g, err := e.Graph(da.NewAvoidSet())
	require.NoError(t, err)
	assert.Equal(t, 6, g.NumberOfNodes())
}

func TestFailedBuildIsReportedAndNotCached(t *testing.T) {
	e, _ := newTestEngine(t)
	build := e.build
	e.build = func(elements []da.Element, avoid da.AvoidSet) *da.Graph {
		panic("corrupt element set")
	}

	r, err := e.Router(da.NewAvoidSet())
	require.Error(t, err)
	assert.Nil(t, r)
	assert.ErrorIs(t, err, util.ErrInternalServerError)
	assert.False(t, e.cache.Contains(da.NewAvoidSet()))

	_, err = e.Route(RouteRequest{
		Query: routing.NewQuery(da.NewCoordinate(48, 2), 0, da.NewCoordinate(48, 2), 0),
		Avoid: da.NewAvoidSet(),
	})
	assert.ErrorIs(t, err, util.ErrInternalServerError)

	assert.Error(t, e.Prewarm(context.Background(), []da.AvoidSet{da.NewAvoidSet()}))

	e.build = build
	r, err = e.Router(da.NewAvoidSet())
	require.NoError(t, err)
	assert.NotNil(t, r)
}
