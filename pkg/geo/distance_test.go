package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanarDistance(t *testing.T) {
	testCases := []struct {
		name                   string
		latA, lonA, latB, lonB float64
		want                   float64
		delta                  float64
	}{
		{
			name: "same point",
			latA: 48.8566, lonA: 2.3522, latB: 48.8566, lonB: 2.3522,
			want: 0, delta: 1e-9,
		},
		{
			name: "one millidegree of latitude",
			latA: 48.0, lonA: 2.0, latB: 48.001, lonB: 2.0,
			want: 111.195, delta: 0.05,
		},
		{
			name: "one millidegree of longitude on the equator",
			latA: 0, lonA: 0, latB: 0, lonB: 0.001,
			want: 111.195, delta: 0.05,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got := PlanarDistance(tt.latA, tt.lonA, tt.latB, tt.lonB)
			assert.InDelta(t, tt.want, got, tt.delta)
			assert.InDelta(t, got, PlanarDistance(tt.latB, tt.lonB, tt.latA, tt.lonA), 1e-9)
		})
	}
}

func TestVerticalDistance(t *testing.T) {
	// same coordinate, two levels apart: only the level penalty counts
	got := VerticalDistance(48.0, 2.0, 0, 48.0, 2.0, 2, 2.5)
	assert.InDelta(t, 5.0, got, 1e-9)

	planar := PlanarDistance(48.0, 2.0, 48.0001, 2.0)
	got = VerticalDistance(48.0, 2.0, 1, 48.0001, 2.0, 0, 2.5)
	assert.InDelta(t, math.Sqrt(planar*planar+2.5*2.5), got, 1e-9)

	flat := VerticalDistance(48.0, 2.0, 1, 48.0001, 2.0, 1, 2.5)
	assert.InDelta(t, planar, flat, 1e-9)
}

func TestBoundingBoxAround(t *testing.T) {
	minLat, minLon, maxLat, maxLon := BoundingBoxAround(48.0, 2.0, 100)
	assert.Less(t, minLat, 48.0)
	assert.Greater(t, maxLat, 48.0)
	assert.Less(t, minLon, 2.0)
	assert.Greater(t, maxLon, 2.0)

	// a point 100m north lies on the box edge
	assert.InDelta(t, 100, PlanarDistance(48.0, 2.0, maxLat, 2.0), 0.01)
	// a point 100m east lies on the box edge
	assert.InDelta(t, 100, PlanarDistance(48.0, 2.0, 48.0, maxLon), 0.05)
	assert.InDelta(t, maxLon-2.0, 2.0-minLon, 1e-12)
}

func TestPolylineFromCoords(t *testing.T) {
	got := PolylineFromCoords([][]float64{{38.5, -120.2}, {40.7, -120.95}, {43.252, -126.453}})
	assert.Equal(t, "_p~iF~ps|U_ulLnnqC_mqNvxq`@", got)
	assert.Equal(t, "", PolylineFromCoords(nil))
}
