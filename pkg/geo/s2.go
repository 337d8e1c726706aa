package geo

import (
	"github.com/golang/geo/s2"
	"github.com/lockcole/OpenLevelUp-sub000/pkg"
)

// PlanarDistance returns the great-circle distance in meters between two points.
func PlanarDistance(latOne, lonOne, latTwo, lonTwo float64) float64 {
	a := s2.LatLngFromDegrees(latOne, lonOne)
	b := s2.LatLngFromDegrees(latTwo, lonTwo)
	return a.Distance(b).Radians() * pkg.EARTH_RADIUS_METERS
}
