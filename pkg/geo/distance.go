package geo

import (
	"math"

	"github.com/lockcole/OpenLevelUp-sub000/pkg"
	"github.com/lockcole/OpenLevelUp-sub000/pkg/util"
)

// VerticalDistance is the cost model shared by edge weights and the A* heuristic:
// sqrt(planar^2 + (levelDelta*penalty)^2), planar distance in meters.
func VerticalDistance(latOne, lonOne, levelOne, latTwo, lonTwo, levelTwo, penalty float64) float64 {
	planar := PlanarDistance(latOne, lonOne, latTwo, lonTwo)
	vertical := (levelTwo - levelOne) * penalty
	return math.Sqrt(planar*planar + vertical*vertical)
}

// BoundingBoxAround returns the (minLat, minLon, maxLat, maxLon) box holding every point
// closer than radius meters to (lat, lon).
func BoundingBoxAround(lat, lon, radius float64) (float64, float64, float64, float64) {
	dLat := util.RadiansToDegree(radius / pkg.EARTH_RADIUS_METERS)
	cosLat := math.Cos(util.DegreeToRadians(lat))
	if cosLat < 1e-9 {
		return lat - dLat, -180, lat + dLat, 180
	}
	dLon := dLat / cosLat
	return lat - dLat, lon - dLon, lat + dLat, lon + dLon
}
