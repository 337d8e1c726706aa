package geo

import (
	"github.com/twpayne/go-polyline"
)

// PolylineFromCoords encodes [lat, lon] pairs with the encoded polyline algorithm.
func PolylineFromCoords(latLons [][]float64) string {
	return string(polyline.EncodeCoords(latLons))
}
