package geo

import (
	"github.com/golang/geo/s2"

	"github.com/UnknownOlympus/mapsnap/internal/models"
)

// earthRadiusMeters is the mean earth radius used to scale angular distances.
const earthRadiusMeters = 6371000.0

// Distance returns the great-circle distance between two geographical points,
// in meters, on a sphere with the mean earth radius.
func Distance(point1, point2 models.GeoPoint) float64 {
	from := s2.LatLngFromDegrees(point1.Lat, point1.Lon)
	to := s2.LatLngFromDegrees(point2.Lat, point2.Lon)

	return from.Distance(to).Radians() * earthRadiusMeters
}
