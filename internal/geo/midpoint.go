// Package geo provides the great-circle primitives used to derive a map view
// from a set of coordinates: spherical midpoints, surface distances and
// longitude normalization.
package geo

import (
	"math"

	"github.com/UnknownOlympus/mapsnap/internal/models"
)

// Midpoint returns the great-circle midpoint between two geographical points.
//
// The midpoint is computed on a sphere: both points are converted to radians,
// the second point is projected into the reference frame of the first
// (Bx, By), and the resulting latitude and longitude are recovered with
// atan2. The returned longitude is normalized into the (-180, 180] interval.
func Midpoint(point1, point2 models.GeoPoint) models.GeoPoint {
	lat1 := radians(point1.Lat)
	lon1 := radians(point1.Lon)
	lat2 := radians(point2.Lat)
	deltaLon := radians(point2.Lon) - radians(point1.Lon)

	bx := math.Cos(lat2) * math.Cos(deltaLon)
	by := math.Cos(lat2) * math.Sin(deltaLon)

	lat3 := math.Atan2(
		math.Sin(lat1)+math.Sin(lat2),
		math.Sqrt((math.Cos(lat1)+bx)*(math.Cos(lat1)+bx)+by*by),
	)
	lon3 := lon1 + math.Atan2(by, math.Cos(lat1)+bx)

	return models.GeoPoint{
		Lat: degrees(lat3),
		Lon: NormalizeLon(degrees(lon3)),
	}
}

// NormalizeLon wraps a longitude in degrees into the (-180, 180] interval.
func NormalizeLon(lon float64) float64 {
	for lon > 180 {
		lon -= 360
	}
	for lon <= -180 {
		lon += 360
	}

	return lon
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
