package staticmap

import (
	"math"

	"github.com/UnknownOlympus/mapsnap/internal/geo"
	"github.com/UnknownOlympus/mapsnap/internal/models"
)

// noiseBound delimits the closed near-origin band [0, 0.9] on both axes.
// Geocoders that fail quietly tend to emit coordinates in this band, so
// markers inside it never contribute to the derived view.
const noiseBound = 0.9

// resolveCenterAndRadius drops noise markers, spans the remaining ones with
// a bounding box and returns the great-circle midpoint of the box corners
// together with the bounding radius in meters. usable is false when no
// marker survives the filter.
func resolveCenterAndRadius(markers []models.Marker) (center models.GeoPoint, radius float64, usable bool) {
	kept := make([]models.Marker, 0, len(markers))
	for _, marker := range markers {
		if isNoise(marker) {
			continue
		}
		kept = append(kept, marker)
	}

	if len(kept) == 0 {
		return models.GeoPoint{}, 0, false
	}

	// Plain per-axis extremes; a set crossing the antimeridian spans the
	// long way around.
	southwest := models.GeoPoint{Lat: kept[0].Lat, Lon: kept[0].Lon}
	northeast := southwest
	for _, marker := range kept[1:] {
		southwest.Lat = math.Min(southwest.Lat, marker.Lat)
		southwest.Lon = math.Min(southwest.Lon, marker.Lon)
		northeast.Lat = math.Max(northeast.Lat, marker.Lat)
		northeast.Lon = math.Max(northeast.Lon, marker.Lon)
	}

	center = geo.Midpoint(southwest, northeast)

	return center, geo.Distance(southwest, center), true
}

// isNoise reports whether the marker sits in the near-origin band.
func isNoise(marker models.Marker) bool {
	return marker.Lat >= 0 && marker.Lat <= noiseBound &&
		marker.Lon >= 0 && marker.Lon <= noiseBound
}
