package models

// GeoPoint represents a geographical point defined by its latitude and longitude.
type GeoPoint struct {
	Lat float64 // Lat is the latitude of the point, in decimal degrees.
	Lon float64 // Lon is the longitude of the point, in decimal degrees.
}
