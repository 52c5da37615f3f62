package models

// Marker represents a point of interest to be drawn on the map.
type Marker struct {
	Lat   float64 // Lat is the marker latitude, in decimal degrees.
	Lon   float64 // Lon is the marker longitude, in decimal degrees.
	Style string  // Style is the icon label understood by the rendering service.
}
