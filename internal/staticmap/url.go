package staticmap

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/UnknownOlympus/mapsnap/internal/models"
)

// buildURL assembles the final URL by hand. The rendering service expects
// raw "," and "|" separators and a fixed parameter order, so the query
// string must not go through url.Values encoding.
func buildURL(
	baseURL string,
	center models.GeoPoint,
	zoom int,
	size models.Size,
	markers []models.Marker,
	maptype string,
) string {
	sections := make([]string, 0, len(markers))
	for _, marker := range markers {
		sections = append(sections, FormatMarker(marker))
	}

	return fmt.Sprintf("%s?center=%s,%s&zoom=%d&size=%dx%d&markers=%s&maptype=%s",
		baseURL,
		formatCoord(center.Lat),
		formatCoord(center.Lon),
		zoom,
		size.Width,
		size.Height,
		strings.Join(sections, "|"),
		maptype,
	)
}

// FormatMarker renders a marker as the "lat,lon,style" wire triple.
func FormatMarker(marker models.Marker) string {
	return formatCoord(marker.Lat) + "," + formatCoord(marker.Lon) + "," + marker.Style
}

// formatCoord renders a coordinate with the shortest representation that
// round-trips, so parsed input values reappear verbatim in the URL.
func formatCoord(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
