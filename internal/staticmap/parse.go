package staticmap

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/UnknownOlympus/mapsnap/internal/models"
)

// Arity of the wire forms accepted in request documents.
const (
	markerArity = 3
	pairArity   = 2
)

// document mirrors the JSON request document. The loosely typed fields are
// validated element by element to keep the sentinel errors precise.
type document struct {
	BaseURL string   `json:"baseurl"`
	Markers [][]any  `json:"markers"`
	Size    []any    `json:"size"`
	MapType string   `json:"maptype"`
	Center  []any    `json:"center"`
	Zoom    *float64 `json:"zoom"`
}

// ParseRequest decodes a JSON request document and returns the validated
// request built from it.
func ParseRequest(data []byte, log *slog.Logger) (*Request, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode request document: %w", err)
	}

	opts := Options{
		BaseURL: doc.BaseURL,
		MapType: doc.MapType,
	}

	for _, entry := range doc.Markers {
		marker, err := markerFromEntry(entry)
		if err != nil {
			return nil, err
		}
		opts.Markers = append(opts.Markers, marker)
	}

	if doc.Size != nil {
		size, err := sizeFromEntry(doc.Size)
		if err != nil {
			return nil, err
		}
		opts.Size = size
	}

	if doc.Center != nil {
		center, err := centerFromEntry(doc.Center)
		if err != nil {
			return nil, err
		}
		opts.Center = &center
	}

	if doc.Zoom != nil {
		if *doc.Zoom != math.Trunc(*doc.Zoom) {
			return nil, fmt.Errorf("%w: got %v", ErrInvalidZoom, *doc.Zoom)
		}
		zoom := int(*doc.Zoom)
		opts.Zoom = &zoom
	}

	return New(opts, log)
}

// LoadRequest reads a request document from disk and parses it.
func LoadRequest(path string, log *slog.Logger) (*Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read request document: %w", err)
	}

	return ParseRequest(data, log)
}

func markerFromEntry(entry []any) (models.Marker, error) {
	if len(entry) != markerArity {
		return models.Marker{}, fmt.Errorf("%w: got %d elements", ErrInvalidMarker, len(entry))
	}

	lat, ok := entry[0].(float64)
	if !ok {
		return models.Marker{}, fmt.Errorf("%w: latitude %v is not a number", ErrInvalidMarker, entry[0])
	}

	lon, ok := entry[1].(float64)
	if !ok {
		return models.Marker{}, fmt.Errorf("%w: longitude %v is not a number", ErrInvalidMarker, entry[1])
	}

	style, ok := entry[2].(string)
	if !ok {
		return models.Marker{}, fmt.Errorf("%w: style %v is not a string", ErrInvalidMarker, entry[2])
	}

	return models.Marker{Lat: lat, Lon: lon, Style: style}, nil
}

func sizeFromEntry(entry []any) (models.Size, error) {
	if len(entry) != pairArity {
		return models.Size{}, fmt.Errorf("%w: got %d elements", ErrInvalidSize, len(entry))
	}

	width, err := dimensionFromEntry(entry[0])
	if err != nil {
		return models.Size{}, err
	}

	height, err := dimensionFromEntry(entry[1])
	if err != nil {
		return models.Size{}, err
	}

	return models.Size{Width: width, Height: height}, nil
}

func dimensionFromEntry(value any) (int, error) {
	number, ok := value.(float64)
	if !ok || number != math.Trunc(number) || number <= 0 {
		return 0, fmt.Errorf("%w: got %v", ErrInvalidSize, value)
	}

	return int(number), nil
}

func centerFromEntry(entry []any) (models.GeoPoint, error) {
	if len(entry) != pairArity {
		return models.GeoPoint{}, fmt.Errorf("%w: got %d elements", ErrInvalidCenter, len(entry))
	}

	lat, ok := entry[0].(float64)
	if !ok {
		return models.GeoPoint{}, fmt.Errorf("%w: latitude %v is not a number", ErrInvalidCenter, entry[0])
	}

	lon, ok := entry[1].(float64)
	if !ok {
		return models.GeoPoint{}, fmt.Errorf("%w: longitude %v is not a number", ErrInvalidCenter, entry[1])
	}

	return models.GeoPoint{Lat: lat, Lon: lon}, nil
}

// ParseMarkers parses the inline "lat,lon,style|lat,lon,style" form used on
// the command line. Empty input yields no markers.
func ParseMarkers(input string) ([]models.Marker, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, nil
	}

	var markers []models.Marker
	for _, section := range strings.Split(input, "|") {
		fields := strings.Split(section, ",")
		if len(fields) != markerArity {
			return nil, fmt.Errorf("%w: got %q", ErrInvalidMarker, section)
		}

		lat, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid latitude %q", ErrInvalidMarker, fields[0])
		}

		lon, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid longitude %q", ErrInvalidMarker, fields[1])
		}

		markers = append(markers, models.Marker{
			Lat:   lat,
			Lon:   lon,
			Style: strings.TrimSpace(fields[2]),
		})
	}

	return markers, nil
}

// ParseSize parses image dimensions in the "<width>x<height>" form.
func ParseSize(input string) (models.Size, error) {
	fields := strings.Split(strings.TrimSpace(input), "x")
	if len(fields) != pairArity {
		return models.Size{}, fmt.Errorf("%w: got %q", ErrInvalidSize, input)
	}

	width, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil || width <= 0 {
		return models.Size{}, fmt.Errorf("%w: invalid width %q", ErrInvalidSize, fields[0])
	}

	height, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil || height <= 0 {
		return models.Size{}, fmt.Errorf("%w: invalid height %q", ErrInvalidSize, fields[1])
	}

	return models.Size{Width: width, Height: height}, nil
}

// ParseCenter parses an explicit view center in the "lat,lon" form.
func ParseCenter(input string) (models.GeoPoint, error) {
	fields := strings.Split(strings.TrimSpace(input), ",")
	if len(fields) != pairArity {
		return models.GeoPoint{}, fmt.Errorf("%w: got %q", ErrInvalidCenter, input)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
	if err != nil {
		return models.GeoPoint{}, fmt.Errorf("%w: invalid latitude %q", ErrInvalidCenter, fields[0])
	}

	lon, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
	if err != nil {
		return models.GeoPoint{}, fmt.Errorf("%w: invalid longitude %q", ErrInvalidCenter, fields[1])
	}

	return models.GeoPoint{Lat: lat, Lon: lon}, nil
}
