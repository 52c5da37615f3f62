// Package staticmap builds request URLs for static-map rendering services.
// A request carries a set of markers; the map center is derived as the
// great-circle midpoint of their bounding box and the zoom level is looked
// up from the OSM scale-denominator table, unless both were set explicitly.
package staticmap

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/UnknownOlympus/mapsnap/internal/models"
)

// Rendering defaults applied when the corresponding option is omitted.
const (
	DefaultBaseURL = "https://staticmap.openstreetmap.de/staticmap.php"
	DefaultMapType = "mapnik"
	DefaultWidth   = 500
	DefaultHeight  = 350
)

// defaultZoom is used when no usable marker is left to derive a view from.
const defaultZoom = 17

// Common errors for map request construction.
var (
	ErrInvalidMarker = errors.New("marker must be a latitude, longitude, style triple")
	ErrInvalidSize   = errors.New("size must be two positive integers")
	ErrInvalidZoom   = errors.New("zoom must be an integer between 1 and 18")
	ErrInvalidCenter = errors.New("center must be a latitude, longitude pair")
)

// Options describes a map request. Zero-valued fields fall back to the
// package defaults; Center and Zoom, when both set, skip the derivation
// from markers entirely.
type Options struct {
	BaseURL string           // Base URL of the rendering endpoint.
	Markers []models.Marker  // Markers to draw, in request order.
	Size    models.Size      // Image dimensions; the zero value selects the default.
	MapType string           // Map style identifier.
	Center  *models.GeoPoint // Optional explicit view center.
	Zoom    *int             // Optional explicit zoom level.
}

// Request is a validated static-map request. View parameters that were not
// set explicitly are resolved from the markers on first use and memoized.
type Request struct {
	baseURL string          // Rendering endpoint the URL is built against.
	markers []models.Marker // Markers in request order.
	size    models.Size     // Image dimensions in pixels.
	maptype string          // Map style identifier.
	log     *slog.Logger    // Logger for resolution diagnostics.

	center   *models.GeoPoint // Explicit or derived view center.
	zoom     *int             // Explicit or derived zoom level.
	radius   float64          // Derived bounding radius in meters.
	resolved bool             // Guards the one-shot derivation.
}

// New validates the options, applies the package defaults and returns a
// request ready to produce a URL.
func New(opts Options, log *slog.Logger) (*Request, error) {
	req := &Request{
		baseURL: opts.BaseURL,
		markers: opts.Markers,
		size:    opts.Size,
		maptype: opts.MapType,
		log:     log,
	}

	if opts.Center != nil {
		center := *opts.Center
		req.center = &center
	}

	if opts.Zoom != nil {
		zoom := *opts.Zoom
		req.zoom = &zoom
	}

	if req.baseURL == "" {
		req.baseURL = DefaultBaseURL
	}

	if req.maptype == "" {
		req.maptype = DefaultMapType
	}

	if req.size == (models.Size{}) {
		req.size = models.Size{Width: DefaultWidth, Height: DefaultHeight}
	}

	if req.size.Width <= 0 || req.size.Height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, req.size.Width, req.size.Height)
	}

	if req.zoom != nil && (*req.zoom < minZoom || *req.zoom > maxZoom) {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidZoom, *req.zoom)
	}

	return req, nil
}

// Center returns the view center, deriving it from the markers when it was
// not set explicitly.
func (r *Request) Center() models.GeoPoint {
	r.resolve()

	return *r.center
}

// Zoom returns the zoom level, deriving it from the markers when it was
// not set explicitly.
func (r *Request) Zoom() int {
	r.resolve()

	return *r.zoom
}

// URL formats the request as a static-map URL with the fixed parameter
// order center, zoom, size, markers, maptype.
func (r *Request) URL() string {
	r.resolve()

	return buildURL(r.baseURL, *r.center, *r.zoom, r.size, r.markers, r.maptype)
}

// resolve derives the missing view parameters from the markers and memoizes
// them. When both center and zoom were supplied, the markers are left alone.
func (r *Request) resolve() {
	if r.resolved {
		return
	}
	r.resolved = true

	if r.center != nil && r.zoom != nil {
		return
	}

	center, radius, usable := resolveCenterAndRadius(r.markers)
	r.radius = radius

	if r.center == nil {
		r.center = &center
	}

	if r.zoom == nil {
		zoom := defaultZoom
		if usable {
			zoom = resolveZoom(radius, r.size)
		}
		r.zoom = &zoom
	}

	r.log.Debug("derived map view",
		"lat", r.center.Lat,
		"lon", r.center.Lon,
		"zoom", *r.zoom,
		"radius_m", r.radius,
	)
}
