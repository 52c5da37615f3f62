package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/UnknownOlympus/mapsnap/internal/config"
	"github.com/UnknownOlympus/mapsnap/internal/staticmap"
)

// Constants for different environment types.
const (
	envLocal = "local"
	envDev   = "development"
	envProd  = "production"
)

// cliOptions collects the command line flags.
type cliOptions struct {
	input   string // Path to a JSON request document.
	markers string // Inline markers as pipe-separated lat,lon,style triples.
	size    string // Image dimensions as <width>x<height>.
	maptype string // Map style identifier.
	baseURL string // Base URL of the rendering endpoint.
	center  string // Explicit view center as lat,lon.
	zoom    int    // Explicit zoom level; 0 means derive from markers.
}

// main is the entry point of the application. It builds a single static-map
// URL from a request document or inline flags and prints it to stdout.
func main() {
	opts := parseFlags()

	// Load application configuration.
	cfg := config.MustLoad()

	// Set up the logger based on the environment.
	logger := setupLogger(cfg.Env)
	logger.Debug("configuration loaded", "env", cfg.Env, "base_url", cfg.BaseURL)

	req, err := buildRequest(opts, cfg, logger)
	if err != nil {
		log.Fatalf("Failed to build map request: %v", err)
	}

	fmt.Println(req.URL())
}

// parseFlags reads the command line into a cliOptions value.
func parseFlags() cliOptions {
	var opts cliOptions

	flag.StringVar(&opts.input, "input", "", "path to a JSON request document")
	flag.StringVar(&opts.markers, "markers", "", "inline markers as lat,lon,style triples separated by |")
	flag.StringVar(&opts.size, "size", "", "image dimensions as <width>x<height>")
	flag.StringVar(&opts.maptype, "maptype", "", "map style identifier")
	flag.StringVar(&opts.baseURL, "baseurl", "", "base URL of the rendering endpoint")
	flag.StringVar(&opts.center, "center", "", "explicit view center as lat,lon")
	flag.IntVar(&opts.zoom, "zoom", 0, "explicit zoom level (1-18)")
	flag.Parse()

	return opts
}

// buildRequest turns the command line and the configuration into a map
// request. A request document is used as-is; otherwise the request is
// assembled from the inline flags over the configured defaults.
func buildRequest(opts cliOptions, cfg *config.Config, logger *slog.Logger) (*staticmap.Request, error) {
	if opts.input != "" {
		if opts.markers != "" {
			logger.Warn("both -input and -markers supplied; preferring -input")
		}

		return staticmap.LoadRequest(opts.input, logger)
	}

	markers, err := staticmap.ParseMarkers(opts.markers)
	if err != nil {
		return nil, err
	}

	reqOpts := staticmap.Options{
		BaseURL: cfg.BaseURL,
		Markers: markers,
		Size:    cfg.Size,
		MapType: cfg.MapType,
	}

	if opts.baseURL != "" {
		reqOpts.BaseURL = opts.baseURL
	}

	if opts.maptype != "" {
		reqOpts.MapType = opts.maptype
	}

	if opts.size != "" {
		size, err := staticmap.ParseSize(opts.size)
		if err != nil {
			return nil, err
		}
		reqOpts.Size = size
	}

	if opts.center != "" {
		center, err := staticmap.ParseCenter(opts.center)
		if err != nil {
			return nil, err
		}
		reqOpts.Center = &center
	}

	if opts.zoom != 0 {
		zoom := opts.zoom
		reqOpts.Zoom = &zoom
	}

	return staticmap.New(reqOpts, logger)
}

// setupLogger initializes and returns a logger based on the environment
// provided. Diagnostics go to stderr; stdout carries only the resulting URL.
func setupLogger(env string) *slog.Logger {
	var logger *slog.Logger

	switch env {
	case envLocal:
		logger = slog.New(
			slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level:     slog.LevelDebug,
				AddSource: true,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					return a
				},
			}),
		)
	case envDev:
		logger = slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level:     slog.LevelInfo,
				AddSource: false,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					return a
				},
			}),
		)
	case envProd:
		logger = slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level:     slog.LevelWarn,
				AddSource: false,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					if a.Key == slog.TimeKey {
						return slog.Attr{}
					}
					return a
				},
			}),
		)
	default:
		logger = slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level:     slog.LevelError,
				AddSource: false,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					if a.Key == slog.TimeKey {
						return slog.Attr{}
					}
					return a
				},
			}),
		)

		logger.Error(
			"The env parameter was not specified or was invalid. Logging will be minimal, by default.",
			slog.String("available_envs", "local, development, production"))
	}

	return logger
}
