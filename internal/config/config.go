package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/UnknownOlympus/mapsnap/internal/models"
	"github.com/UnknownOlympus/mapsnap/internal/staticmap"
)

// Config holds the process-level settings for the URL builder.
// It includes the environment and the rendering defaults applied to
// requests that do not set the corresponding field themselves.
//
// Fields:
// - Env: The current environment (e.g., local, dev, prod).
// - BaseURL: The rendering endpoint URLs are built against.
// - MapType: The default map style identifier.
// - Size: The default image dimensions.
type Config struct {
	Env     string      // Env is the current environment: local, dev, prod.
	BaseURL string      // BaseURL is the rendering endpoint URLs are built against.
	MapType string      // MapType is the default map style identifier.
	Size    models.Size // Size is the default image dimensions in pixels.
}

// MustLoad loads the configuration from the environment, an optional .env
// file and an optional mapsnap.yaml file in the working directory.
// It panics when a value cannot be parsed.
func MustLoad() *Config {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("env", "production")
	v.SetDefault("base_url", staticmap.DefaultBaseURL)
	v.SetDefault("map_type", staticmap.DefaultMapType)
	v.SetDefault("size", fmt.Sprintf("%dx%d", staticmap.DefaultWidth, staticmap.DefaultHeight))

	v.SetConfigName("mapsnap")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // the YAML file is optional

	v.SetEnvPrefix("MAPSNAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	size, err := staticmap.ParseSize(v.GetString("size"))
	if err != nil {
		panic("failed to parse size from configuration, must be <width>x<height>")
	}

	return &Config{
		Env:     v.GetString("env"),
		BaseURL: v.GetString("base_url"),
		MapType: v.GetString("map_type"),
		Size:    size,
	}
}
