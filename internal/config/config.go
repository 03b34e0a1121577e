// Package config assembles runtime settings from defaults, an optional JSON
// file and command-line flags, in that order. Later sources override
// earlier ones.
package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds the runtime settings for the easel CLI.
type Config struct {
	// DataDir is the base directory for the local database and photo
	// assets.
	DataDir string

	// Weather API settings. The key defaults from the WEATHER_API_KEY
	// environment variable; weather commands are disabled when it is empty.
	WeatherBaseURL string
	WeatherAPIKey  string
	WeatherTimeout time.Duration
	ForecastDays   int

	// Fallback coordinates used when no device position and no custom
	// location are available.
	DefaultLatitude  float64
	DefaultLongitude float64

	// PhotoBackend selects where photo assets live: "fs" (default) or "s3".
	PhotoBackend string
	S3Region     string
	S3Endpoint   string
	S3Bucket     string
	S3AccessKey  string
	S3SecretKey  string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataDir = "easel-data"
	c.WeatherBaseURL = "https://api.weatherapi.com/v1"
	c.WeatherAPIKey = os.Getenv("WEATHER_API_KEY")
	c.WeatherTimeout = 10 * time.Second
	c.ForecastDays = 3
	// London
	c.DefaultLatitude = 51.5074
	c.DefaultLongitude = -0.1278
	c.PhotoBackend = "fs"
}

// DatabasePath is the sqlite file inside the data directory.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "easel.db")
}

// PhotoDir is the managed photo asset directory.
func (c *Config) PhotoDir() string {
	return filepath.Join(c.DataDir, "photos")
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file was named) and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
