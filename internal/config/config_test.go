package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	old := os.Args
	os.Args = append([]string{"easel"}, args...)
	t.Cleanup(func() { os.Args = old })
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("WEATHER_API_KEY", "env-key")

	var c Config
	c.LoadDefaults()

	assert.Equal(t, "easel-data", c.DataDir)
	assert.Equal(t, "https://api.weatherapi.com/v1", c.WeatherBaseURL)
	assert.Equal(t, "env-key", c.WeatherAPIKey)
	assert.Equal(t, 10*time.Second, c.WeatherTimeout)
	assert.Equal(t, 3, c.ForecastDays)
	assert.Equal(t, "fs", c.PhotoBackend)
	assert.InDelta(t, 51.5074, c.DefaultLatitude, 0.0001)
}

func TestDerivedPaths(t *testing.T) {
	c := Config{DataDir: "/var/easel"}
	assert.Equal(t, filepath.Join("/var/easel", "easel.db"), c.DatabasePath())
	assert.Equal(t, filepath.Join("/var/easel", "photos"), c.PhotoDir())
}

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	withArgs(t, "-d", "/tmp/easel-test", "-days", "5")

	cfg := LoadConfig()

	assert.Equal(t, "/tmp/easel-test", cfg.DataDir)
	assert.Equal(t, 5, cfg.ForecastDays)
	// untouched fields keep defaults
	assert.Equal(t, "https://api.weatherapi.com/v1", cfg.WeatherBaseURL)
}

func TestLoadConfig_JSONThenFlags(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(file, []byte(`{
		"data_dir": "/from/json",
		"forecast_days": 7,
		"weather_timeout_seconds": 30
	}`), 0o600))

	// flags win over the JSON file
	withArgs(t, "-c", file, "-days", "2")

	cfg := LoadConfig()

	assert.Equal(t, "/from/json", cfg.DataDir)
	assert.Equal(t, 2, cfg.ForecastDays)
	assert.Equal(t, 30*time.Second, cfg.WeatherTimeout)
}

func TestFilterArgs(t *testing.T) {
	args := []string{"-d", "dir", "-x", "junk", "--config=conf.json", "-days", "4"}

	got := filterArgs(args, []string{"-d", "-days"})
	assert.Equal(t, []string{"-d", "dir", "-days", "4"}, got)

	got = filterArgs(args, []string{"--config"})
	assert.Equal(t, []string{"--config=conf.json"}, got)
}
