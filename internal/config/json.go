package config

import (
	"encoding/json"
	"os"
	"time"
)

// jsonConfig is the DTO for the optional JSON config file. Durations are
// whole seconds so the file stays hand-editable.
type jsonConfig struct {
	DataDir           *string  `json:"data_dir"`
	WeatherBaseURL    *string  `json:"weather_base_url"`
	WeatherAPIKey     *string  `json:"weather_api_key"`
	WeatherTimeoutSec *int     `json:"weather_timeout_seconds"`
	ForecastDays      *int     `json:"forecast_days"`
	DefaultLatitude   *float64 `json:"default_latitude"`
	DefaultLongitude  *float64 `json:"default_longitude"`
	PhotoBackend      *string  `json:"photo_backend"`
	S3Region          *string  `json:"s3_region"`
	S3Endpoint        *string  `json:"s3_endpoint"`
	S3Bucket          *string  `json:"s3_bucket"`
	S3AccessKey       *string  `json:"s3_access_key"`
	S3SecretKey       *string  `json:"s3_secret_key"`
}

// parseJSON overlays cfg with values from the file named by -c/-config.
// Absent fields keep their current values. Read or unmarshal errors panic;
// a named config file that cannot be used is a startup misconfiguration.
func parseJSON(cfg *Config) {
	path := jsonConfigPath()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DataDir != nil {
		cfg.DataDir = *jc.DataDir
	}
	if jc.WeatherBaseURL != nil {
		cfg.WeatherBaseURL = *jc.WeatherBaseURL
	}
	if jc.WeatherAPIKey != nil {
		cfg.WeatherAPIKey = *jc.WeatherAPIKey
	}
	if jc.WeatherTimeoutSec != nil {
		cfg.WeatherTimeout = time.Duration(*jc.WeatherTimeoutSec) * time.Second
	}
	if jc.ForecastDays != nil {
		cfg.ForecastDays = *jc.ForecastDays
	}
	if jc.DefaultLatitude != nil {
		cfg.DefaultLatitude = *jc.DefaultLatitude
	}
	if jc.DefaultLongitude != nil {
		cfg.DefaultLongitude = *jc.DefaultLongitude
	}
	if jc.PhotoBackend != nil {
		cfg.PhotoBackend = *jc.PhotoBackend
	}
	if jc.S3Region != nil {
		cfg.S3Region = *jc.S3Region
	}
	if jc.S3Endpoint != nil {
		cfg.S3Endpoint = *jc.S3Endpoint
	}
	if jc.S3Bucket != nil {
		cfg.S3Bucket = *jc.S3Bucket
	}
	if jc.S3AccessKey != nil {
		cfg.S3AccessKey = *jc.S3AccessKey
	}
	if jc.S3SecretKey != nil {
		cfg.S3SecretKey = *jc.S3SecretKey
	}
}
