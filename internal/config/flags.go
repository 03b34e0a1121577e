package config

import (
	"flag"
	"os"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string      data directory (database and photos)
//	-k string      weather API key
//	-w string      weather API base URL
//	-days int      forecast days to request
//
// Only the flags handled here are parsed; the rest of the command line is
// filtered out first.
func parseFlags(cfg *Config) {
	args := filterArgs(os.Args[1:], []string{"-d", "-k", "-w", "-days"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory")
	fs.StringVar(&cfg.WeatherAPIKey, "k", cfg.WeatherAPIKey, "weather API key")
	fs.StringVar(&cfg.WeatherBaseURL, "w", cfg.WeatherBaseURL, "weather API base URL")
	fs.IntVar(&cfg.ForecastDays, "days", cfg.ForecastDays, "forecast days to request")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
