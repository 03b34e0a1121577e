package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/easel-app/easel/internal/weather"
)

// Weather prints the forecast for the given place, or for the working
// location when q is empty. Network failures never surface as raw errors to
// the user; they are logged and answered with a retry suggestion.
func (a *App) Weather(ctx context.Context, q string) error {
	if a.config.WeatherAPIKey == "" {
		fmt.Fprintln(a.out, "No weather API key configured (set WEATHER_API_KEY).")
		return nil
	}
	if q == "" {
		q = weather.CoordsQuery(a.locator.Resolve(ctx))
	}

	f, err := a.weather.Forecast(ctx, q, a.config.ForecastDays)
	if err != nil {
		a.log.Error(ctx, "weather fetch failed", "q", q, "error", err)
		fmt.Fprintln(a.out, "Could not fetch the weather. Please try again.")
		return nil
	}

	fmt.Fprintf(a.out, "%s, %s: %.1f°C, %s\n",
		f.Location.Name, f.Location.Country, f.Current.TempC, f.Current.Condition.Text)
	for _, day := range f.Forecast.Days {
		fmt.Fprintf(a.out, "  %s  %5.1f–%.1f°C  %-18s rain %d%%  %s–%s\n",
			day.Date, day.Day.MinTempC, day.Day.MaxTempC, day.Day.Condition.Text,
			day.Day.DailyChanceOfRain, day.Astro.Sunrise, day.Astro.Sunset)
	}
	return nil
}

// HourlyWeather prints the hour-by-hour forecast for one day at the working
// location.
func (a *App) HourlyWeather(ctx context.Context, date string) error {
	if a.config.WeatherAPIKey == "" {
		fmt.Fprintln(a.out, "No weather API key configured (set WEATHER_API_KEY).")
		return nil
	}

	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		fmt.Fprintln(a.out, "That is not a valid date (expected YYYY-MM-DD).")
		return nil
	}

	q := weather.CoordsQuery(a.locator.Resolve(ctx))
	hours, err := a.weather.HourlyForecast(ctx, q, day)
	if err != nil {
		a.log.Error(ctx, "hourly forecast fetch failed", "q", q, "date", date, "error", err)
		fmt.Fprintln(a.out, "Could not fetch the weather. Please try again.")
		return nil
	}
	if len(hours) == 0 {
		fmt.Fprintf(a.out, "No hourly data for %s.\n", date)
		return nil
	}

	for _, h := range hours {
		fmt.Fprintf(a.out, "  %s  %5.1f°C  rain %d%%  %s\n",
			h.Time, h.TempC, h.ChanceOfRain, h.Condition.Text)
	}
	return nil
}

// History prints the conditions on a past date at the working location.
func (a *App) History(ctx context.Context, date string) error {
	if a.config.WeatherAPIKey == "" {
		fmt.Fprintln(a.out, "No weather API key configured (set WEATHER_API_KEY).")
		return nil
	}

	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		fmt.Fprintln(a.out, "That is not a valid date (expected YYYY-MM-DD).")
		return nil
	}

	q := weather.CoordsQuery(a.locator.Resolve(ctx))
	f, err := a.weather.History(ctx, q, day)
	if err != nil {
		a.log.Error(ctx, "weather history fetch failed", "q", q, "date", date, "error", err)
		fmt.Fprintln(a.out, "Could not fetch the weather. Please try again.")
		return nil
	}

	if len(f.Forecast.Days) == 0 {
		fmt.Fprintf(a.out, "No records for %s.\n", date)
		return nil
	}
	d := f.Forecast.Days[0]
	fmt.Fprintf(a.out, "%s at %s: %.1f–%.1f°C, %s\n",
		d.Date, f.Location.Name, d.Day.MinTempC, d.Day.MaxTempC, d.Day.Condition.Text)
	return nil
}

// SetLocation pins a custom working location for weather lookups.
func (a *App) SetLocation(ctx context.Context) error {
	lat, err := GetFloat(a.reader, "Latitude", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Latitude must be a number.")
		return nil
	}
	lon, err := GetFloat(a.reader, "Longitude", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Longitude must be a number.")
		return nil
	}

	if err := a.locator.SetCustom(ctx, coords(lat, lon)); err != nil {
		a.log.Error(ctx, "failed to set custom location", "error", err)
		fmt.Fprintln(a.out, retryMessage)
		return nil
	}
	fmt.Fprintf(a.out, "Working location pinned to %.4f, %.4f.\n", lat, lon)
	return nil
}

// UseDeviceLocation clears a pinned location.
func (a *App) UseDeviceLocation(ctx context.Context) error {
	c, err := a.locator.UseDevice(ctx)
	if err != nil {
		a.log.Error(ctx, "failed to clear custom location", "error", err)
		fmt.Fprintln(a.out, retryMessage)
		return nil
	}
	fmt.Fprintf(a.out, "Using device location: %.4f, %.4f.\n", c.Latitude, c.Longitude)
	return nil
}
