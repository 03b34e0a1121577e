// Package weather is a client for the weatherapi.com-style REST API the app
// uses for saved-location forecasts and session-day history.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/easel-app/easel/internal/logging"
	"github.com/easel-app/easel/internal/models"
)

// Client issues GET requests against a weather API base URL. All methods
// return a wrapped error on transport failures and non-200 responses;
// callers at the UI boundary decide how to degrade.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	log     logging.Logger
}

func NewClient(baseURL, apiKey string, timeout time.Duration, log logging.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// CoordsQuery formats coordinates the way the API's q parameter expects.
func CoordsQuery(c models.Coordinates) string {
	return strconv.FormatFloat(c.Latitude, 'f', -1, 64) + "," +
		strconv.FormatFloat(c.Longitude, 'f', -1, 64)
}

// Forecast fetches current conditions and up to days forecast days for q
// (either "lat,lon" or a city name).
func (c *Client) Forecast(ctx context.Context, q string, days int) (*Forecast, error) {
	params := url.Values{}
	params.Set("q", q)
	params.Set("days", strconv.Itoa(days))
	return c.get(ctx, "forecast.json", params)
}

// HourlyForecast fetches the hour-by-hour forecast for one date. The date is
// passed through as the dt parameter and the first forecast day's hours are
// returned.
func (c *Client) HourlyForecast(ctx context.Context, q string, date time.Time) ([]Hour, error) {
	params := url.Values{}
	params.Set("q", q)
	params.Set("dt", date.Format("2006-01-02"))
	f, err := c.get(ctx, "forecast.json", params)
	if err != nil {
		return nil, err
	}
	if len(f.Forecast.Days) == 0 {
		return nil, nil
	}
	return f.Forecast.Days[0].Hours, nil
}

// History fetches historical conditions for one past date.
func (c *Client) History(ctx context.Context, q string, date time.Time) (*Forecast, error) {
	params := url.Values{}
	params.Set("q", q)
	params.Set("dt", date.Format("2006-01-02"))
	return c.get(ctx, "history.json", params)
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values) (*Forecast, error) {
	params.Set("key", c.apiKey)
	reqURL := fmt.Sprintf("%s/%s?%s", c.baseURL, endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build weather request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %s", endpoint, resp.Status)
	}

	var f Forecast
	if err := json.NewDecoder(resp.Body).Decode(&f); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", endpoint, err)
	}

	c.log.Debug(ctx, "weather fetched", "endpoint", endpoint, "q", params.Get("q"))
	return &f, nil
}
