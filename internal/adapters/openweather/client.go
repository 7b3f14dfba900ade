package openweather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"bitespot/internal/adapters/observability"
	"bitespot/internal/domain"
)

const defaultBase = "https://api.openweathermap.org/data/2.5"

var ErrUnavailable = errors.New("openweather: unavailable")

// Client fetches current conditions from OpenWeather. Callers treat any
// error as "no live weather" and degrade to mock data.
type Client struct {
	base string
	key  string
	hc   *http.Client
}

func New(base, key string) (*Client, error) {
	if key == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if base == "" {
		base = defaultBase
	}
	return &Client{base: base, key: key, hc: &http.Client{Timeout: 10 * time.Second}}, nil
}

type currentResponse struct {
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
}

// CurrentWeather returns the snapshot for city, metric units. Category is
// left for the caller to derive.
func (c *Client) CurrentWeather(ctx context.Context, city string) (domain.WeatherSnapshot, error) {
	u := fmt.Sprintf("%s/weather?q=%s&appid=%s&units=metric", c.base, url.QueryEscape(city), url.QueryEscape(c.key))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return domain.WeatherSnapshot{}, err
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		return domain.WeatherSnapshot{}, err
	}
	defer resp.Body.Close()
	observability.ObserveExternal("openweather", "current", resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return domain.WeatherSnapshot{}, fmt.Errorf("%w: status %d: %s", ErrUnavailable, resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var out currentResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return domain.WeatherSnapshot{}, err
	}
	if len(out.Weather) == 0 {
		return domain.WeatherSnapshot{}, fmt.Errorf("%w: empty weather payload", ErrUnavailable)
	}

	return domain.WeatherSnapshot{
		Temperature: out.Main.Temp,
		Condition:   strings.ToLower(out.Weather[0].Main),
		Description: out.Weather[0].Description,
		City:        city,
	}, nil
}
