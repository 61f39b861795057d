// Package weather fetches current conditions with a two-tier provider
// fallback: OpenWeatherMap when an API key is configured, wttr.in as the
// free keyless fallback. Both are normalized into the same report shape.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Defaults for the weather client.
const (
	DefaultOWMBaseURL  = "https://api.openweathermap.org"
	DefaultWttrBaseURL = "https://wttr.in"
	DefaultTimeout     = 8 * time.Second
	DefaultCity        = "Manila"
)

// Report is the normalized weather payload, identical regardless of which
// provider answered.
type Report struct {
	City        string `json:"city"`
	Temp        int    `json:"temp"`
	FeelsLike   int    `json:"feels_like"`
	Humidity    int    `json:"humidity"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Wind        int    `json:"wind"`
	Source      string `json:"source"`
}

// Config contains the weather client configuration.
type Config struct {
	// APIKey is the OpenWeatherMap key. When empty the primary provider
	// is skipped and only the fallback is used.
	APIKey string

	// DefaultCity is used when the caller passes an empty city.
	DefaultCity string

	// OWMBaseURL and WttrBaseURL override the provider endpoints.
	OWMBaseURL  string
	WttrBaseURL string

	// Timeout applies to each provider call independently.
	Timeout time.Duration
}

// Client fetches weather reports.
type Client struct {
	config Config
	client *http.Client
	logger *slog.Logger
}

// NewClient creates a weather client, filling zero config fields with
// defaults.
func NewClient(config Config) *Client {
	if config.DefaultCity == "" {
		config.DefaultCity = DefaultCity
	}
	if config.OWMBaseURL == "" {
		config.OWMBaseURL = DefaultOWMBaseURL
	}
	if config.WttrBaseURL == "" {
		config.WttrBaseURL = DefaultWttrBaseURL
	}
	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}

	return &Client{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
		logger: slog.Default().With("component", "weather"),
	}
}

// Fetch returns the current weather for city, trying OpenWeatherMap first
// and wttr.in on any failure. Only when both providers fail is an error
// returned.
func (c *Client) Fetch(ctx context.Context, city string) (*Report, error) {
	if strings.TrimSpace(city) == "" {
		city = c.config.DefaultCity
	}

	if c.config.APIKey != "" {
		report, err := c.fetchOpenWeatherMap(ctx, city)
		if err == nil {
			return report, nil
		}
		c.logger.Warn("OpenWeatherMap failed, trying wttr.in fallback",
			"city", city,
			"error", err,
		)
	}

	report, err := c.fetchWttr(ctx, city)
	if err != nil {
		c.logger.Warn("wttr.in fallback also failed",
			"city", city,
			"error", err,
		)
		return nil, fmt.Errorf("weather lookup failed: %w", err)
	}
	return report, nil
}

// owmResponse is the subset of the OpenWeatherMap current-weather response
// the client reads.
type owmResponse struct {
	Name string `json:"name"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

func (c *Client) fetchOpenWeatherMap(ctx context.Context, city string) (*Report, error) {
	u := fmt.Sprintf("%s/data/2.5/weather?q=%s&appid=%s&units=metric",
		c.config.OWMBaseURL, url.QueryEscape(city), url.QueryEscape(c.config.APIKey))

	var d owmResponse
	if err := c.getJSON(ctx, u, nil, &d); err != nil {
		return nil, err
	}
	if len(d.Weather) == 0 {
		return nil, fmt.Errorf("response has no weather conditions")
	}

	name := d.Name
	if name == "" {
		name = city
	}

	return &Report{
		City:        name,
		Temp:        int(math.Round(d.Main.Temp)),
		FeelsLike:   int(math.Round(d.Main.FeelsLike)),
		Humidity:    d.Main.Humidity,
		Description: d.Weather[0].Description,
		Icon:        d.Weather[0].Icon,
		Wind:        int(math.Round(d.Wind.Speed)),
		Source:      "openweathermap",
	}, nil
}

// wttrResponse is the subset of the wttr.in j1 response the client reads.
// wttr.in wraps scalar values in single-element arrays of value objects.
type wttrResponse struct {
	CurrentCondition []struct {
		TempC         string `json:"temp_C"`
		FeelsLikeC    string `json:"FeelsLikeC"`
		Humidity      string `json:"humidity"`
		WindspeedKmph string `json:"windspeedKmph"`
		WeatherCode   string `json:"weatherCode"`
		WeatherDesc   []struct {
			Value string `json:"value"`
		} `json:"weatherDesc"`
	} `json:"current_condition"`
	NearestArea []struct {
		AreaName []struct {
			Value string `json:"value"`
		} `json:"areaName"`
	} `json:"nearest_area"`
}

func (c *Client) fetchWttr(ctx context.Context, city string) (*Report, error) {
	u := fmt.Sprintf("%s/%s?format=j1", c.config.WttrBaseURL, url.PathEscape(city))
	// wttr.in serves HTML to browser user agents.
	headers := map[string]string{"User-Agent": "curl/7.68.0"}

	var d wttrResponse
	if err := c.getJSON(ctx, u, headers, &d); err != nil {
		return nil, err
	}
	if len(d.CurrentCondition) == 0 {
		return nil, fmt.Errorf("response has no current condition")
	}
	current := d.CurrentCondition[0]

	name := city
	if len(d.NearestArea) > 0 && len(d.NearestArea[0].AreaName) > 0 {
		if v := d.NearestArea[0].AreaName[0].Value; v != "" {
			name = v
		}
	}

	desc := "unknown"
	if len(current.WeatherDesc) > 0 && current.WeatherDesc[0].Value != "" {
		desc = current.WeatherDesc[0].Value
	}

	code := 113
	if n, err := strconv.Atoi(current.WeatherCode); err == nil {
		code = n
	}

	return &Report{
		City:        name,
		Temp:        atoiOrZero(current.TempC),
		FeelsLike:   atoiOrZero(current.FeelsLikeC),
		Humidity:    atoiOrZero(current.Humidity),
		Description: strings.ToLower(desc),
		Icon:        IconForCode(code),
		Wind:        atoiOrZero(current.WindspeedKmph),
		Source:      "wttr.in",
	}, nil
}

// IconForCode maps a wttr.in weather code onto the OpenWeatherMap icon set
// so the front end renders the same icons regardless of source.
func IconForCode(code int) string {
	switch {
	case code <= 113:
		return "01d"
	case code <= 116:
		return "02d"
	case code <= 119:
		return "03d"
	case code <= 122:
		return "04d"
	case code <= 299:
		return "09d"
	case code <= 399:
		return "10d"
	case code <= 499:
		return "13d"
	default:
		return "50d"
	}
}

func (c *Client) getJSON(ctx context.Context, url string, headers map[string]string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
