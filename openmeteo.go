package wxchart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sony/gobreaker"

	"endobit.io/app/log"
)

// Client fetches the current weather of a city from the Open-Meteo API.
type Client struct {
	logger      *slog.Logger
	httpClient  *http.Client
	geocodeURL  string
	forecastURL string
	backoff     Backoff
	breaker     *gobreaker.CircuitBreaker
	now         func() time.Time
}

// Backoff controls the retries of a failed request.
type Backoff struct {
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// DefaultHumidity is used when the API does not report relative humidity.
const DefaultHumidity = 50

var (
	defaultGeocodeURL  = "https://geocoding-api.open-meteo.com/v1/search"
	defaultForecastURL = "https://api.open-meteo.com/v1/forecast"
)

var (
	// ErrCityNotFound is returned by Fetch when geocoding finds no match.
	ErrCityNotFound = errors.New("city not found")

	errRateLimited = errors.New("rate limited")
	errServerError = errors.New("server error")
	errUnexpected  = errors.New("unexpected status code")
	errCircuitOpen = errors.New("circuit breaker open")
)

// WithLogger is an option setting function for NewClient. It sets the logger
// used by the client.
func WithLogger(logger *slog.Logger) func(*Client) {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithHTTPClient is an option setting function for NewClient. It sets the HTTP
// client used for requests.
func WithHTTPClient(client *http.Client) func(*Client) {
	return func(c *Client) {
		c.httpClient = client
	}
}

// URLs is an option setting function for NewClient. It sets the geocoding and
// forecast endpoints.
func URLs(geocode, forecast string) func(*Client) {
	return func(c *Client) {
		c.geocodeURL = geocode
		c.forecastURL = forecast
	}
}

// WithBackoff is an option setting function for NewClient. It sets the retry
// policy of each request.
func WithBackoff(b Backoff) func(*Client) {
	return func(c *Client) {
		c.backoff = b
	}
}

// WithClock is an option setting function for NewClient. It sets the function
// used to date observations.
func WithClock(now func() time.Time) func(*Client) {
	return func(c *Client) {
		c.now = now
	}
}

// NewClient returns an Open-Meteo client.
func NewClient(opts ...func(*Client)) *Client {
	client := Client{
		logger:      slog.New(slog.DiscardHandler),
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		geocodeURL:  defaultGeocodeURL,
		forecastURL: defaultForecastURL,
		backoff: Backoff{
			MaxRetries:      3,
			InitialInterval: 500 * time.Millisecond,
			MaxInterval:     5 * time.Second,
		},
		now: time.Now,
	}

	for _, o := range opts {
		o(&client)
	}

	client.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openmeteo",
		MaxRequests: 5,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &client
}

type geocodeResponse struct {
	Results []struct {
		Name      string  `json:"name"`
		Country   string  `json:"country"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"results"`
}

type forecastResponse struct {
	CurrentWeather struct {
		Temperature float64 `json:"temperature"`
		WeatherCode int     `json:"weathercode"`
	} `json:"current_weather"`
	Current struct {
		RelativeHumidity *int `json:"relative_humidity_2m"`
	} `json:"current"`
}

// Fetch returns today's observation for city. The city is geocoded first and
// the current weather is fetched for the first match.
func (c *Client) Fetch(ctx context.Context, city string) (Observation, error) {
	geo := url.Values{}
	geo.Set("name", city)
	geo.Set("count", "1")

	var places geocodeResponse

	if err := c.get(ctx, c.geocodeURL, geo, &places); err != nil {
		return Observation{}, fmt.Errorf("geocode %q: %w", city, err)
	}

	if len(places.Results) == 0 {
		return Observation{}, fmt.Errorf("%w: %q", ErrCityNotFound, city)
	}

	place := places.Results[0]

	c.logger.Debug("geocode", "city", city, "name", place.Name, "country", place.Country,
		"latitude", place.Latitude, "longitude", place.Longitude)

	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(place.Latitude, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(place.Longitude, 'f', -1, 64))
	q.Set("current_weather", "true")
	q.Set("current", "relative_humidity_2m")

	var forecast forecastResponse

	if err := c.get(ctx, c.forecastURL, q, &forecast); err != nil {
		return Observation{}, fmt.Errorf("forecast %q: %w", city, err)
	}

	humidity := DefaultHumidity
	if forecast.Current.RelativeHumidity != nil {
		humidity = *forecast.Current.RelativeHumidity
	}

	now := c.now()

	obs := Observation{
		Date:         time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		TemperatureC: forecast.CurrentWeather.Temperature,
		HumidityPct:  humidity,
		Condition:    WeatherCondition(forecast.CurrentWeather.WeatherCode),
	}

	if err := obs.Validate(); err != nil {
		return Observation{}, fmt.Errorf("forecast %q: invalid observation: %w", city, err)
	}

	return obs, nil
}

func (c *Client) get(ctx context.Context, endpoint string, query url.Values, v any) error {
	u := endpoint + "?" + query.Encode()

	for attempt := 0; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := c.try(ctx, u, v)
		if err == nil {
			return nil
		}

		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return fmt.Errorf("%w: %w", errCircuitOpen, err)
		}

		if attempt >= c.backoff.MaxRetries {
			return err
		}

		delay := c.backoff.InitialInterval * time.Duration(math.Pow(2, float64(attempt)))
		if c.backoff.MaxInterval > 0 && delay > c.backoff.MaxInterval {
			delay = c.backoff.MaxInterval
		}

		c.logger.Log(ctx, log.LevelTrace, "retry", "url", u, "attempt", attempt+1, "delay", delay, "error", err)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()

			return ctx.Err()
		case <-timer.C:
		}
	}
}

func (c *Client) try(ctx context.Context, u string, v any) error {
	_, err := c.breaker.Execute(func() (any, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
		if err != nil {
			return nil, err
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}

		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusTooManyRequests:
			return nil, errRateLimited
		case resp.StatusCode >= http.StatusInternalServerError:
			return nil, fmt.Errorf("%w: %d", errServerError, resp.StatusCode)
		case resp.StatusCode != http.StatusOK:
			return nil, fmt.Errorf("%w: %d", errUnexpected, resp.StatusCode)
		}

		return nil, json.NewDecoder(resp.Body).Decode(v)
	})

	return err
}

// WeatherCondition returns the condition label of a WMO weather code.
func WeatherCondition(code int) string {
	switch {
	case code == 0:
		return "Clear sky"
	case code >= 1 && code <= 3:
		return "Mainly clear, partly cloudy, and overcast"
	case code >= 45 && code <= 48:
		return "Fog and depositing rime fog"
	case code >= 51 && code <= 55:
		return "Drizzle: Light, moderate, and dense intensity"
	case code >= 56 && code <= 57:
		return "Freezing Drizzle: Light and dense intensity"
	case code >= 61 && code <= 65:
		return "Rain: Slight, moderate and heavy intensity"
	case code >= 66 && code <= 67:
		return "Freezing Rain: Light and heavy intensity"
	case code >= 71 && code <= 75:
		return "Snow fall: Slight, moderate, and heavy intensity"
	case code == 77:
		return "Snow grains"
	case code >= 80 && code <= 82:
		return "Rain showers: Slight, moderate, and violent"
	case code >= 85 && code <= 86:
		return "Snow showers slight and heavy"
	case code == 95:
		return "Thunderstorm: Slight or moderate"
	case code >= 96 && code <= 99:
		return "Thunderstorm with slight and heavy hail"
	default:
		return "Unknown"
	}
}
