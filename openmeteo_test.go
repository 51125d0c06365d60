package wxchart

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/go-cmp/cmp"
)

type fakeOpenMeteo struct {
	failures int // forecast requests to fail before succeeding
	humidity string // relative_humidity_2m, omitted when empty
	calls    atomic.Int32
}

func (f *fakeOpenMeteo) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/search":
		if r.URL.Query().Get("name") != "Paris" {
			fmt.Fprint(w, `{"generationtime_ms":0.5}`)

			return
		}

		fmt.Fprint(w, `{"results":[{"name":"Paris","country":"France","latitude":48.85341,"longitude":2.3488}]}`)

	case "/forecast":
		if int(f.calls.Add(1)) <= f.failures {
			w.WriteHeader(http.StatusServiceUnavailable)

			return
		}

		q := r.URL.Query()
		if q.Get("latitude") != "48.85341" || q.Get("longitude") != "2.3488" {
			w.WriteHeader(http.StatusBadRequest)

			return
		}

		if f.humidity != "" {
			fmt.Fprintf(w, `{"current_weather":{"temperature":18.4,"weathercode":61},"current":{"relative_humidity_2m":%s}}`,
				f.humidity)
		} else {
			fmt.Fprint(w, `{"current_weather":{"temperature":18.4,"weathercode":61}}`)
		}

	default:
		http.NotFound(w, r)
	}
}

func newTestClient(t *testing.T, h http.Handler) *Client {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	clock := func() time.Time {
		return time.Date(2025, time.June, 21, 15, 4, 5, 0, time.UTC)
	}

	return NewClient(
		URLs(srv.URL+"/search", srv.URL+"/forecast"),
		WithHTTPClient(srv.Client()),
		WithBackoff(Backoff{MaxRetries: 2, InitialInterval: time.Millisecond}),
		WithClock(clock))
}

func TestFetch(t *testing.T) {
	tests := []struct {
		name string
		fake *fakeOpenMeteo
		want int
	}{
		{"humidity", &fakeOpenMeteo{humidity: "77"}, 77},
		{"no humidity", &fakeOpenMeteo{}, DefaultHumidity},
		{"retry", &fakeOpenMeteo{failures: 2, humidity: "77"}, 77},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, tt.fake)

			got, err := c.Fetch(context.Background(), "Paris")
			if err != nil {
				t.Fatal(err)
			}

			want := Observation{
				Date:         time.Date(2025, time.June, 21, 0, 0, 0, 0, time.UTC),
				TemperatureC: 18.4,
				HumidityPct:  tt.want,
				Condition:    "Rain: Slight, moderate and heavy intensity",
			}

			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("observation mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFetchCityNotFound(t *testing.T) {
	c := newTestClient(t, &fakeOpenMeteo{})

	if _, err := c.Fetch(context.Background(), "Atlantis"); !errors.Is(err, ErrCityNotFound) {
		t.Errorf("got error %v, want %v", err, ErrCityNotFound)
	}
}

func TestFetchInvalidHumidity(t *testing.T) {
	c := newTestClient(t, &fakeOpenMeteo{humidity: "150"})

	var verr validator.ValidationErrors

	if _, err := c.Fetch(context.Background(), "Paris"); !errors.As(err, &verr) {
		t.Errorf("got error %v, want validation error", err)
	}
}

func TestFetchServerError(t *testing.T) {
	fake := &fakeOpenMeteo{failures: 10}
	c := newTestClient(t, fake)

	_, err := c.Fetch(context.Background(), "Paris")
	if !errors.Is(err, errServerError) {
		t.Errorf("got error %v, want %v", err, errServerError)
	}

	if n := fake.calls.Load(); n != 3 {
		t.Errorf("got %d forecast requests, want 3", n)
	}
}

func TestFetchCanceled(t *testing.T) {
	c := newTestClient(t, &fakeOpenMeteo{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := c.Fetch(ctx, "Paris"); !errors.Is(err, context.Canceled) {
		t.Errorf("got error %v, want %v", err, context.Canceled)
	}
}

func TestWeatherCondition(t *testing.T) {
	tests := map[int]string{
		0:   "Clear sky",
		2:   "Mainly clear, partly cloudy, and overcast",
		45:  "Fog and depositing rime fog",
		77:  "Snow grains",
		95:  "Thunderstorm: Slight or moderate",
		99:  "Thunderstorm with slight and heavy hail",
		100: "Unknown",
	}

	for code, want := range tests {
		if got := WeatherCondition(code); got != want {
			t.Errorf("WeatherCondition(%d) = %q, want %q", code, got, want)
		}
	}
}
