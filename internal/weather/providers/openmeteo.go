package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sony/gobreaker"

	"github.com/openwindow/advisor/internal/weather"
)

// hourlyTimeLayout is the civil timestamp format Open-Meteo returns when
// timezone=auto is requested: no offset, local wall clock.
const hourlyTimeLayout = "2006-01-02T15:04"

// OpenMeteoProvider implements weather.ForecastProvider for Open-Meteo,
// which serves hourly temperature and relative humidity without an API key.
type OpenMeteoProvider struct {
	name    string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

func NewOpenMeteoProvider(client *http.Client) *OpenMeteoProvider {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openmeteo",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &OpenMeteoProvider{
		name:    "openmeteo",
		baseURL: "https://api.open-meteo.com/v1/forecast",
		httpCfg: HTTPClientConfig{
			Client: client,
			Backoff: BackoffConfig{
				MaxRetries:      3,
				InitialInterval: 500 * time.Millisecond,
				MaxInterval:     5 * time.Second,
			},
		},
		circuit: cb,
	}
}

func (p *OpenMeteoProvider) Name() string {
	return p.name
}

// FetchHourly requests `days` days of hourly temperature and relative
// humidity and returns them as an ascending sample series in the
// location's local civil time.
func (p *OpenMeteoProvider) FetchHourly(ctx context.Context, loc weather.Location, days int) ([]weather.Sample, error) {
	if loc.Lat == nil || loc.Lon == nil {
		return nil, fmt.Errorf("openmeteo requires latitude and longitude")
	}

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("latitude", fmt.Sprintf("%f", *loc.Lat))
		values.Set("longitude", fmt.Sprintf("%f", *loc.Lon))
		values.Set("hourly", "temperature_2m,relative_humidity_2m")
		values.Set("temperature_unit", "celsius")
		values.Set("timezone", "auto")
		values.Set("forecast_days", strconv.Itoa(days))

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		req, err := http.NewRequest(http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}
		return req, nil
	}

	resp, err := doRequestWithResilience(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var payload struct {
		Hourly struct {
			Time             []string  `json:"time"`
			Temperature      []float64 `json:"temperature_2m"`
			RelativeHumidity []float64 `json:"relative_humidity_2m"`
		} `json:"hourly"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	h := payload.Hourly
	if len(h.Time) != len(h.Temperature) || len(h.Time) != len(h.RelativeHumidity) {
		return nil, fmt.Errorf("openmeteo hourly arrays are misaligned: %d times, %d temperatures, %d humidities",
			len(h.Time), len(h.Temperature), len(h.RelativeHumidity))
	}

	samples := make([]weather.Sample, 0, len(h.Time))
	for i, raw := range h.Time {
		ts, err := time.Parse(hourlyTimeLayout, raw)
		if err != nil {
			return nil, fmt.Errorf("openmeteo timestamp %q: %w", raw, err)
		}
		samples = append(samples, weather.Sample{
			Timestamp:   ts,
			Temperature: h.Temperature[i],
			Humidity:    h.RelativeHumidity[i],
		})
	}

	return samples, nil
}
