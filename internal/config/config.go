package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/openwindow/advisor/internal/weather"
)

type AppConfig struct {
	// GeocoderAPIKey enables city/country locations; coordinates work
	// without it.
	GeocoderAPIKey string

	// FetchInterval controls how often server mode refreshes each location.
	FetchInterval time.Duration

	// ForecastDays is how many days of hourly data each fetch requests.
	ForecastDays int

	// StoreMaxAge is how long a cached series stays usable.
	StoreMaxAge time.Duration

	// HTTPTimeout bounds outbound Open-Meteo calls.
	HTTPTimeout time.Duration

	// Locations to track in server mode.
	Locations []weather.Location

	// Candidate indoor temperature range.
	ReferenceMin  float64
	ReferenceMax  float64
	ReferenceStep float64

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.GeocoderAPIKey = os.Getenv("GEOCODER_API_KEY")

	intervalStr := getenvDefault("FETCH_INTERVAL", "1h")
	interval, err := time.ParseDuration(intervalStr)
	if err != nil {
		return nil, fmt.Errorf("invalid FETCH_INTERVAL: %w", err)
	}
	cfg.FetchInterval = interval

	cfg.ForecastDays = getenvInt("FORECAST_DAYS", 7)
	if cfg.ForecastDays < 1 {
		return nil, fmt.Errorf("FORECAST_DAYS must be at least 1")
	}

	maxAgeStr := getenvDefault("STORE_MAX_AGE", "2h")
	maxAge, err := time.ParseDuration(maxAgeStr)
	if err != nil {
		return nil, fmt.Errorf("invalid STORE_MAX_AGE: %w", err)
	}
	cfg.StoreMaxAge = maxAge

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	cfg.ReferenceMin = getenvFloat("REFERENCE_TEMP_MIN", 16.0)
	cfg.ReferenceMax = getenvFloat("REFERENCE_TEMP_MAX", 22.0)
	cfg.ReferenceStep = getenvFloat("REFERENCE_TEMP_STEP", 0.5)
	if cfg.ReferenceStep <= 0 || cfg.ReferenceMax < cfg.ReferenceMin {
		return nil, fmt.Errorf("reference temperature range is empty or decreasing")
	}

	cfg.Port = getenvDefault("PORT", "8080")

	locs, err := loadLocations()
	if err != nil {
		return nil, err
	}
	cfg.Locations = locs

	return cfg, nil
}

// loadLocations reads tracked locations either as coordinate lists or as
// city/country lists (resolved through geocoding at startup).
func loadLocations() ([]weather.Location, error) {
	latList := os.Getenv("WEATHER_LOCATION_LAT")
	lngList := os.Getenv("WEATHER_LOCATION_LNG")
	if latList != "" || lngList != "" {
		lats := strings.Split(latList, ",")
		lngs := strings.Split(lngList, ",")
		if len(lats) != len(lngs) {
			return nil, fmt.Errorf("number of latitudes and longitudes must be the same")
		}
		var locs []weather.Location
		for i := range lats {
			lat, err := strconv.ParseFloat(strings.TrimSpace(lats[i]), 64)
			if err != nil {
				return nil, fmt.Errorf("invalid WEATHER_LOCATION_LAT entry %q", lats[i])
			}
			lng, err := strconv.ParseFloat(strings.TrimSpace(lngs[i]), 64)
			if err != nil {
				return nil, fmt.Errorf("invalid WEATHER_LOCATION_LNG entry %q", lngs[i])
			}
			locs = append(locs, weather.Location{Lat: &lat, Lon: &lng})
		}
		return locs, nil
	}

	city := os.Getenv("WEATHER_LOCATION_CITY")
	country := os.Getenv("WEATHER_LOCATION_COUNTRY")
	if city == "" {
		return nil, nil
	}
	cities := strings.Split(city, ",")
	countries := strings.Split(country, ",")
	if len(cities) != len(countries) {
		return nil, fmt.Errorf("number of cities and countries must be the same")
	}
	var locs []weather.Location
	for i := range cities {
		locs = append(locs, weather.Location{
			City:    strings.TrimSpace(cities[i]),
			Country: strings.TrimSpace(countries[i]),
		})
	}
	return locs, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil {
			return f
		}
	}
	return def
}
