package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"net/http"
	"time"

	"github.com/openwindow/advisor/internal/config"
	"github.com/openwindow/advisor/internal/report"
	"github.com/openwindow/advisor/internal/store"
	"github.com/openwindow/advisor/internal/weather"
	"github.com/openwindow/advisor/internal/weather/providers"
)

const (
	hourlyRows = 10
	dailyRows  = 7
)

func main() {
	lat := flag.Float64("lat", math.NaN(), "latitude of the location")
	lng := flag.Float64("lng", math.NaN(), "longitude of the location")
	city := flag.String("city", "", "city name, resolved via geocoding (requires GEOCODER_API_KEY)")
	country := flag.String("country", "", "country for -city")
	ascii := flag.Bool("ascii", false, "forces output to use ASCII only")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	loc, err := resolveLocation(cfg, *lat, *lng, *city, *country)
	if err != nil {
		log.Fatal(err)
	}

	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}
	provider := providers.NewOpenMeteoProvider(httpClient)

	// The memory store makes the second table reuse the fetch of the first.
	service := weather.NewService(store.NewMemoryStore(cfg.StoreMaxAge), provider, cfg.ForecastDays)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	refs := report.ReferenceRange(cfg.ReferenceMin, cfg.ReferenceMax, cfg.ReferenceStep)
	now := weather.Civil(time.Now())

	hourly, err := service.HourlyOutlook(ctx, loc, now, hourlyRows)
	if err != nil {
		log.Fatalf("failed to fetch forecast: %v", err)
	}
	daily, err := service.DailyOutlook(ctx, loc, now, dailyRows)
	if err != nil {
		log.Fatalf("failed to fetch forecast: %v", err)
	}

	fmt.Printf("%s\n\n", report.Explanation)
	fmt.Printf("%s\n\n", report.AssembleHourly(hourly, refs).Render(*ascii))
	fmt.Println(report.AssembleDaily(daily, refs).Render(*ascii))
}

func resolveLocation(cfg *config.AppConfig, lat, lng float64, city, country string) (weather.Location, error) {
	switch {
	case !math.IsNaN(lat) && !math.IsNaN(lng):
		return weather.Location{Lat: &lat, Lon: &lng}, nil
	case city != "":
		return providers.ResolveCoordinates(cfg.GeocoderAPIKey, weather.Location{
			City:    city,
			Country: country,
		})
	case len(cfg.Locations) > 0:
		return providers.ResolveCoordinates(cfg.GeocoderAPIKey, cfg.Locations[0])
	default:
		return weather.Location{}, fmt.Errorf("either -lat/-lng or -city is required")
	}
}
