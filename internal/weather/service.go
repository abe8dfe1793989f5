package weather

import (
	"context"
	"fmt"
	"log"
	"time"
)

// Service orchestrates fetching hourly forecasts and serving the windowed
// views the advice tables are built from.
type Service struct {
	store        Store
	provider     ForecastProvider
	forecastDays int
}

// NewService creates a new Service. forecastDays is how many days of hourly
// data each fetch requests; both display paths are cut from that one series.
func NewService(store Store, provider ForecastProvider, forecastDays int) *Service {
	return &Service{
		store:        store,
		provider:     provider,
		forecastDays: forecastDays,
	}
}

// Refresh fetches a fresh hourly series for the location and caches it,
// replacing whatever was stored before.
func (s *Service) Refresh(ctx context.Context, loc Location) error {
	if s.provider == nil {
		return fmt.Errorf("no forecast provider configured")
	}

	samples, err := s.provider.FetchHourly(ctx, loc, s.forecastDays)
	if err != nil {
		return fmt.Errorf("fetch forecast for %s: %w", loc.Key(), err)
	}
	if len(samples) == 0 {
		// Keep the last good series rather than caching an empty one.
		log.Printf("empty forecast for %s; keeping cached series if any", loc.Key())
		return nil
	}

	s.store.SaveSeries(loc, samples, time.Now())
	return nil
}

// Series returns the cached hourly series for the location, fetching and
// caching one on a miss.
func (s *Service) Series(ctx context.Context, loc Location) ([]Sample, error) {
	if samples, err := s.store.GetSeries(loc); err == nil {
		return samples, nil
	}

	if err := s.Refresh(ctx, loc); err != nil {
		return nil, err
	}
	return s.store.GetSeries(loc)
}

// HourlyOutlook returns up to count hourly samples starting at the current
// hour boundary.
func (s *Service) HourlyOutlook(ctx context.Context, loc Location, now time.Time, count int) ([]Sample, error) {
	samples, err := s.Series(ctx, loc)
	if err != nil {
		return nil, err
	}
	return WindowSamples(samples, time.Hour, 1, count, now), nil
}

// DailyOutlook returns up to count daily averages starting at the current
// day boundary.
func (s *Service) DailyOutlook(ctx context.Context, loc Location, now time.Time, count int) ([]DailyAverage, error) {
	samples, err := s.Series(ctx, loc)
	if err != nil {
		return nil, err
	}

	daily := AggregateByDay(samples)
	return Window(daily, func(d DailyAverage) time.Time { return d.Date }, 24*time.Hour, 1, count, now), nil
}
