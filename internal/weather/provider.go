package weather

import (
	"context"
	"time"
)

// ForecastProvider abstracts a source of hourly forecasts (e.g. Open-Meteo).
// Implementations return a chronologically ascending series covering the
// requested number of days.
type ForecastProvider interface {
	Name() string
	FetchHourly(ctx context.Context, loc Location, days int) ([]Sample, error)
}

// Store is the contract the in-memory forecast cache (and any future
// persistent cache) must satisfy.
type Store interface {
	SaveSeries(loc Location, samples []Sample, fetchedAt time.Time)
	GetSeries(loc Location) ([]Sample, error)
}
