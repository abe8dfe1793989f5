package weather

import (
	"fmt"
	"time"
)

// Location identifies the place the forecast is fetched for. Either
// coordinates are set directly, or City/Country are resolved to
// coordinates through geocoding before any fetch happens.
type Location struct {
	City    string   `json:"city,omitempty"`
	Country string   `json:"country,omitempty"`
	Lat     *float64 `json:"lat,omitempty"`
	Lon     *float64 `json:"lon,omitempty"`
}

// Key returns a canonical string key for indexing this location in stores.
func (l Location) Key() string {
	if l.Lat != nil && l.Lon != nil {
		return fmt.Sprintf("%.4f:%.4f", *l.Lat, *l.Lon)
	}
	return l.City + ":" + l.Country
}

// Sample is one hourly forecast point. Timestamps are the local civil time
// delivered by the forecast source; the advisor compares and buckets them
// as-is and never re-derives time zones.
type Sample struct {
	Timestamp   time.Time `json:"timestamp"`
	Temperature float64   `json:"temperatureC"`
	Humidity    float64   `json:"humidityPercent"`
}

// DailyAverage is the mean of all samples sharing one calendar date.
// SampleCount is at least 1; a partial day averages over whatever samples
// exist for it.
type DailyAverage struct {
	Date        time.Time `json:"date"`
	Temperature float64   `json:"temperatureC"`
	Humidity    float64   `json:"humidityPercent"`
	SampleCount int       `json:"sampleCount"`
}

// Civil re-expresses t in the naive civil frame the forecast samples use,
// dropping the zone so that "now" and sample timestamps compare on wall
// clock alone.
func Civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, time.UTC)
}
