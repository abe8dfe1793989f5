package store

import (
	"errors"
	"sync"
	"time"

	"github.com/openwindow/advisor/internal/weather"
)

var (
	// ErrNotFound is returned when no usable series is cached for a location.
	ErrNotFound = errors.New("no forecast series for location")
)

// seriesEntry holds one location's cached hourly series.
type seriesEntry struct {
	samples   []weather.Sample
	fetchedAt time.Time
}

// MemoryStore is a concurrency-safe in-memory forecast cache. A fetch
// replaces the previous series wholesale; a series older than maxAge is
// treated as absent so callers re-fetch instead of advising on stale data.
type MemoryStore struct {
	mu sync.RWMutex

	// key: location key, value: cached series
	data map[string]*seriesEntry

	maxAge time.Duration // 0 = never stale
}

// NewMemoryStore creates a new MemoryStore. If maxAge is <= 0, cached
// series never expire.
func NewMemoryStore(maxAge time.Duration) *MemoryStore {
	return &MemoryStore{
		data:   make(map[string]*seriesEntry),
		maxAge: maxAge,
	}
}

// SaveSeries caches the series for a location, replacing any previous one.
func (s *MemoryStore) SaveSeries(loc weather.Location, samples []weather.Sample, fetchedAt time.Time) {
	key := loc.Key()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = &seriesEntry{
		samples:   samples,
		fetchedAt: fetchedAt,
	}
}

// GetSeries returns the cached series for a location, or ErrNotFound when
// nothing fresh enough is cached.
func (s *MemoryStore) GetSeries(loc weather.Location) ([]weather.Sample, error) {
	key := loc.Key()

	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.data[key]
	if !ok || len(entry.samples) == 0 {
		return nil, ErrNotFound
	}

	if s.maxAge > 0 && time.Since(entry.fetchedAt) > s.maxAge {
		return nil, ErrNotFound
	}

	return entry.samples, nil
}
