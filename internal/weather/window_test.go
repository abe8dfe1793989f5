package weather

import (
	"testing"
	"time"
)

func hourlySeries(start time.Time, hours int) []Sample {
	samples := make([]Sample, 0, hours)
	for i := 0; i < hours; i++ {
		samples = append(samples, Sample{
			Timestamp:   start.Add(time.Duration(i) * time.Hour),
			Temperature: float64(i),
			Humidity:    50,
		})
	}
	return samples
}

// TestWindowHourly checks the short-horizon path: floor now to the hour,
// skip past samples, take 10, spacing preserved.
func TestWindowHourly(t *testing.T) {
	start := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	samples := hourlySeries(start, 48)

	// 10:37 floors to 10:00, so the 10:00 sample is the first row.
	now := time.Date(2026, 8, 24, 10, 37, 0, 0, time.UTC)

	got := WindowSamples(samples, time.Hour, 1, 10, now)
	if len(got) != 10 {
		t.Fatalf("expected 10 samples, got %d", len(got))
	}

	floor := now.Truncate(time.Hour)
	for i, s := range got {
		if s.Timestamp.Before(floor) {
			t.Errorf("sample %d at %v is before the hour boundary %v", i, s.Timestamp, floor)
		}
		if i > 0 {
			if d := s.Timestamp.Sub(got[i-1].Timestamp); d != time.Hour {
				t.Errorf("sample %d not spaced by one hour: %v", i, d)
			}
		}
	}
	if !got[0].Timestamp.Equal(floor) {
		t.Errorf("first sample should sit on the hour boundary: got %v, want %v", got[0].Timestamp, floor)
	}
}

// TestWindowStride: step 24 over an hourly series yields day-start samples
// without a separate code path.
func TestWindowStride(t *testing.T) {
	start := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	samples := hourlySeries(start, 24*4)

	got := WindowSamples(samples, 24*time.Hour, 24, 3, start.Add(30*time.Minute))
	if len(got) != 3 {
		t.Fatalf("expected 3 samples, got %d", len(got))
	}
	for i, s := range got {
		want := start.Add(time.Duration(i) * 24 * time.Hour)
		if !s.Timestamp.Equal(want) {
			t.Errorf("sample %d: got %v, want %v", i, s.Timestamp, want)
		}
	}
}

// TestWindowShortInput: fewer available samples than requested come back
// as-is, no error, no padding.
func TestWindowShortInput(t *testing.T) {
	start := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	samples := hourlySeries(start, 4)

	got := WindowSamples(samples, time.Hour, 1, 10, start)
	if len(got) != 4 {
		t.Fatalf("expected 4 samples, got %d", len(got))
	}
}

// TestWindowZeroCount: count 0 is empty regardless of input size.
func TestWindowZeroCount(t *testing.T) {
	start := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	samples := hourlySeries(start, 48)

	if got := WindowSamples(samples, time.Hour, 1, 0, start); len(got) != 0 {
		t.Fatalf("expected empty window for count=0, got %d samples", len(got))
	}
}

// TestWindowEmptyInput: an empty series yields an empty window.
func TestWindowEmptyInput(t *testing.T) {
	now := time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)
	if got := WindowSamples(nil, time.Hour, 1, 10, now); len(got) != 0 {
		t.Fatalf("expected empty window for empty input, got %d samples", len(got))
	}
}

// TestWindowAllPast: a series entirely behind now yields nothing.
func TestWindowAllPast(t *testing.T) {
	start := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	samples := hourlySeries(start, 24)

	now := time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)
	if got := WindowSamples(samples, time.Hour, 1, 10, now); len(got) != 0 {
		t.Fatalf("expected empty window, got %d samples", len(got))
	}
}

// TestWindowDailyAverages exercises the generic form on the daily path:
// floor now to the day so today's average is kept.
func TestWindowDailyAverages(t *testing.T) {
	days := []DailyAverage{
		{Date: time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC)},
		{Date: time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)},
		{Date: time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)},
	}

	now := time.Date(2026, 8, 24, 15, 12, 0, 0, time.UTC)
	got := Window(days, func(d DailyAverage) time.Time { return d.Date }, 24*time.Hour, 1, 7, now)

	if len(got) != 2 {
		t.Fatalf("expected 2 days, got %d", len(got))
	}
	if got[0].Date.Day() != 24 {
		t.Errorf("first day should be today, got %v", got[0].Date)
	}
}
