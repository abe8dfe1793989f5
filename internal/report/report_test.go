package report

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/openwindow/advisor/internal/weather"
)

// TestReferenceRangeDefault: the default indoor range is 16.0–22.0 in
// half-degree steps, 13 strictly increasing values.
func TestReferenceRangeDefault(t *testing.T) {
	refs := ReferenceRange(16, 22, 0.5)
	if len(refs) != 13 {
		t.Fatalf("expected 13 reference temperatures, got %d", len(refs))
	}
	if refs[0] != 16 || refs[12] != 22 {
		t.Errorf("endpoints: got %v and %v", refs[0], refs[12])
	}
	for i := 1; i < len(refs); i++ {
		if refs[i] <= refs[i-1] {
			t.Errorf("reference range not strictly increasing at %d: %v <= %v", i, refs[i], refs[i-1])
		}
	}
}

// TestReferenceRangeDegenerate: an empty or decreasing range yields nil.
func TestReferenceRangeDegenerate(t *testing.T) {
	if refs := ReferenceRange(22, 16, 0.5); refs != nil {
		t.Errorf("expected nil for a decreasing range, got %v", refs)
	}
	if refs := ReferenceRange(16, 22, 0); refs != nil {
		t.Errorf("expected nil for a zero step, got %v", refs)
	}
}

// TestAssembleHourly: one row per sample, one projection per reference,
// and the observed-temperature column projects back to the observed
// humidity.
func TestAssembleHourly(t *testing.T) {
	refs := ReferenceRange(16, 22, 0.5)
	samples := []weather.Sample{
		{Timestamp: time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC), Temperature: 22, Humidity: 50},
		{Timestamp: time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC), Temperature: 18.4, Humidity: 61},
	}

	tbl := AssembleHourly(samples, refs)
	if tbl.Title != "Hourly" {
		t.Errorf("title: got %q", tbl.Title)
	}
	if len(tbl.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(tbl.Rows))
	}
	if tbl.Rows[0].Label != "Mon 09:00" {
		t.Errorf("label: got %q", tbl.Rows[0].Label)
	}
	if len(tbl.Rows[0].Projected) != 13 {
		t.Fatalf("expected 13 projections, got %d", len(tbl.Rows[0].Projected))
	}

	// The 22.0°C column of a 22°C/50% sample is the identity projection.
	if got := tbl.Rows[0].Projected[12]; math.Abs(got-50) > 1e-9 {
		t.Errorf("identity column: expected 50, got %v", got)
	}
}

// TestAssembleDaily: daily rows carry the full weekday-and-date label.
func TestAssembleDaily(t *testing.T) {
	refs := ReferenceRange(16, 22, 0.5)
	days := []weather.DailyAverage{
		{Date: time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC), Temperature: 20, Humidity: 60, SampleCount: 24},
	}

	tbl := AssembleDaily(days, refs)
	if tbl.Title != "Daily" {
		t.Errorf("title: got %q", tbl.Title)
	}
	if len(tbl.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(tbl.Rows))
	}
	if tbl.Rows[0].Label != "Monday, Aug 24" {
		t.Errorf("label: got %q", tbl.Rows[0].Label)
	}
}

// TestRenderCharsets: the default preset draws Unicode boxes, the ascii
// flag falls back to +-| characters, and supersaturated cells render
// unclamped.
func TestRenderCharsets(t *testing.T) {
	refs := []float64{16, 22}
	samples := []weather.Sample{
		{Timestamp: time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC), Temperature: 25, Humidity: 80},
	}
	tbl := AssembleHourly(samples, refs)

	unicode := tbl.Render(false)
	if !strings.Contains(unicode, "─") {
		t.Errorf("unicode rendering should contain box-drawing characters:\n%s", unicode)
	}

	ascii := tbl.Render(true)
	if strings.Contains(ascii, "─") {
		t.Errorf("ascii rendering should not contain box-drawing characters:\n%s", ascii)
	}
	if !strings.Contains(ascii, "+") {
		t.Errorf("ascii rendering should use +-| borders:\n%s", ascii)
	}

	// 25°C/80% at 16°C is supersaturated and must show a value above 100.
	if !strings.Contains(ascii, "1") || !strings.Contains(ascii, "%") {
		t.Errorf("cells should render as percentages:\n%s", ascii)
	}
	for _, p := range tbl.Rows[0].Projected[:1] {
		if p <= 100 {
			t.Errorf("expected supersaturated projection > 100, got %v", p)
		}
	}
}

// TestRenderEmptyTable: no rows still renders the header, mirroring an
// empty forecast window.
func TestRenderEmptyTable(t *testing.T) {
	tbl := AssembleHourly(nil, []float64{16, 22})
	out := tbl.Render(true)
	if !strings.Contains(out, "16.0°C") || !strings.Contains(out, "22.0°C") {
		t.Errorf("header should list the reference temperatures:\n%s", out)
	}
}
