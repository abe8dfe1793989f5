// Package report turns windowed forecast samples into the advice tables:
// one row per displayed sample, one column per candidate indoor
// temperature, each cell the projected indoor relative humidity.
package report

import (
	"fmt"

	"github.com/openwindow/advisor/internal/humidity"
	"github.com/openwindow/advisor/internal/weather"
)

// Explanation is printed above the tables so the columns read as advice
// rather than raw numbers.
const Explanation = "Opening the window will bring indoor humidity closer " +
	"to the value indicated in the column corresponding to the indoor temperature"

// ReferenceRange builds the candidate indoor temperature set: strictly
// increasing from min to max inclusive by step. The advisor's default is
// 16.0–22.0 °C in half-degree steps, 13 values.
func ReferenceRange(min, max, step float64) []float64 {
	if step <= 0 || max < min {
		return nil
	}

	var refs []float64
	// Index arithmetic instead of repeated addition keeps the endpoints
	// exact for the usual half-degree steps.
	n := int((max-min)/step + 0.5)
	for i := 0; i <= n; i++ {
		refs = append(refs, min+float64(i)*step)
	}
	return refs
}

// Row is one displayed sample with its projected humidity per reference
// temperature, aligned with the table header.
type Row struct {
	Label       string    `json:"label"`
	Temperature float64   `json:"temperatureC"`
	Projected   []float64 `json:"projectedHumidityPercent"`
}

// Table is a fully assembled advice table, ready for rendering or JSON.
type Table struct {
	Title      string    `json:"title"`
	References []float64 `json:"referenceTemperaturesC"`
	Rows       []Row     `json:"rows"`
}

// AssembleHourly builds the short-horizon table from windowed hourly
// samples. Labels carry weekday and wall-clock hour.
func AssembleHourly(samples []weather.Sample, refs []float64) Table {
	t := Table{Title: "Hourly", References: refs}
	for _, s := range samples {
		t.Rows = append(t.Rows, Row{
			Label:       s.Timestamp.Format("Mon 15:04"),
			Temperature: s.Temperature,
			Projected:   humidity.Project(s.Temperature, s.Humidity, refs),
		})
	}
	return t
}

// AssembleDaily builds the multi-day table from daily averages. Labels
// carry the full weekday and date.
func AssembleDaily(days []weather.DailyAverage, refs []float64) Table {
	t := Table{Title: "Daily", References: refs}
	for _, d := range days {
		t.Rows = append(t.Rows, Row{
			Label:       d.Date.Format("Monday, Jan 02"),
			Temperature: d.Temperature,
			Projected:   humidity.Project(d.Temperature, d.Humidity, refs),
		})
	}
	return t
}

// FormatReference renders one header cell, e.g. "18.5°C".
func FormatReference(ref float64) string {
	return fmt.Sprintf("%.1f°C", ref)
}
