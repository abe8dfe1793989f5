package weather

import "time"

// AggregateByDay reduces an ascending hourly series to one mean entry per
// calendar date, in first-appearance order. Sorted input keeps each date's
// samples contiguous, so this is a single pass over maximal same-date runs
// rather than a grouping that re-sorts.
//
// Every sample in a day weighs the same regardless of spacing; a day with
// one sample yields an average equal to that sample.
func AggregateByDay(samples []Sample) []DailyAverage {
	var out []DailyAverage

	i := 0
	for i < len(samples) {
		y, m, d := samples[i].Timestamp.Date()
		loc := samples[i].Timestamp.Location()

		var sumTemp, sumHumidity float64
		n := 0
		for i < len(samples) {
			yy, mm, dd := samples[i].Timestamp.Date()
			if yy != y || mm != m || dd != d {
				break
			}
			sumTemp += samples[i].Temperature
			sumHumidity += samples[i].Humidity
			n++
			i++
		}

		out = append(out, DailyAverage{
			Date:        time.Date(y, m, d, 0, 0, 0, 0, loc),
			Temperature: sumTemp / float64(n),
			Humidity:    sumHumidity / float64(n),
			SampleCount: n,
		})
	}

	return out
}
