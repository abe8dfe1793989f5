package weather

import "time"

// Window selects the displayable slice of a chronologically ascending
// series: `now` is floored to the start of its bucket, entries strictly
// earlier than that boundary are skipped, every step-th remaining entry is
// selected, and at most count are returned.
//
// The skip is a skip-while, not a filter: sorted-ascending input is the
// caller's contract and is not re-checked here. A short or empty input
// yields a short or empty output, never an error.
func Window[E any](items []E, when func(E) time.Time, bucket time.Duration, step, count int, now time.Time) []E {
	if step < 1 || count <= 0 {
		return nil
	}

	start := now.Truncate(bucket)

	i := 0
	for i < len(items) && when(items[i]).Before(start) {
		i++
	}

	var out []E
	for ; i < len(items) && len(out) < count; i += step {
		out = append(out, items[i])
	}
	return out
}

// WindowSamples is Window specialised to hourly samples keyed on their
// timestamp, the common case for both display paths.
func WindowSamples(samples []Sample, bucket time.Duration, step, count int, now time.Time) []Sample {
	return Window(samples, func(s Sample) time.Time { return s.Timestamp }, bucket, step, count, now)
}
