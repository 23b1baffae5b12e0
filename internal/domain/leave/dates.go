package leave

import (
	"math"
	"time"
)

// AllocationDays returns the inclusive day count between start and end:
// ceil of the absolute difference in days, plus one. A single-day range
// yields 1.
func AllocationDays(start, end time.Time) int {
	diff := end.Sub(start).Hours() / 24
	return int(math.Ceil(math.Abs(diff))) + 1
}

// DateRange pre-computes the inclusive list of calendar days covered by
// the request, each truncated to midnight. The approval fan-out iterates
// this list, one independent upsert per day.
func DateRange(start, end time.Time) []time.Time {
	first := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	last := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location())

	var days []time.Time
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}
