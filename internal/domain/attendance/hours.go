package attendance

import (
	"math"
	"time"
)

// StandardWorkHours is the daily threshold above which time counts as
// overtime. It is a fixed constant, not per-employee configurable.
const StandardWorkHours = 8.0

// ComputeWorkHours derives worked and overtime hours from a check-in/
// check-out pair. Both values are rounded to 2 decimals independently,
// half-up. Overtime stays 0 unless worked hours exceed the standard
// threshold.
func ComputeWorkHours(checkIn, checkOut time.Time) (workHours, extraHours float64) {
	elapsed := checkOut.Sub(checkIn).Hours()
	workHours = round2(elapsed)
	if elapsed > StandardWorkHours {
		extraHours = round2(elapsed - StandardWorkHours)
	}
	return workHours, extraHours
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
