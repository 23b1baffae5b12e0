package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, min int) time.Time {
	return time.Date(2026, 3, 10, hour, min, 0, 0, time.UTC)
}

func TestComputeWorkHours(t *testing.T) {
	tests := []struct {
		name       string
		checkIn    time.Time
		checkOut   time.Time
		workHours  float64
		extraHours float64
	}{
		{"standard day", at(9, 0), at(17, 0), 8, 0},
		{"half hour overtime", at(9, 0), at(17, 30), 8.5, 0.5},
		{"short day", at(9, 0), at(13, 15), 4.25, 0},
		{"exactly the threshold yields no overtime", at(8, 0), at(16, 0), 8, 0},
		{"one minute over", at(8, 0), at(16, 1), 8.02, 0.02},
		{"long day", at(6, 0), at(20, 45), 14.75, 6.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			work, extra := ComputeWorkHours(tt.checkIn, tt.checkOut)
			assert.InDelta(t, tt.workHours, work, 1e-9)
			assert.InDelta(t, tt.extraHours, extra, 1e-9)
		})
	}
}

func TestComputeWorkHoursRoundsIndependently(t *testing.T) {
	// 8h 20m = 8.333...h; worked and overtime each round to 2 decimals.
	work, extra := ComputeWorkHours(at(9, 0), at(17, 20))
	assert.InDelta(t, 8.33, work, 1e-9)
	assert.InDelta(t, 0.33, extra, 1e-9)
}

func TestStartOfDay(t *testing.T) {
	ts := time.Date(2026, 3, 10, 15, 42, 7, 123, time.UTC)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), StartOfDay(ts))
}
