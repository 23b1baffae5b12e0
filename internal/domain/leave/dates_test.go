package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAllocationDays(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected int
	}{
		{"single day", day(2026, 3, 10), day(2026, 3, 10), 1},
		{"three days", day(2026, 3, 10), day(2026, 3, 12), 3},
		{"across a month boundary", day(2026, 3, 30), day(2026, 4, 2), 4},
		{"reversed range counts the same", day(2026, 3, 12), day(2026, 3, 10), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AllocationDays(tt.start, tt.end))
		})
	}
}

func TestAllocationDaysPartialDayRoundsUp(t *testing.T) {
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 11, 17, 0, 0, 0, time.UTC)

	// 32 hours is 1.33 days, ceil to 2, plus one inclusive day.
	assert.Equal(t, 3, AllocationDays(start, end))
}

func TestDateRange(t *testing.T) {
	days := DateRange(day(2026, 3, 10), day(2026, 3, 12))

	assert.Equal(t, []time.Time{
		day(2026, 3, 10),
		day(2026, 3, 11),
		day(2026, 3, 12),
	}, days)
}

func TestDateRangeTruncatesToMidnight(t *testing.T) {
	start := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)
	end := time.Date(2026, 3, 11, 8, 0, 0, 0, time.UTC)

	days := DateRange(start, end)
	assert.Equal(t, []time.Time{day(2026, 3, 10), day(2026, 3, 11)}, days)
}

func TestDateRangeSingleDay(t *testing.T) {
	days := DateRange(day(2026, 3, 10), day(2026, 3, 10))
	assert.Len(t, days, 1)
}
