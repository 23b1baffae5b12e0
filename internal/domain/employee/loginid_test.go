package employee

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatLoginID(t *testing.T) {
	tests := []struct {
		name      string
		company   string
		firstName string
		lastName  string
		year      int
		serial    int
		expected  string
	}{
		{"basic", "Oineqo", "John", "Doe", 2022, 1, "OIJODO220001"},
		{"serial is zero padded", "Oineqo", "John", "Doe", 2022, 42, "OIJODO220042"},
		{"large serial", "Oineqo", "John", "Doe", 2022, 12345, "OIJODO2212345"},
		{"lowercase input is upcased", "acme corp", "jane", "smith", 2026, 7, "ACJASM260007"},
		{"single letter names used as-is", "X", "A", "B", 2026, 1, "XAB260001"},
		{"serial counter independent of names", "Oineqo", "Mary", "Poppins", 2022, 2, "OIMAPO220002"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatLoginID(tt.company, tt.firstName, tt.lastName, tt.year, tt.serial)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFormatLoginIDYearLastTwoDigits(t *testing.T) {
	assert.Equal(t, "OIJODO990001", FormatLoginID("Oineqo", "John", "Doe", 1999, 1))
	assert.Equal(t, "OIJODO000001", FormatLoginID("Oineqo", "John", "Doe", 2100, 1))
}
