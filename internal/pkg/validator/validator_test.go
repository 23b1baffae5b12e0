package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty(" x "))
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"first.last@sub.domain.org",
		"user+tag@example.co",
	}
	invalid := []string{
		"",
		"plainaddress",
		"@example.com",
		"user@",
		"user@domain",
	}

	for _, email := range valid {
		assert.True(t, IsValidEmail(email), email)
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), email)
	}
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2026-03-10")
	assert.True(t, ok)
	assert.Equal(t, 2026, date.Year())

	_, ok = IsValidDate("10-03-2026")
	assert.False(t, ok)

	_, ok = IsValidDate("2026-13-01")
	assert.False(t, ok)
}

func TestIsValidClockTime(t *testing.T) {
	clock, ok := IsValidClockTime("09:30")
	assert.True(t, ok)
	assert.Equal(t, 9, clock.Hour())
	assert.Equal(t, 30, clock.Minute())

	_, ok = IsValidClockTime("24:00")
	assert.False(t, ok)

	_, ok = IsValidClockTime("9:30:00")
	assert.False(t, ok)
}

func TestIsInSlice(t *testing.T) {
	options := []string{"HR", "Employee"}

	assert.True(t, IsInSlice("HR", options))
	assert.False(t, IsInSlice("hr", options))
	assert.False(t, IsInSlice("Admin", options))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "a valid email is required"},
		{Field: "password", Message: "password must be at least 8 characters long"},
	}

	assert.Equal(t, "email: a valid email is required; password: password must be at least 8 characters long", errs.Error())
	assert.Equal(t, map[string]string{
		"email":    "a valid email is required",
		"password": "password must be at least 8 characters long",
	}, errs.ToMap())
}
