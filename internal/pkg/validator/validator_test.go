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
	assert.False(t, IsEmpty("  x  "))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("ops@staffdeck.io"))
	assert.True(t, IsValidEmail("first.last+tag@example.co.uk"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@tld"))
	assert.False(t, IsValidEmail("@example.com"))
}

func TestIsValidClock(t *testing.T) {
	assert.True(t, IsValidClock("09:00"))
	assert.True(t, IsValidClock("23:59"))
	assert.True(t, IsValidClock("00:00"))
	assert.False(t, IsValidClock("24:00"))
	assert.False(t, IsValidClock("9:00:00"))
	assert.False(t, IsValidClock("noon"))
	assert.False(t, IsValidClock(""))
}

func TestIsValidDate(t *testing.T) {
	d, ok := IsValidDate("2024-03-04")
	assert.True(t, ok)
	assert.Equal(t, 2024, d.Year())

	_, ok = IsValidDate("04-03-2024")
	assert.False(t, ok)

	_, ok = IsValidDate("2024-02-30")
	assert.False(t, ok)
}

func TestIsValidDateTime(t *testing.T) {
	_, ok := IsValidDateTime("2024-01-15T10:30:00Z")
	assert.True(t, ok)

	_, ok = IsValidDateTime("2024-01-15T10:30:00+07:00")
	assert.True(t, ok)

	_, ok = IsValidDateTime("2024-01-15 10:30:00")
	assert.False(t, ok)
}

func TestIsInSlice(t *testing.T) {
	days := []string{"monday", "weekday-range", "all-days"}
	assert.True(t, IsInSlice("monday", days))
	assert.False(t, IsInSlice("funday", days))
	assert.False(t, IsInSlice("", days))
}
