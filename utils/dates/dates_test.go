package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLocalDateString(t *testing.T) {
	cases := []struct {
		name     string
		input    time.Time
		expected string
	}{
		{"mid-month", time.Date(2025, time.January, 15, 0, 0, 0, 0, time.Local), "2025-01-15"},
		{"single-digit month", time.Date(2025, time.May, 20, 0, 0, 0, 0, time.Local), "2025-05-20"},
		{"single-digit day", time.Date(2025, time.December, 5, 0, 0, 0, 0, time.Local), "2025-12-05"},
		{"single-digit month and day", time.Date(2025, time.March, 7, 0, 0, 0, 0, time.Local), "2025-03-07"},
		{"year boundary - december 31", time.Date(2024, time.December, 31, 0, 0, 0, 0, time.Local), "2024-12-31"},
		{"year boundary - january 1", time.Date(2025, time.January, 1, 0, 0, 0, 0, time.Local), "2025-01-01"},
		{"leap day", time.Date(2024, time.February, 29, 0, 0, 0, 0, time.Local), "2024-02-29"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, LocalDateString(tc.input))
		})
	}
}

func TestLocalDateString_SameDayRegardlessOfTime(t *testing.T) {
	expected := "2025-06-15"

	morning := time.Date(2025, time.June, 15, 1, 0, 0, 0, time.Local)
	noon := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.Local)
	evening := time.Date(2025, time.June, 15, 23, 59, 59, 0, time.Local)

	assert.Equal(t, expected, LocalDateString(morning))
	assert.Equal(t, expected, LocalDateString(noon))
	assert.Equal(t, expected, LocalDateString(evening))
}

func TestLocalDateString_UsesLocalFields(t *testing.T) {
	// 23:00 in a fixed +10 zone is already the next day in UTC; the local
	// calendar fields must win.
	loc := time.FixedZone("UTC+10", 10*60*60)
	late := time.Date(2025, time.June, 15, 23, 0, 0, 0, loc)

	assert.Equal(t, "2025-06-15", LocalDateString(late))
	assert.Equal(t, "2025-06-16", LocalDateString(late.UTC()))
}

func TestToday_Format(t *testing.T) {
	result := Today()

	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, result)
	assert.Equal(t, LocalDateString(time.Now()), result)
}
