package dates

import "time"

// LocalDateString formats t as YYYY-MM-DD using its local calendar fields.
// UTC-based formatting shifts the date near midnight for any timezone with
// a non-zero offset, so the wall-clock fields are used as-is.
func LocalDateString(t time.Time) string {
	return t.Format("2006-01-02")
}

// Today returns the current local calendar date as YYYY-MM-DD.
func Today() string {
	return LocalDateString(time.Now())
}
