package domain

import "time"

// DateLayout is the storage/display format for calendar dates.
const DateLayout = "2006-01-02"

// DateOf strips the time-of-day component, returning midnight UTC on the
// same calendar day. All scheduling comparisons are date-only.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return DateOf(a).Equal(DateOf(b))
}
