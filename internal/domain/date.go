package domain

import "time"

// Calendar values in pacer are local dates at day granularity. They are
// carried as midnight-UTC time.Time values so that equality and arithmetic
// stay trivial, and formatted as YYYY-MM-DD at the persistence boundary.

const dateLayout = "2006-01-02"

// NewDate builds a day-granularity date.
func NewDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DateOf projects an instant onto its civil date in the given location.
func DateOf(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return NewDate(y, m, d)
}

// FormatDate renders a date as YYYY-MM-DD.
func FormatDate(d time.Time) string {
	return d.Format(dateLayout)
}

// ParseDate parses a YYYY-MM-DD string into a day-granularity date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// AddDays returns the date n calendar days after d.
func AddDays(d time.Time, n int) time.Time {
	return d.AddDate(0, 0, n)
}

// StartOfWeek returns the Monday of the calendar week containing d.
func StartOfWeek(d time.Time) time.Time {
	offset := (int(d.Weekday()) + 6) % 7
	return AddDays(d, -offset)
}

// DaysBetween returns b - a in whole calendar days.
func DaysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
