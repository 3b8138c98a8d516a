package planner

import (
	"time"
)

// Calendar dates are carried as ISO "YYYY-MM-DD" strings throughout the
// engine so that slot keys, hash inputs and persisted rows all agree on one
// representation.

// ParseDate parses an ISO calendar date.
func ParseDate(iso string) (time.Time, error) {
	return time.Parse(time.DateOnly, iso)
}

// IsMonday reports whether the ISO date parses and falls on a Monday.
func IsMonday(iso string) bool {
	t, err := ParseDate(iso)
	return err == nil && t.Weekday() == time.Monday
}

// NextMonday returns the first Monday strictly after the given time.
func NextMonday(now time.Time) string {
	days := (int(time.Monday) - int(now.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}
	return now.AddDate(0, 0, days).Format(time.DateOnly)
}

// AddDays shifts an ISO date by n calendar days. Unparseable input is
// returned unchanged.
func AddDays(iso string, days int) string {
	t, err := ParseDate(iso)
	if err != nil {
		return iso
	}
	return t.AddDate(0, 0, days).Format(time.DateOnly)
}

// DaysBetween returns the whole calendar days from one ISO date to another.
func DaysBetween(from, to string) int {
	f, err := ParseDate(from)
	if err != nil {
		return 0
	}
	t, err := ParseDate(to)
	if err != nil {
		return 0
	}
	return int(t.Sub(f).Hours() / 24)
}

// WeekIndex returns the zero-based week of slotDate relative to startMonday,
// flooring toward negative infinity for dates before the start.
func WeekIndex(startMonday, slotDate string) int {
	days := DaysBetween(startMonday, slotDate)
	if days < 0 {
		return (days - 6) / 7
	}
	return days / 7
}
