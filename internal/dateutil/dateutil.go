// Package dateutil provides the calendar-day helpers used by streak
// tracking. Comparisons are by calendar date in the clock's location,
// never by elapsed duration: a practice at 23:59 followed by a check at
// 00:01 is "yesterday", not "two minutes ago".
package dateutil

import "time"

// Layout is the calendar-date format used everywhere a date is stored
// or compared.
const Layout = "2006-01-02"

// Day returns the calendar-date string for t.
func Day(t time.Time) string {
	return t.Format(Layout)
}

// IsToday reports whether d is the same calendar date as now.
// An empty date is never today.
func IsToday(d string, now time.Time) bool {
	return d != "" && d == Day(now)
}

// IsYesterday reports whether d is the calendar date immediately
// preceding now's. An empty date is never yesterday.
func IsYesterday(d string, now time.Time) bool {
	return d != "" && d == Day(now.AddDate(0, 0, -1))
}
