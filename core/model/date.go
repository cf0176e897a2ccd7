package model

import "time"

// DateFormat is the wire format for dates in configuration and datasets.
const DateFormat = "2006-01-02"

// Date returns the given calendar day at midnight UTC. All dates handled by
// the planner are normalized this way; there is no time-zone handling.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Midnight normalizes t to its calendar day at midnight UTC.
func Midnight(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}

// ParseDate parses a YYYY-MM-DD date into a normalized day.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateFormat, s)
}

// IsWeekend reports whether the day falls on a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// WeekendDays returns the weekend days among the given dates.
func WeekendDays(dates []time.Time) []time.Time {
	var out []time.Time
	for _, d := range dates {
		if IsWeekend(d) {
			out = append(out, d)
		}
	}
	return out
}
