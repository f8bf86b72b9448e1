package activity

import "time"

// ParseTimezone parses a timezone string, returning UTC as fallback.
func ParseTimezone(tz string) *time.Location {
	if tz == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}

// calendarDay projects t onto its calendar date in loc. The result is midnight
// UTC of that date so that consecutive days are exactly 24h apart.
func calendarDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the number of whole days from a to b for values
// produced by calendarDay.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
