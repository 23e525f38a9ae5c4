package intake

import "time"

// IsDateSelectable reports whether candidate may be chosen for a consultation:
// its calendar date in loc must not be before today's, and it must fall on a
// weekday. Time of day is ignored on both sides.
func IsDateSelectable(candidate, now time.Time, loc *time.Location) bool {
	if loc == nil {
		loc = time.Local
	}

	day := calendarDate(candidate.In(loc))
	today := calendarDate(now.In(loc))

	if day.Before(today) {
		return false
	}

	switch day.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	return true
}

// calendarDate drops the clock and zone, keeping only year/month/day.
func calendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
