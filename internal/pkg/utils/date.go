package utils

import "time"

const DateLayout = "2006-01-02"

// StartOfDay returns midnight of t's calendar day in t's own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DayRange returns [00:00:00.000, 23:59:59.999] of t's calendar day.
func DayRange(t time.Time) (start, end time.Time) {
	start = StartOfDay(t)
	end = start.AddDate(0, 0, 1).Add(-time.Millisecond)
	return start, end
}

// NextDay returns midnight of the day after t.
func NextDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1)
}

// FormatTimePtr formats t as RFC3339, nil-safe.
func FormatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
