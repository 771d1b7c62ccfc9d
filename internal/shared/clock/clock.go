package clock

import "time"

// Today returns the calendar date of t as seen in loc, at midnight UTC.
// DATE columns are scanned back in that form. A nil loc means UTC.
func Today(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
