package attendance

import (
	"time"

	attendanceerrors "go-school/internal/attendance/errors"
)

const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusLate    = "late"
	StatusLeave   = "leave"

	SubjectStudent = "STUDENT"
	SubjectStaff   = "STAFF"
)

// Flow is the marking screen a submission comes from. Each flow allows its own statuses.
type Flow int

const (
	FlowStudent Flow = iota
	FlowStaff
)

func (f Flow) allows(status string) bool {
	switch status {
	case StatusPresent, StatusAbsent:
		return true
	case StatusLate:
		return f == FlowStudent
	}
	return false
}

// Mark is one person's status for a date.
type Mark struct {
	SubjectID string
	Status    string
}

// FillDefaults starts everyone on the roster at present and applies the explicit
// toggles on top. Toggles for ids outside the roster, repeated ids and statuses the
// flow does not allow are rejected; the offending ids are attached as details.
func FillDefaults(flow Flow, roster []string, toggles []Mark) ([]Mark, error) {
	index := make(map[string]int, len(roster))
	out := make([]Mark, len(roster))
	for i, id := range roster {
		index[id] = i
		out[i] = Mark{SubjectID: id, Status: StatusPresent}
	}

	var outside, invalid, repeated []string
	seen := make(map[string]struct{}, len(toggles))
	for _, t := range toggles {
		if _, dup := seen[t.SubjectID]; dup {
			repeated = append(repeated, t.SubjectID)
			continue
		}
		seen[t.SubjectID] = struct{}{}

		i, ok := index[t.SubjectID]
		if !ok {
			outside = append(outside, t.SubjectID)
			continue
		}
		if !flow.allows(t.Status) {
			invalid = append(invalid, t.SubjectID)
			continue
		}
		out[i].Status = t.Status
	}

	switch {
	case len(outside) > 0:
		return nil, attendanceerrors.ErrNotInRoster.WithDetails(outside)
	case len(repeated) > 0:
		return nil, attendanceerrors.ErrDuplicateRecord.WithDetails(repeated)
	case len(invalid) > 0:
		return nil, attendanceerrors.ErrInvalidStatus.WithDetails(invalid)
	}
	return out, nil
}

// MergeRoster overlays stored statuses on the roster. Members with no stored
// status read as present and unmarked.
func MergeRoster(roster []RosterMember, stored map[string]string) []AttendanceEntry {
	entries := make([]AttendanceEntry, len(roster))
	for i, m := range roster {
		status, marked := stored[m.ID]
		if !marked {
			status = StatusPresent
		}
		entries[i] = AttendanceEntry{
			ID:     m.ID,
			Name:   m.Name,
			Number: m.Number,
			Status: status,
			Marked: marked,
		}
	}
	return entries
}

// CountStatuses tallies entries by status.
func CountStatuses(entries []AttendanceEntry) StatusCounts {
	var c StatusCounts
	for _, e := range entries {
		c.add(e.Status, 1)
	}
	return c
}

func (c *StatusCounts) add(status string, n int) {
	switch status {
	case StatusPresent:
		c.Present += n
	case StatusAbsent:
		c.Absent += n
	case StatusLate:
		c.Late += n
	case StatusLeave:
		c.Leave += n
	}
	c.Total += n
}

// WorkingDates lists the dates in [from, to] that fall on one of the given weekdays.
func WorkingDates(from, to time.Time, weekdays []time.Weekday) []time.Time {
	working := make(map[time.Weekday]bool, len(weekdays))
	for _, d := range weekdays {
		working[d] = true
	}

	var dates []time.Time
	for d := truncateDay(from); !d.After(truncateDay(to)); d = d.AddDate(0, 0, 1) {
		if working[d.Weekday()] {
			dates = append(dates, d)
		}
	}
	return dates
}
