package attendance

import (
	"errors"
	"testing"
	"time"

	attendanceerrors "go-school/internal/attendance/errors"
	"go-school/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
)

func TestFillDefaults(t *testing.T) {
	roster := []string{"s1", "s2", "s3"}

	t.Run("untouched roster is all present", func(t *testing.T) {
		marks, err := FillDefaults(FlowStudent, roster, nil)

		assert.NoError(t, err)
		assert.Equal(t, []Mark{
			{SubjectID: "s1", Status: StatusPresent},
			{SubjectID: "s2", Status: StatusPresent},
			{SubjectID: "s3", Status: StatusPresent},
		}, marks)
	})

	t.Run("toggles override defaults", func(t *testing.T) {
		marks, err := FillDefaults(FlowStudent, roster, []Mark{
			{SubjectID: "s2", Status: StatusAbsent},
			{SubjectID: "s3", Status: StatusLate},
		})

		assert.NoError(t, err)
		assert.Equal(t, StatusPresent, marks[0].Status)
		assert.Equal(t, StatusAbsent, marks[1].Status)
		assert.Equal(t, StatusLate, marks[2].Status)
	})

	t.Run("toggle outside roster is rejected", func(t *testing.T) {
		_, err := FillDefaults(FlowStudent, roster, []Mark{{SubjectID: "x9", Status: StatusAbsent}})

		assert.True(t, errors.Is(err, attendanceerrors.ErrNotInRoster))
		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, []string{"x9"}, appErr.Details)
	})

	t.Run("staff flow has no late", func(t *testing.T) {
		_, err := FillDefaults(FlowStaff, roster, []Mark{{SubjectID: "s1", Status: StatusLate}})
		assert.True(t, errors.Is(err, attendanceerrors.ErrInvalidStatus))
	})

	t.Run("leave cannot be submitted", func(t *testing.T) {
		_, err := FillDefaults(FlowStudent, roster, []Mark{{SubjectID: "s1", Status: StatusLeave}})
		assert.True(t, errors.Is(err, attendanceerrors.ErrInvalidStatus))
	})

	t.Run("repeated id is rejected", func(t *testing.T) {
		_, err := FillDefaults(FlowStudent, roster, []Mark{
			{SubjectID: "s1", Status: StatusAbsent},
			{SubjectID: "s1", Status: StatusPresent},
		})
		assert.True(t, errors.Is(err, attendanceerrors.ErrDuplicateRecord))
	})

	t.Run("empty roster", func(t *testing.T) {
		marks, err := FillDefaults(FlowStaff, nil, nil)
		assert.NoError(t, err)
		assert.Empty(t, marks)
	})
}

func TestMergeRoster(t *testing.T) {
	roster := []RosterMember{
		{ID: "s1", Name: "Ani"},
		{ID: "s2", Name: "Budi"},
	}

	entries := MergeRoster(roster, map[string]string{"s2": StatusAbsent})

	assert.Equal(t, AttendanceEntry{ID: "s1", Name: "Ani", Status: StatusPresent, Marked: false}, entries[0])
	assert.Equal(t, AttendanceEntry{ID: "s2", Name: "Budi", Status: StatusAbsent, Marked: true}, entries[1])
	assert.Equal(t, StatusCounts{Present: 1, Absent: 1, Total: 2}, CountStatuses(entries))
}

func TestWorkingDates(t *testing.T) {
	weekdays := []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}

	// 2026-03-06 is a Friday.
	from := time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	dates := WorkingDates(from, to, weekdays)

	assert.Len(t, dates, 3)
	assert.Equal(t, "2026-03-06", dates[0].Format("2006-01-02"))
	assert.Equal(t, "2026-03-09", dates[1].Format("2006-01-02"))
	assert.Equal(t, "2026-03-10", dates[2].Format("2006-01-02"))

	assert.Empty(t, WorkingDates(to, from, weekdays))
}
