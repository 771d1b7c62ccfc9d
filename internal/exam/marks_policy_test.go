package exam

import (
	"testing"

	examerrors "go-school/internal/exam/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestScoreEntries(t *testing.T) {
	maxMarks := decimal.NewFromInt(50)
	roster := []RosterStudent{{ID: "a"}, {ID: "b"}}

	t.Run("absent stores zero", func(t *testing.T) {
		scored, err := ScoreEntries(maxMarks, roster, []MarkEntry{
			{StudentID: "a", MarksObtained: 42.5},
			{StudentID: "b", MarksObtained: 30, IsAbsent: true},
		})

		assert.NoError(t, err)
		assert.True(t, scored[0].Marks.Equal(decimal.RequireFromString("42.5")))
		assert.True(t, scored[1].Marks.IsZero())
		assert.True(t, scored[1].IsAbsent)
	})

	t.Run("bounds are inclusive", func(t *testing.T) {
		_, err := ScoreEntries(maxMarks, roster, []MarkEntry{
			{StudentID: "a", MarksObtained: 0},
			{StudentID: "b", MarksObtained: 50},
		})
		assert.NoError(t, err)
	})

	t.Run("above max", func(t *testing.T) {
		_, err := ScoreEntries(maxMarks, roster, []MarkEntry{{StudentID: "a", MarksObtained: 50.01}})
		assert.ErrorIs(t, err, examerrors.ErrMarksOutOfRange)
	})

	t.Run("negative", func(t *testing.T) {
		_, err := ScoreEntries(maxMarks, roster, []MarkEntry{{StudentID: "a", MarksObtained: -1}})
		assert.ErrorIs(t, err, examerrors.ErrMarksOutOfRange)
	})

	t.Run("student from another class", func(t *testing.T) {
		_, err := ScoreEntries(maxMarks, roster, []MarkEntry{{StudentID: "z", MarksObtained: 10}})
		assert.ErrorIs(t, err, examerrors.ErrStudentNotInClass)
	})

	t.Run("repeated student", func(t *testing.T) {
		_, err := ScoreEntries(maxMarks, roster, []MarkEntry{
			{StudentID: "a", MarksObtained: 10},
			{StudentID: "a", MarksObtained: 12},
		})
		assert.ErrorIs(t, err, examerrors.ErrDuplicateStudent)
	})
}

func TestBuildSheet(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	exam := Exam{ID: uuid.New(), MaxMarks: decimal.NewFromInt(40)}
	roster := []RosterStudent{{ID: a.String()}, {ID: b.String()}, {ID: c.String()}}
	marks := []Mark{
		{StudentID: a, MarksObtained: decimal.NewFromInt(30)},
		{StudentID: b, MarksObtained: decimal.Zero, IsAbsent: true},
	}

	sheet := BuildSheet(exam, roster, marks)

	assert.Len(t, sheet.Students, 3)
	assert.Equal(t, 75.0, *sheet.Students[0].Percentage)
	assert.True(t, sheet.Students[1].IsAbsent)
	assert.False(t, sheet.Students[2].Entered)
	assert.Nil(t, sheet.Students[2].MarksObtained)
	assert.Equal(t, MarksStats{Entered: 2, Absent: 1, Highest: 30, Lowest: 30, Average: 30}, sheet.Stats)
}
