package exam

import (
	examerrors "go-school/internal/exam/errors"

	"github.com/shopspring/decimal"
)

// ScoredEntry is a validated mark ready to be stored.
type ScoredEntry struct {
	StudentID string
	Marks     decimal.Decimal
	IsAbsent  bool
	Remarks   string
}

// ScoreEntries checks a marks submission against the class roster and the
// exam maximum. Absent students are stored with zero marks.
func ScoreEntries(maxMarks decimal.Decimal, roster []RosterStudent, entries []MarkEntry) ([]ScoredEntry, error) {
	inClass := make(map[string]struct{}, len(roster))
	for _, s := range roster {
		inClass[s.ID] = struct{}{}
	}

	var outside, outOfRange, repeated []string
	seen := make(map[string]struct{}, len(entries))
	scored := make([]ScoredEntry, 0, len(entries))

	for _, e := range entries {
		if _, dup := seen[e.StudentID]; dup {
			repeated = append(repeated, e.StudentID)
			continue
		}
		seen[e.StudentID] = struct{}{}

		if _, ok := inClass[e.StudentID]; !ok {
			outside = append(outside, e.StudentID)
			continue
		}

		marks := decimal.NewFromFloat(e.MarksObtained).Round(2)
		if e.IsAbsent {
			marks = decimal.Zero
		}
		if marks.IsNegative() || marks.GreaterThan(maxMarks) {
			outOfRange = append(outOfRange, e.StudentID)
			continue
		}

		scored = append(scored, ScoredEntry{
			StudentID: e.StudentID,
			Marks:     marks,
			IsAbsent:  e.IsAbsent,
			Remarks:   e.Remarks,
		})
	}

	switch {
	case len(outside) > 0:
		return nil, examerrors.ErrStudentNotInClass.WithDetails(outside)
	case len(repeated) > 0:
		return nil, examerrors.ErrDuplicateStudent.WithDetails(repeated)
	case len(outOfRange) > 0:
		return nil, examerrors.ErrMarksOutOfRange.WithDetails(outOfRange)
	}
	return scored, nil
}

// BuildSheet merges stored marks onto the roster and computes stats over the
// students who sat the exam.
func BuildSheet(exam Exam, roster []RosterStudent, marks []Mark) MarksSheetResponse {
	byStudent := make(map[string]Mark, len(marks))
	for _, m := range marks {
		byStudent[m.StudentID.String()] = m
	}

	sheet := MarksSheetResponse{
		Exam:     mapToResponse(exam),
		Students: make([]StudentMarkResponse, 0, len(roster)),
	}

	var sum decimal.Decimal
	var sat int
	var highest, lowest decimal.Decimal
	for _, s := range roster {
		row := StudentMarkResponse{StudentID: s.ID, FullName: s.FullName, AdmissionNo: s.AdmissionNo}
		m, ok := byStudent[s.ID]
		if ok {
			obtained := m.MarksObtained.InexactFloat64()
			row.MarksObtained = &obtained
			row.IsAbsent = m.IsAbsent
			row.Remarks = m.Remarks
			row.Entered = true
			if exam.MaxMarks.IsPositive() {
				pct := m.MarksObtained.Div(exam.MaxMarks).Mul(decimal.NewFromInt(100)).Round(2).InexactFloat64()
				row.Percentage = &pct
			}

			sheet.Stats.Entered++
			if m.IsAbsent {
				sheet.Stats.Absent++
			} else {
				if sat == 0 || m.MarksObtained.GreaterThan(highest) {
					highest = m.MarksObtained
				}
				if sat == 0 || m.MarksObtained.LessThan(lowest) {
					lowest = m.MarksObtained
				}
				sum = sum.Add(m.MarksObtained)
				sat++
			}
		}
		sheet.Students = append(sheet.Students, row)
	}

	if sat > 0 {
		sheet.Stats.Highest = highest.InexactFloat64()
		sheet.Stats.Lowest = lowest.InexactFloat64()
		sheet.Stats.Average = sum.Div(decimal.NewFromInt(int64(sat))).Round(2).InexactFloat64()
	}
	return sheet
}
