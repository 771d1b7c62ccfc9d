package attendanceerrors

import (
	"go-school/internal/shared/apperror"
	"net/http"
)

var (
	ErrInvalidStatus = apperror.New(
		apperror.CodeValidation,
		"Attendance status is not allowed for this roster",
		http.StatusBadRequest,
	)
	ErrNotInRoster = apperror.New(
		apperror.CodeValidation,
		"Some records do not belong to the roster",
		http.StatusBadRequest,
	)
	ErrDuplicateRecord = apperror.New(
		apperror.CodeValidation,
		"Each person may appear only once per submission",
		http.StatusBadRequest,
	)
	ErrClassNotFound = apperror.New(
		apperror.CodeNotFound,
		"Class not found",
		http.StatusNotFound,
	)
	ErrFutureDate = apperror.New(
		apperror.CodeInvalidInput,
		"Attendance cannot be recorded for a future date",
		http.StatusBadRequest,
	)
	ErrInvalidRange = apperror.New(
		apperror.CodeInvalidInput,
		"from must not be after to and the range must not exceed 366 days",
		http.StatusBadRequest,
	)
	ErrNotClassTeacher = apperror.New(
		apperror.CodeForbidden,
		"You are not assigned to this class",
		http.StatusForbidden,
	)
	ErrNoStudentProfile = apperror.New(
		apperror.CodeForbidden,
		"Account is not linked to a student record",
		http.StatusForbidden,
	)
)
