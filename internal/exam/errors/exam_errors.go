package examerrors

import (
	"go-school/internal/shared/apperror"
	"net/http"
)

var (
	ErrExamNotFound = apperror.New(
		apperror.CodeNotFound,
		"Exam not found",
		http.StatusNotFound,
	)
	ErrInvalidExamID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid exam id",
		http.StatusBadRequest,
	)
	ErrClassNotFound = apperror.New(
		apperror.CodeNotFound,
		"Class not found",
		http.StatusNotFound,
	)
	ErrSubjectNotInClass = apperror.New(
		apperror.CodeValidation,
		"Subject is not taught in this class",
		http.StatusBadRequest,
	)
	ErrMarksOutOfRange = apperror.New(
		apperror.CodeValidation,
		"Marks must be between 0 and the exam maximum",
		http.StatusBadRequest,
	)
	ErrStudentNotInClass = apperror.New(
		apperror.CodeValidation,
		"Some students do not belong to the exam's class",
		http.StatusBadRequest,
	)
	ErrDuplicateStudent = apperror.New(
		apperror.CodeValidation,
		"Each student may appear only once per submission",
		http.StatusBadRequest,
	)
	ErrMaxBelowEntered = apperror.New(
		apperror.CodeInvalidState,
		"Maximum marks cannot be lower than marks already entered",
		http.StatusConflict,
	)
	ErrNotClassTeacher = apperror.New(
		apperror.CodeForbidden,
		"You are not assigned to this class",
		http.StatusForbidden,
	)
)
