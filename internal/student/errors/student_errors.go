package studenterrors

import (
	"go-school/internal/shared/apperror"
	"net/http"
)

var (
	ErrStudentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Student not found",
		http.StatusNotFound,
	)
	ErrAdmissionNoExists = apperror.New(
		apperror.CodeConflict,
		"Admission number already exists in this school",
		http.StatusConflict,
	)
	ErrInvalidStudentID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid student ID",
		http.StatusBadRequest,
	)
	ErrClassNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Class does not belong to this school",
		http.StatusBadRequest,
	)
	ErrInvalidDateOfBirth = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date_of_birth format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
