package classroomerrors

import (
	"go-school/internal/shared/apperror"
	"net/http"
)

var (
	ErrClassNotFound = apperror.New(
		apperror.CodeNotFound,
		"Class not found",
		http.StatusNotFound,
	)
	ErrClassAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"A class with the same name and section already exists for this academic year",
		http.StatusConflict,
	)
	ErrClassTeacherNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Class teacher must be active staff of this school",
		http.StatusBadRequest,
	)
	ErrInvalidClassID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid class ID",
		http.StatusBadRequest,
	)
)
