package subjecterrors

import (
	"go-school/internal/shared/apperror"
	"net/http"
)

var (
	ErrSubjectNotFound = apperror.New(
		apperror.CodeNotFound,
		"Subject not found",
		http.StatusNotFound,
	)
	ErrClassNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Class does not belong to this school",
		http.StatusBadRequest,
	)
	ErrInvalidSubjectID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid subject ID",
		http.StatusBadRequest,
	)
)
