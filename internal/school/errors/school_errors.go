package schoolerrors

import (
	"go-school/internal/shared/apperror"
	"net/http"
)

var (
	ErrSchoolNotFound = apperror.New(
		apperror.CodeNotFound,
		"School not found",
		http.StatusNotFound,
	)

	ErrInvalidSchoolID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid school ID",
		http.StatusBadRequest,
	)

	ErrJoinCodeExhausted = apperror.New(
		apperror.CodeServiceUnavailable,
		"Could not allocate a unique join code, please retry",
		http.StatusServiceUnavailable,
	)
)
