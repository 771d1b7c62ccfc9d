package assignmenterrors

import (
	"go-school/internal/shared/apperror"
	"net/http"
)

var (
	ErrAssignmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Teacher assignment not found",
		http.StatusNotFound,
	)
	ErrAssignmentExists = apperror.New(
		apperror.CodeConflict,
		"Teacher is already assigned to this class and subject",
		http.StatusConflict,
	)
	ErrStaffNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Staff does not belong to this school or is inactive",
		http.StatusBadRequest,
	)
	ErrClassNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Class does not belong to this school",
		http.StatusBadRequest,
	)
	ErrSubjectNotInClass = apperror.New(
		apperror.CodeInvalidInput,
		"Subject is not taught in this class",
		http.StatusBadRequest,
	)
	ErrNoStaffProfile = apperror.New(
		apperror.CodeForbidden,
		"Account is not linked to a staff record",
		http.StatusForbidden,
	)
)
