package feeerrors

import (
	"go-school/internal/shared/apperror"
	"net/http"
)

var (
	ErrFeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Fee not found",
		http.StatusNotFound,
	)
	ErrRouteNotFound = apperror.New(
		apperror.CodeNotFound,
		"Transport route not found",
		http.StatusNotFound,
	)
	ErrAssignmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Transport assignment not found",
		http.StatusNotFound,
	)
	ErrStudentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Student not found",
		http.StatusNotFound,
	)
	ErrClassNotFound = apperror.New(
		apperror.CodeNotFound,
		"Class not found",
		http.StatusNotFound,
	)
	ErrClassRequired = apperror.New(
		apperror.CodeValidation,
		"class_id is required",
		http.StatusBadRequest,
	)
	ErrInvalidCycle = apperror.New(
		apperror.CodeValidation,
		"cycle must be one of one_time, monthly, quarterly, yearly",
		http.StatusBadRequest,
	)
	ErrInvalidID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid id",
		http.StatusBadRequest,
	)
	ErrTransportAlreadyAssigned = apperror.New(
		apperror.CodeConflict,
		"Student already has a transport route",
		http.StatusConflict,
	)
	ErrInvalidYear = apperror.New(
		apperror.CodeInvalidInput,
		"year must be a four digit year",
		http.StatusBadRequest,
	)
)
