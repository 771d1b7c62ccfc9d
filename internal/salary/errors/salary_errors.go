package salaryerrors

import (
	"go-school/internal/shared/apperror"
	"net/http"
)

var (
	ErrStructureNotFound = apperror.New(
		apperror.CodeNotFound,
		"Salary structure not found",
		http.StatusNotFound,
	)
	ErrStructureAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"A salary structure already starts on this date",
		http.StatusConflict,
	)
	ErrRecordNotFound = apperror.New(
		apperror.CodeNotFound,
		"Salary record not found",
		http.StatusNotFound,
	)
	ErrRecordAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Salary record already exists for this period",
		http.StatusConflict,
	)
	ErrStaffNotFound = apperror.New(
		apperror.CodeNotFound,
		"Staff not found",
		http.StatusNotFound,
	)
	ErrInvalidID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid salary id",
		http.StatusBadRequest,
	)
	ErrInvalidStaffID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid staff id",
		http.StatusBadRequest,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeValidation,
		"period must be formatted as YYYY-MM",
		http.StatusBadRequest,
	)
	ErrInvalidCycle = apperror.New(
		apperror.CodeValidation,
		"cycle is invalid",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeValidation,
		"status is invalid",
		http.StatusBadRequest,
	)
	ErrNotDraft = apperror.New(
		apperror.CodeInvalidState,
		"Only DRAFT salary records can be changed",
		http.StatusConflict,
	)
	ErrNotProcessed = apperror.New(
		apperror.CodeInvalidState,
		"Only PROCESSED salary records can be marked paid",
		http.StatusConflict,
	)
	ErrPayslipNotGenerated = apperror.New(
		apperror.CodeNotFound,
		"Payslip has not been generated yet",
		http.StatusNotFound,
	)
	ErrNotOwnSalary = apperror.New(
		apperror.CodeForbidden,
		"You can only view your own salary",
		http.StatusForbidden,
	)
	ErrNoStaffProfile = apperror.New(
		apperror.CodeForbidden,
		"Your account is not linked to a staff profile",
		http.StatusForbidden,
	)
)
