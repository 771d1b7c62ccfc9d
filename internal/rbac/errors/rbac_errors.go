package rbacerrors

import (
	"go-school/internal/shared/apperror"
	"net/http"
)

var (
	ErrRoleNotFound = apperror.New(
		apperror.CodeNotFound,
		"Role not found",
		http.StatusNotFound,
	)

	ErrPolicyLoadFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to load access policy",
		http.StatusInternalServerError,
	)
)
