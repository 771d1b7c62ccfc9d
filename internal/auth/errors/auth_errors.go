package autherrors

import (
	"go-school/internal/shared/apperror"
	"net/http"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid username or password",
		http.StatusUnauthorized,
	)

	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid token",
		http.StatusUnauthorized,
	)

	ErrTokenExpired = apperror.New(
		apperror.CodeUnauthorized,
		"Token expired",
		http.StatusUnauthorized,
	)

	ErrInvalidRefreshToken = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid refresh token",
		http.StatusUnauthorized,
	)

	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to generate token",
		http.StatusInternalServerError,
	)

	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid user ID",
		http.StatusBadRequest,
	)

	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)

	ErrUserInactive = apperror.New(
		apperror.CodeForbidden,
		"User account is inactive",
		http.StatusForbidden,
	)

	ErrForbidden = apperror.New(
		apperror.CodeForbidden,
		"You do not have permission to access this resource",
		http.StatusForbidden,
	)

	ErrUsernameTaken = apperror.New(
		apperror.CodeConflict,
		"Username is already taken",
		http.StatusConflict,
	)

	ErrInvalidJoinCode = apperror.New(
		apperror.CodeInvalidInput,
		"Join code is invalid",
		http.StatusBadRequest,
	)

	ErrInvalidRegisterRole = apperror.New(
		apperror.CodeInvalidInput,
		"Role must be TEACHER or STUDENT",
		http.StatusBadRequest,
	)

	ErrLinkedRecordNotFound = apperror.New(
		apperror.CodeNotFound,
		"No active staff or student record matches the given number",
		http.StatusNotFound,
	)

	ErrRecordAlreadyLinked = apperror.New(
		apperror.CodeConflict,
		"This record already has a login account",
		http.StatusConflict,
	)
)

var ErrInvalidUsername = apperror.New(
	apperror.CodeValidation,
	"Username must be 3-50 characters of a-z, 0-9, dot or underscore",
	http.StatusBadRequest,
)
