package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"go-school/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestToHTTP_AppError(t *testing.T) {
	err := fmt.Errorf("wrap: %w", apperror.ErrNotFound)

	httpErr := apperror.ToHTTP(err)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, apperror.CodeNotFound, httpErr.Code)
	assert.Equal(t, "Resource not found", httpErr.Message)
}

func TestToHTTP_UnknownErrorHidesMessage(t *testing.T) {
	httpErr := apperror.ToHTTP(errors.New("pq: connection refused"))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.Equal(t, apperror.CodeInternalError, httpErr.Code)
	assert.NotContains(t, httpErr.Message, "pq")
}

func TestToHTTP_ValidationErrors(t *testing.T) {
	type payload struct {
		ClassID string `validate:"required"`
	}
	err := validator.New().Struct(payload{})

	httpErr := apperror.ToHTTP(err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, apperror.CodeValidation, httpErr.Code)
	assert.Equal(t, "Classid is required", httpErr.Message)
}

func TestToHTTP_Details(t *testing.T) {
	err := apperror.ErrInvalidInput.WithDetails([]string{"a"})
	httpErr := apperror.ToHTTP(err)
	assert.Equal(t, []string{"a"}, httpErr.Details)
	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))
}

func TestWrap(t *testing.T) {
	base := errors.New("boom")
	err := apperror.Wrap(base, apperror.CodeInternalError, "failed", http.StatusInternalServerError)
	assert.ErrorIs(t, err, base)
	assert.Equal(t, "failed: boom", err.Error())
	assert.Nil(t, apperror.Wrap(nil, "", "", 0))
}

func TestRegister_SchoolTags(t *testing.T) {
	v := validator.New()
	apperror.Register(v)

	type generate struct {
		Period string `json:"period" validate:"required,yearmonth"`
		Cycle  string `json:"cycle" validate:"omitempty,fee_cycle"`
	}

	assert.NoError(t, v.Struct(generate{Period: "2026-03", Cycle: "monthly"}))
	assert.NoError(t, v.Struct(generate{Period: "2026-12"}))

	err := v.Struct(generate{Period: "2026-13"})
	var verrs validator.ValidationErrors
	if assert.ErrorAs(t, err, &verrs) {
		assert.Equal(t, "period", verrs[0].Field())
		assert.Equal(t, "yearmonth", verrs[0].Tag())
	}

	err = v.Struct(generate{Period: "2026-03", Cycle: "weekly"})
	if assert.ErrorAs(t, err, &verrs) {
		assert.Equal(t, "cycle", verrs[0].Field())
	}

	httpErr := apperror.ToHTTP(err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
}
