package apperror

import (
	"reflect"
	"strings"
	"time"

	"go-school/internal/shared/money"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Init wires gin's validator: json field names in errors plus the
// school-specific tags below.
func Init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	Register(v)
}

// Register is split out so tests can use a bare validator.
func Register(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// "2026-03"
	_ = v.RegisterValidation("yearmonth", func(fl validator.FieldLevel) bool {
		_, err := time.Parse("2006-01", fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("fee_cycle", func(fl validator.FieldLevel) bool {
		_, err := money.ParseCycle(fl.Field().String())
		return err == nil
	})
}
