package customvalidator

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations adds the project's extra validation rules
// to the shared validator instance.
func RegisterCustomValidations(v *validator.Validate) error {
	return v.RegisterValidation("notblank", isNotBlank)
}

// isNotBlank rejects strings that are empty or whitespace only. The
// standard "required" tag lets "   " through, which matters for names
// and addresses typed by hand.
func isNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
