package validation

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("no_header_injection", NoHeaderInjection)
}

// NoHeaderInjection rejects line breaks in single-line fields that end up in mail headers
func NoHeaderInjection(fl validator.FieldLevel) bool {
	return !strings.ContainsAny(fl.Field().String(), "\r\n")
}
