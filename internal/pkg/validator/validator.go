// Package validator wraps go-playground struct validation for request
// DTOs. Handlers run it after JSON binding; failures surface through
// response.ErrorWithDetails as a field→tag map.
package validator

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate checks v's `validate` tags and returns a field→tag map of
// failures, or nil when the struct is valid.
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	for _, err := range err.(validator.ValidationErrors) {
		errors[err.Field()] = err.Tag()
	}
	return errors
}
