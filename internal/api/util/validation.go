package util

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors converts a gin binding error into a field→message map
// matching the service-layer validation format. Non-validator errors
// (malformed JSON and the like) come back as ok=false.
func FieldErrors(err error) (map[string]string, bool) {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil, false
	}

	fields := make(map[string]string, len(validationErrs))
	for _, fieldErr := range validationErrs {
		name := strings.ToLower(fieldErr.Field())
		fields[name] = fieldMessage(name, fieldErr)
	}
	return fields, true
}

func fieldMessage(name string, fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", name)
	case "min":
		return fmt.Sprintf("The %s must be at least %s characters.", name, fieldErr.Param())
	case "max":
		return fmt.Sprintf("The %s may not be greater than %s characters.", name, fieldErr.Param())
	case "email":
		return fmt.Sprintf("The %s must be a valid email address.", name)
	case "url":
		return fmt.Sprintf("The %s must be a valid URL.", name)
	case "oneof":
		return fmt.Sprintf("The selected %s is invalid.", name)
	default:
		return fmt.Sprintf("The %s field is invalid.", name)
	}
}
