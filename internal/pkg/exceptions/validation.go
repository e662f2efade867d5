package exceptions

import (
	"backoffice-service/internal/pkg/constvars"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FormatValidationDetails turns validator errors into field level details.
// Field names come from the json tag registered on the validator.
func FormatValidationDetails(err error) []FieldError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	details := make([]FieldError, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		details = append(details, FieldError{
			Field:   fieldErr.Field(),
			Code:    fieldErr.Tag(),
			Message: fieldErr.Field() + " " + customMessage(fieldErr),
		})
	}
	return details
}

func customMessage(fieldErr validator.FieldError) string {
	tag := fieldErr.Tag()
	message, ok := constvars.CustomValidationErrorMessages[tag]
	if !ok {
		return "is invalid"
	}
	if constvars.TagsWithParams[tag] {
		if tag == "oneof" {
			return strings.Replace(message, "%s", strings.Join(strings.Fields(fieldErr.Param()), ", "), 1)
		}
		return strings.Replace(message, "%s", fieldErr.Param(), 1)
	}
	return message
}
