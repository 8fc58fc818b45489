package validation

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/ledgerpay/ledgerpay-go/apierrors"
)

var (
	validate *validator.Validate
	once     sync.Once
)

// getValidator returns the singleton validator instance.
func getValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// Use json tag names for field names in error messages
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return toSnakeCase(fld.Name)
			}
			return name
		})
	})
	return validate
}

// Struct validates a parameter struct using `validate` tags. Entries are
// reported in struct field declaration order, so the first missing
// required field is always first in the error payload.
func Struct(s any) error {
	err := getValidator().Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return apierrors.NewValidationDetails(apierrors.ErrorDetail{
			Code:    apierrors.CodeInvalidRequest,
			Message: "validation failed",
		})
	}

	details := make([]apierrors.ErrorDetail, 0, len(validationErrors))
	for _, e := range validationErrors {
		details = append(details, apierrors.ErrorDetail{
			Field:   e.Field(),
			Code:    codeForTag(e.Tag()),
			Message: e.Field() + " " + messageForTag(e),
		})
	}
	return apierrors.NewValidationDetails(details...)
}

// codeForTag maps a validator tag to an error code.
func codeForTag(tag string) string {
	if tag == "required" {
		return apierrors.CodeRequired
	}
	return apierrors.CodeInvalidFormat
}

// messageForTag creates a human-readable error message.
func messageForTag(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "uuid":
		return "must be a valid UUID"
	case "gt":
		return "must be greater than " + e.Param()
	case "gte":
		return "must be at least " + e.Param()
	case "len":
		return "must be exactly " + e.Param() + " characters"
	case "min":
		return "must be at least " + e.Param()
	case "max":
		return "must be at most " + e.Param()
	case "oneof":
		return "must be one of: " + e.Param()
	default:
		return "is invalid"
	}
}

// toSnakeCase converts a field name to snake_case.
func toSnakeCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune('_')
		}
		if r >= 'A' && r <= 'Z' {
			result.WriteRune(r + 32)
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}
