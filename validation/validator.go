package validation

import (
	"fmt"
	"strings"

	"github.com/ledgerpay/ledgerpay-go/apierrors"
)

// Validator collects field-level validation errors in the order checks
// are applied.
type Validator struct {
	details []apierrors.ErrorDetail
}

// New creates a new Validator.
func New() *Validator {
	return &Validator{
		details: make([]apierrors.ErrorDetail, 0),
	}
}

// AddError adds a field error.
func (v *Validator) AddError(field, code, message string) {
	v.details = append(v.details, apierrors.ErrorDetail{
		Field:   field,
		Code:    code,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *Validator) HasErrors() bool {
	return len(v.details) > 0
}

// Error returns an apierrors validation error if any check failed, nil
// otherwise.
func (v *Validator) Error() error {
	if !v.HasErrors() {
		return nil
	}
	return apierrors.NewValidationDetails(v.details...)
}

// Require checks that an identifier is non-empty after trimming.
func (v *Validator) Require(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.AddError(field, apierrors.CodeRequired, field+" is required")
	}
	return v
}

// Min checks that a number meets a minimum value.
func (v *Validator) Min(field string, value, minVal int64) *Validator {
	if value < minVal {
		v.AddError(field, apierrors.CodeInvalidFormat, fmt.Sprintf("%s must be at least %d", field, minVal))
	}
	return v
}

// OneOf checks that a non-empty value is one of the allowed values.
func (v *Validator) OneOf(field, value string, allowed ...string) *Validator {
	if value == "" {
		return v
	}
	for _, a := range allowed {
		if value == a {
			return v
		}
	}
	v.AddError(field, apierrors.CodeInvalidFormat,
		fmt.Sprintf("%s must be one of: %s", field, strings.Join(allowed, ", ")))
	return v
}

// RequireID validates a single required identifier and returns an error
// if it is empty.
func RequireID(field, value string) error {
	return New().Require(field, value).Error()
}
