package apierrors

import (
	"errors"
	"fmt"
)

// Kind discriminates client errors by origin.
type Kind int

const (
	// KindValidation indicates a local pre-flight validation failure.
	// No HTTP request was issued.
	KindValidation Kind = iota
	// KindRequest indicates the API responded with a 4xx/5xx status.
	KindRequest
	// KindNetwork indicates no HTTP response was obtained (dial failure,
	// DNS, context cancellation, ...).
	KindNetwork
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindRequest:
		return "request"
	case KindNetwork:
		return "network"
	default:
		return "unknown"
	}
}

// Error is the single error type returned by LedgerPay clients.
type Error struct {
	// Kind classifies the failure origin.
	Kind Kind
	// StatusCode is the HTTP status code (0 for validation and network errors).
	StatusCode int
	// Response is the structured error payload. Nil only for KindNetwork.
	Response *ErrorResponse
	// Raw is the undecoded response body for request errors (may be nil).
	Raw []byte
	// Err is the underlying transport error for network errors.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case KindRequest:
		return fmt.Sprintf("ledgerpay: request failed (HTTP %d): %s", e.StatusCode, e.Response.summary())
	case KindNetwork:
		return fmt.Sprintf("ledgerpay: network error: %v", e.Err)
	default:
		return fmt.Sprintf("ledgerpay: validation failed: %s", e.Response.summary())
	}
}

// Unwrap returns the underlying error, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewValidation creates a validation error with one required-field entry
// per field name, preserving the given order.
func NewValidation(fields ...string) *Error {
	details := make([]ErrorDetail, 0, len(fields))
	for _, f := range fields {
		details = append(details, ErrorDetail{
			Field:   f,
			Code:    CodeRequired,
			Message: f + " is required",
		})
	}
	return NewValidationDetails(details...)
}

// NewValidationDetails creates a validation error from explicit entries.
func NewValidationDetails(details ...ErrorDetail) *Error {
	return &Error{
		Kind:     KindValidation,
		Response: &ErrorResponse{Errors: details},
	}
}

// FromResponse creates a request error from an HTTP error status and body.
// The body is decoded as an ErrorResponse when possible; otherwise a
// generic entry is synthesized from the status code. Unknown error codes
// in the body pass through unchanged.
func FromResponse(statusCode int, body []byte) *Error {
	return &Error{
		Kind:       KindRequest,
		StatusCode: statusCode,
		Response:   parseErrorResponse(statusCode, body),
		Raw:        body,
	}
}

// FromDecodeFailure creates a request error for a success response whose
// body could not be decoded into the expected record shape. The raw body
// and the decode cause are preserved for inspection.
func FromDecodeFailure(statusCode int, body []byte, cause error) *Error {
	return &Error{
		Kind:       KindRequest,
		StatusCode: statusCode,
		Response: &ErrorResponse{Errors: []ErrorDetail{{
			Code:    CodeInvalidResponse,
			Message: fmt.Sprintf("decode response body: %v", cause),
		}}},
		Raw: body,
		Err: cause,
	}
}

// NewNetwork creates a network error wrapping the transport-level cause.
func NewNetwork(err error) *Error {
	return &Error{
		Kind: KindNetwork,
		Err:  err,
	}
}

// IsValidation reports whether err is a local validation error.
func IsValidation(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindValidation
}

// IsRequest reports whether err is a remote request error.
func IsRequest(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindRequest
}

// IsNetwork reports whether err is a network error.
func IsNetwork(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindNetwork
}

// IsNotFound reports whether err is a request error with HTTP 404.
func IsNotFound(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindRequest && e.StatusCode == 404
}

// Fields returns the offending field names of a validation or request
// error, or nil when err carries no field-level entries.
func Fields(err error) []string {
	var e *Error
	if !errors.As(err, &e) || e.Response == nil {
		return nil
	}
	return e.Response.Fields()
}
