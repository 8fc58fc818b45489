package apierrors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Well-known error codes returned by the LedgerPay API. Codes outside this
// set pass through unchanged; callers should treat the list as open.
const (
	CodeRequired        = "required"
	CodeInvalidFormat   = "invalid_format"
	CodeInvalidRequest  = "invalid_request"
	CodeUnauthorized    = "unauthorized"
	CodeForbidden       = "forbidden"
	CodeNotFound        = "not_found"
	CodeConflict        = "conflict"
	CodeTooManyRequests = "too_many_requests"
	CodeServerError     = "server_error"
	CodeInvalidResponse = "invalid_response"
	CodeUnknown         = "unknown_error"
)

// ErrorDetail is one error entry on the wire. Field is empty for errors
// that do not concern a single parameter.
type ErrorDetail struct {
	// Field names the offending request parameter, if any.
	Field string `json:"field,omitempty"`
	// Code is a machine-readable error code.
	Code string `json:"code"`
	// Message is a human-readable description.
	Message string `json:"message"`
}

// ErrorResponse is the error payload shape of the LedgerPay API. The same
// struct is used for locally raised validation failures, so the payload a
// caller inspects is identical for both origins.
type ErrorResponse struct {
	// Errors lists individual failures, in the order they were detected.
	Errors []ErrorDetail `json:"errors"`
}

// Fields returns the field names of all field-level entries, in order.
// Entries without a field are skipped.
func (r *ErrorResponse) Fields() []string {
	var fields []string
	for _, e := range r.Errors {
		if e.Field != "" {
			fields = append(fields, e.Field)
		}
	}
	return fields
}

// summary renders the entries as a single human-readable string.
func (r *ErrorResponse) summary() string {
	if r == nil || len(r.Errors) == 0 {
		return ""
	}
	parts := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		if e.Field != "" {
			parts = append(parts, e.Field+": "+e.Message)
		} else {
			parts = append(parts, e.Message)
		}
	}
	return strings.Join(parts, "; ")
}

// parseErrorResponse decodes an HTTP error body into an ErrorResponse.
// When the body is empty or not the expected shape, a single generic
// entry is synthesized from the status code so callers always receive a
// populated payload.
func parseErrorResponse(statusCode int, body []byte) *ErrorResponse {
	if len(body) > 0 {
		var resp ErrorResponse
		if err := json.Unmarshal(body, &resp); err == nil && len(resp.Errors) > 0 {
			return &resp
		}
	}
	return &ErrorResponse{Errors: []ErrorDetail{{
		Code:    codeForStatus(statusCode),
		Message: fmt.Sprintf("HTTP %d: %s", statusCode, http.StatusText(statusCode)),
	}}}
}

// codeForStatus maps an HTTP status to a generic error code, used only
// when the response body did not supply one.
func codeForStatus(statusCode int) string {
	switch {
	case statusCode == http.StatusBadRequest:
		return CodeInvalidRequest
	case statusCode == http.StatusUnauthorized:
		return CodeUnauthorized
	case statusCode == http.StatusForbidden:
		return CodeForbidden
	case statusCode == http.StatusNotFound:
		return CodeNotFound
	case statusCode == http.StatusConflict:
		return CodeConflict
	case statusCode == http.StatusTooManyRequests:
		return CodeTooManyRequests
	case statusCode >= 500:
		return CodeServerError
	default:
		return CodeUnknown
	}
}
