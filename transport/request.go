package transport

import (
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// Request describes one outbound API request. A Request is built per
// call, fully resolved before Send, and discarded afterwards.
type Request struct {
	// Method is the HTTP method (GET, POST, PATCH, DELETE, ...).
	Method string
	// Path is the resolved resource path relative to the endpoint, with
	// all identifiers already substituted and escaped (see Path).
	Path string
	// Query are URL query parameters.
	Query map[string]string
	// Headers are request-specific headers (merged over config defaults).
	Headers map[string]string
	// Body is JSON-encoded when non-nil.
	Body any
	// IdempotencyKey is sent as the Idempotency-Key header when non-empty.
	IdempotencyKey string
}

// Response is the envelope produced for every completed HTTP exchange.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Headers are the response headers.
	Headers map[string]string
	// Body is the raw response body. Empty for 204 responses.
	Body []byte
}

// IsSuccess returns true if the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// IsError returns true if the status code is 4xx or 5xx.
func (r *Response) IsError() bool {
	return r.StatusCode >= 400
}

// Path joins path segments into a resolved request path, escaping each
// segment. Empty segments are dropped.
//
//	transport.Path("charges", id, "capture") // "/charges/chg%2F1/capture"
func Path(segments ...string) string {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		if s == "" {
			continue
		}
		parts = append(parts, url.PathEscape(s))
	}
	return "/" + strings.Join(parts, "/")
}

// NewIdempotencyKey generates a fresh idempotency key.
func NewIdempotencyKey() string {
	return uuid.NewString()
}
