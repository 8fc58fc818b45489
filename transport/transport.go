package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ledgerpay/ledgerpay-go/apierrors"
	"github.com/ledgerpay/ledgerpay-go/logger"
)

// Transport executes API requests against a configured endpoint. It is
// stateless beyond its immutable configuration and safe for concurrent
// use.
type Transport struct {
	httpClient *http.Client
	config     Config
	log        *logger.Logger
}

// New creates a transport with the given configuration.
func New(cfg Config) (*Transport, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	log := cfg.Logger
	if log == nil {
		log = logger.Nop()
	}

	return &Transport{
		httpClient: httpClient,
		config:     cfg,
		log:        log.WithComponent("transport"),
	}, nil
}

// Endpoint returns the configured base URL.
func (t *Transport) Endpoint() string {
	return t.config.Endpoint
}

// Unwrap returns the underlying *http.Client for advanced use cases.
func (t *Transport) Unwrap() *http.Client {
	return t.httpClient
}

// Send executes one HTTP request. On 4xx/5xx both the response envelope
// and a request error are returned, so callers that need the raw body
// still have it. On network-level failure the envelope is nil and the
// error is a network error.
func (t *Transport) Send(ctx context.Context, req Request) (*Response, error) {
	httpReq, err := t.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := t.httpClient.Do(httpReq)
	if err != nil {
		t.log.Debug("request failed", logger.Fields(
			logger.FieldMethod, req.Method,
			logger.FieldPath, req.Path,
			logger.FieldError, err.Error(),
		))
		return nil, apierrors.NewNetwork(err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apierrors.NewNetwork(fmt.Errorf("read response body: %w", err))
	}

	t.log.Debug("request completed", logger.RequestFields(req.Method, req.Path, resp.StatusCode, time.Since(start)))

	envelope := &Response{
		StatusCode: resp.StatusCode,
		Headers:    flattenHeaders(resp.Header),
		Body:       body,
	}

	if envelope.IsError() {
		return envelope, apierrors.FromResponse(resp.StatusCode, body)
	}
	return envelope, nil
}

// buildRequest constructs an *http.Request from the transport config and
// request descriptor.
func (t *Transport) buildRequest(ctx context.Context, req Request) (*http.Request, error) {
	url := strings.TrimRight(t.config.Endpoint, "/") + "/" + strings.TrimLeft(req.Path, "/")

	var bodyReader io.Reader
	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, apierrors.NewValidationDetails(apierrors.ErrorDetail{
				Code:    apierrors.CodeInvalidRequest,
				Message: fmt.Sprintf("encode request body: %v", err),
			})
		}
		bodyReader = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, url, bodyReader)
	if err != nil {
		return nil, apierrors.NewValidationDetails(apierrors.ErrorDetail{
			Code:    apierrors.CodeInvalidRequest,
			Message: fmt.Sprintf("create request: %v", err),
		})
	}

	if len(req.Query) > 0 {
		q := httpReq.URL.Query()
		for k, v := range req.Query {
			q.Set(k, v)
		}
		httpReq.URL.RawQuery = q.Encode()
	}

	for k, v := range t.config.Headers {
		httpReq.Header.Set(k, v)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	if bodyReader != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", t.config.UserAgent)
	httpReq.Header.Set("Authorization", "Bearer "+t.config.AuthToken)

	if req.IdempotencyKey != "" {
		httpReq.Header.Set("Idempotency-Key", req.IdempotencyKey)
	}

	return httpReq, nil
}

// flattenHeaders converts multi-value headers to single-value.
func flattenHeaders(h http.Header) map[string]string {
	result := make(map[string]string, len(h))
	for k, v := range h {
		if len(v) > 0 {
			result[k] = v[0]
		}
	}
	return result
}
