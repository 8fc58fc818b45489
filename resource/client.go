package resource

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/ledgerpay/ledgerpay-go/apierrors"
	"github.com/ledgerpay/ledgerpay-go/transport"
	"github.com/ledgerpay/ledgerpay-go/validation"
)

// Client is a stateless CRUD client for one resource collection. It
// holds only the shared transport and the collection's base path.
type Client[T any] struct {
	tr       *transport.Transport
	basePath string
}

// NewClient creates a resource client for the collection addressed by
// the given path segments. Segments are escaped individually, so nested
// collections can embed identifiers:
//
//	resource.NewClient[Refund](tr, "charges", chargeID, "refunds")
func NewClient[T any](tr *transport.Transport, segments ...string) *Client[T] {
	return &Client[T]{
		tr:       tr,
		basePath: transport.Path(segments...),
	}
}

// Option configures a single request.
type Option func(*transport.Request)

// WithHeader adds a header to the request.
func WithHeader(key, value string) Option {
	return func(r *transport.Request) {
		if r.Headers == nil {
			r.Headers = make(map[string]string)
		}
		r.Headers[key] = value
	}
}

// WithQuery adds a query parameter to the request.
func WithQuery(key, value string) Option {
	return func(r *transport.Request) {
		if r.Query == nil {
			r.Query = make(map[string]string)
		}
		r.Query[key] = value
	}
}

// WithIdempotencyKey overrides the generated idempotency key.
func WithIdempotencyKey(key string) Option {
	return func(r *transport.Request) {
		r.IdempotencyKey = key
	}
}

// List is the envelope returned by collection listings. Items preserve
// server order; pagination metadata is passed through only when the API
// supplied it.
type List[T any] struct {
	// Items are the records in server-provided order.
	Items []T `json:"items"`
	// HasMore reports whether further records exist beyond this page.
	HasMore bool `json:"has_more"`
	// TotalCount is the collection size, when the API reports one.
	TotalCount *int64 `json:"total_count,omitempty"`
}

// Create validates params against their struct tags, then issues
// POST <base>. A fresh idempotency key is attached unless overridden
// via WithIdempotencyKey.
func (c *Client[T]) Create(ctx context.Context, params any, opts ...Option) (*T, error) {
	if params != nil {
		if err := validation.Struct(params); err != nil {
			return nil, err
		}
	}
	req := transport.Request{
		Method:         http.MethodPost,
		Path:           c.basePath,
		Body:           params,
		IdempotencyKey: transport.NewIdempotencyKey(),
	}
	return c.do(ctx, req, opts)
}

// Get issues GET <base>/<id>.
func (c *Client[T]) Get(ctx context.Context, id string, opts ...Option) (*T, error) {
	if err := validation.RequireID("id", id); err != nil {
		return nil, err
	}
	req := transport.Request{
		Method: http.MethodGet,
		Path:   c.basePath + transport.Path(id),
	}
	return c.do(ctx, req, opts)
}

// List issues GET <base> with the given query parameters (may be nil).
func (c *Client[T]) List(ctx context.Context, query map[string]string, opts ...Option) (*List[T], error) {
	req := transport.Request{
		Method: http.MethodGet,
		Path:   c.basePath,
		Query:  query,
	}
	resp, err := c.tr.Send(ctx, applyOptions(req, opts))
	if err != nil {
		return nil, err
	}
	return decode[List[T]](resp)
}

// Update validates id and params, then issues PATCH <base>/<id>.
func (c *Client[T]) Update(ctx context.Context, id string, params any, opts ...Option) (*T, error) {
	if err := validation.RequireID("id", id); err != nil {
		return nil, err
	}
	if params != nil {
		if err := validation.Struct(params); err != nil {
			return nil, err
		}
	}
	req := transport.Request{
		Method: http.MethodPatch,
		Path:   c.basePath + transport.Path(id),
		Body:   params,
	}
	return c.do(ctx, req, opts)
}

// Delete issues DELETE <base>/<id>. A 204 response resolves with a nil
// error and no result.
func (c *Client[T]) Delete(ctx context.Context, id string, opts ...Option) error {
	if err := validation.RequireID("id", id); err != nil {
		return err
	}
	req := transport.Request{
		Method: http.MethodDelete,
		Path:   c.basePath + transport.Path(id),
	}
	_, err := c.tr.Send(ctx, applyOptions(req, opts))
	return err
}

// GetSub issues GET <base>/<segment> for fixed sub-routes such as
// /bank_accounts/primary.
func (c *Client[T]) GetSub(ctx context.Context, segment string, opts ...Option) (*T, error) {
	req := transport.Request{
		Method: http.MethodGet,
		Path:   c.basePath + transport.Path(segment),
	}
	return c.do(ctx, req, opts)
}

// PostSub issues POST <base>/<id>/<segment> for member actions such as
// /charges/{id}/capture. The body may be nil.
func (c *Client[T]) PostSub(ctx context.Context, id, segment string, body any, opts ...Option) (*T, error) {
	if err := validation.RequireID("id", id); err != nil {
		return nil, err
	}
	if body != nil {
		if err := validation.Struct(body); err != nil {
			return nil, err
		}
	}
	req := transport.Request{
		Method:         http.MethodPost,
		Path:           c.basePath + transport.Path(id, segment),
		Body:           body,
		IdempotencyKey: transport.NewIdempotencyKey(),
	}
	return c.do(ctx, req, opts)
}

func (c *Client[T]) do(ctx context.Context, req transport.Request, opts []Option) (*T, error) {
	resp, err := c.tr.Send(ctx, applyOptions(req, opts))
	if err != nil {
		return nil, err
	}
	return decode[T](resp)
}

func applyOptions(req transport.Request, opts []Option) transport.Request {
	for _, opt := range opts {
		opt(&req)
	}
	return req
}

// decode unmarshals a success envelope into the target type. An empty
// body (204) yields the zero value; an undecodable body stays inside the
// typed error taxonomy as a request error.
func decode[T any](resp *transport.Response) (*T, error) {
	var out T
	if len(resp.Body) > 0 {
		if err := json.Unmarshal(resp.Body, &out); err != nil {
			return nil, apierrors.FromDecodeFailure(resp.StatusCode, resp.Body, err)
		}
	}
	return &out, nil
}
