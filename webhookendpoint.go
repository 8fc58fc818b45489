package ledgerpay

import (
	"context"
	"time"

	"github.com/ledgerpay/ledgerpay-go/resource"
	"github.com/ledgerpay/ledgerpay-go/transport"
)

// WebhookEndpoint is a subscription delivering event notifications to a
// caller-owned URL.
type WebhookEndpoint struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Triggers  []string  `json:"triggers"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateWebhookEndpointParams are the inputs for registering a webhook
// endpoint.
type CreateWebhookEndpointParams struct {
	URL      string   `json:"url" validate:"required,url"`
	Triggers []string `json:"triggers" validate:"required,min=1"`
}

// UpdateWebhookEndpointParams are the inputs for updating a webhook
// endpoint. Zero-valued fields are left unchanged.
type UpdateWebhookEndpointParams struct {
	URL      string   `json:"url,omitempty" validate:"omitempty,url"`
	Triggers []string `json:"triggers,omitempty" validate:"omitempty,min=1"`
	Active   *bool    `json:"active,omitempty"`
}

// WebhookEndpointsClient operates on the /webhook_endpoints resource.
type WebhookEndpointsClient struct {
	res *resource.Client[WebhookEndpoint]
}

func newWebhookEndpointsClient(tr *transport.Transport) *WebhookEndpointsClient {
	return &WebhookEndpointsClient{
		res: resource.NewClient[WebhookEndpoint](tr, "webhook_endpoints"),
	}
}

// Create issues POST /webhook_endpoints.
func (c *WebhookEndpointsClient) Create(ctx context.Context, params CreateWebhookEndpointParams, opts ...resource.Option) (*WebhookEndpoint, error) {
	return c.res.Create(ctx, params, opts...)
}

// Get issues GET /webhook_endpoints/{id}.
func (c *WebhookEndpointsClient) Get(ctx context.Context, id string, opts ...resource.Option) (*WebhookEndpoint, error) {
	return c.res.Get(ctx, id, opts...)
}

// List issues GET /webhook_endpoints.
func (c *WebhookEndpointsClient) List(ctx context.Context, opts ...resource.Option) (*resource.List[WebhookEndpoint], error) {
	return c.res.List(ctx, nil, opts...)
}

// Update issues PATCH /webhook_endpoints/{id}.
func (c *WebhookEndpointsClient) Update(ctx context.Context, id string, params UpdateWebhookEndpointParams, opts ...resource.Option) (*WebhookEndpoint, error) {
	return c.res.Update(ctx, id, params, opts...)
}

// Delete issues DELETE /webhook_endpoints/{id}.
func (c *WebhookEndpointsClient) Delete(ctx context.Context, id string, opts ...resource.Option) error {
	return c.res.Delete(ctx, id, opts...)
}
