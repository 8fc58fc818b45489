package ledgerpay

import (
	"context"
	"time"

	"github.com/ledgerpay/ledgerpay-go/resource"
	"github.com/ledgerpay/ledgerpay-go/transport"
	"github.com/ledgerpay/ledgerpay-go/validation"
)

// RefundStatus enumerates the lifecycle states of a refund.
type RefundStatus string

const (
	RefundStatusPending   RefundStatus = "pending"
	RefundStatusSucceeded RefundStatus = "succeeded"
	RefundStatusFailed    RefundStatus = "failed"
)

// Refund is a full or partial refund of a captured charge.
type Refund struct {
	ID        string            `json:"id"`
	ChargeID  string            `json:"charge_id"`
	Amount    int64             `json:"amount"`
	Currency  string            `json:"currency"`
	Status    RefundStatus      `json:"status"`
	Reason    string            `json:"reason,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

// CreateRefundParams are the inputs for creating a refund.
type CreateRefundParams struct {
	Amount   int64             `json:"amount" validate:"required,gt=0"`
	Reason   string            `json:"reason,omitempty" validate:"omitempty,oneof=duplicate fraud customer_request"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// RefundsClient operates on the /charges/{chargeID}/refunds resource.
// Obtain one via ChargesClient.Refunds.
type RefundsClient struct {
	tr       *transport.Transport
	chargeID string
}

// res builds the nested resource client. The charge id is validated by
// each operation before this path is used.
func (c *RefundsClient) res() *resource.Client[Refund] {
	return resource.NewClient[Refund](c.tr, "charges", c.chargeID, "refunds")
}

// Create issues POST /charges/{chargeID}/refunds.
func (c *RefundsClient) Create(ctx context.Context, params CreateRefundParams, opts ...resource.Option) (*Refund, error) {
	if err := validation.RequireID("charge_id", c.chargeID); err != nil {
		return nil, err
	}
	return c.res().Create(ctx, params, opts...)
}

// Get issues GET /charges/{chargeID}/refunds/{id}. Both identifiers are
// checked before any request, charge_id first.
func (c *RefundsClient) Get(ctx context.Context, id string, opts ...resource.Option) (*Refund, error) {
	if err := validation.New().
		Require("charge_id", c.chargeID).
		Require("id", id).
		Error(); err != nil {
		return nil, err
	}
	return c.res().Get(ctx, id, opts...)
}

// List issues GET /charges/{chargeID}/refunds.
func (c *RefundsClient) List(ctx context.Context, opts ...resource.Option) (*resource.List[Refund], error) {
	if err := validation.RequireID("charge_id", c.chargeID); err != nil {
		return nil, err
	}
	return c.res().List(ctx, nil, opts...)
}
