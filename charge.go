package ledgerpay

import (
	"context"
	"strconv"
	"time"

	"github.com/ledgerpay/ledgerpay-go/resource"
	"github.com/ledgerpay/ledgerpay-go/transport"
	"github.com/ledgerpay/ledgerpay-go/validation"
)

// ChargeStatus enumerates the lifecycle states of a charge.
type ChargeStatus string

const (
	ChargeStatusPending    ChargeStatus = "pending"
	ChargeStatusAuthorized ChargeStatus = "authorized"
	ChargeStatusCaptured   ChargeStatus = "captured"
	ChargeStatusCanceled   ChargeStatus = "canceled"
	ChargeStatusFailed     ChargeStatus = "failed"
	ChargeStatusRefunded   ChargeStatus = "refunded"
)

// Charge is a payment charge. Amounts are integers in the currency's
// minor units.
type Charge struct {
	ID                 string            `json:"id"`
	TransactionTokenID string            `json:"transaction_token_id"`
	Amount             int64             `json:"amount"`
	CapturedAmount     int64             `json:"captured_amount,omitempty"`
	Currency           string            `json:"currency"`
	Status             ChargeStatus      `json:"status"`
	Metadata           map[string]string `json:"metadata,omitempty"`
	CreatedAt          time.Time         `json:"created_at"`
}

// CreateChargeParams are the inputs for creating a charge. Capture
// defaults to immediate capture on the API side; set it to false for an
// authorize-only charge.
type CreateChargeParams struct {
	TransactionTokenID string            `json:"transaction_token_id" validate:"required"`
	Amount             int64             `json:"amount" validate:"required,gt=0"`
	Currency           string            `json:"currency" validate:"required,len=3"`
	Capture            *bool             `json:"capture,omitempty"`
	Metadata           map[string]string `json:"metadata,omitempty"`
}

// CaptureChargeParams are the inputs for capturing an authorized charge.
// A zero Amount captures the full authorized amount.
type CaptureChargeParams struct {
	Amount int64 `json:"amount,omitempty" validate:"omitempty,gt=0"`
}

// ListChargesParams filter a charge listing. The zero value lists
// everything with server-side defaults.
type ListChargesParams struct {
	Limit  int
	Status ChargeStatus
	From   time.Time
	To     time.Time
}

func (p *ListChargesParams) query() map[string]string {
	if p == nil {
		return nil
	}
	q := make(map[string]string)
	if p.Limit > 0 {
		q["limit"] = strconv.Itoa(p.Limit)
	}
	if p.Status != "" {
		q["status"] = string(p.Status)
	}
	if !p.From.IsZero() {
		q["from"] = p.From.Format(time.RFC3339)
	}
	if !p.To.IsZero() {
		q["to"] = p.To.Format(time.RFC3339)
	}
	return q
}

// ChargesClient operates on the /charges resource.
type ChargesClient struct {
	res *resource.Client[Charge]
	tr  *transport.Transport
}

func newChargesClient(tr *transport.Transport) *ChargesClient {
	return &ChargesClient{
		res: resource.NewClient[Charge](tr, "charges"),
		tr:  tr,
	}
}

// Create issues POST /charges.
func (c *ChargesClient) Create(ctx context.Context, params CreateChargeParams, opts ...resource.Option) (*Charge, error) {
	return c.res.Create(ctx, params, opts...)
}

// Get issues GET /charges/{id}.
func (c *ChargesClient) Get(ctx context.Context, id string, opts ...resource.Option) (*Charge, error) {
	return c.res.Get(ctx, id, opts...)
}

// List issues GET /charges. params may be nil. Filter values are
// checked locally before any request is issued.
func (c *ChargesClient) List(ctx context.Context, params *ListChargesParams, opts ...resource.Option) (*resource.List[Charge], error) {
	if params != nil {
		if err := validation.New().
			Min("limit", int64(params.Limit), 0).
			OneOf("status", string(params.Status),
				string(ChargeStatusPending), string(ChargeStatusAuthorized),
				string(ChargeStatusCaptured), string(ChargeStatusCanceled),
				string(ChargeStatusFailed), string(ChargeStatusRefunded)).
			Error(); err != nil {
			return nil, err
		}
	}
	return c.res.List(ctx, params.query(), opts...)
}

// Capture issues POST /charges/{id}/capture for an authorized charge.
// params may be nil to capture the full amount.
func (c *ChargesClient) Capture(ctx context.Context, id string, params *CaptureChargeParams, opts ...resource.Option) (*Charge, error) {
	var body any
	if params != nil {
		body = params
	}
	return c.res.PostSub(ctx, id, "capture", body, opts...)
}

// Cancel issues POST /charges/{id}/cancel for a not-yet-captured charge.
func (c *ChargesClient) Cancel(ctx context.Context, id string, opts ...resource.Option) (*Charge, error) {
	return c.res.PostSub(ctx, id, "cancel", nil, opts...)
}

// Refunds returns the refund client scoped to one charge.
func (c *ChargesClient) Refunds(chargeID string) *RefundsClient {
	return &RefundsClient{tr: c.tr, chargeID: chargeID}
}
