package ledgerpay

import (
	"context"
	"time"

	"github.com/ledgerpay/ledgerpay-go/resource"
	"github.com/ledgerpay/ledgerpay-go/transport"
)

// TokenType enumerates how often a transaction token may be charged.
type TokenType string

const (
	TokenTypeOneTime      TokenType = "one_time"
	TokenTypeRecurring    TokenType = "recurring"
	TokenTypeSubscription TokenType = "subscription"
)

// PaymentType enumerates the payment instrument behind a token.
type PaymentType string

const (
	PaymentTypeCard         PaymentType = "card"
	PaymentTypeBankTransfer PaymentType = "bank_transfer"
	PaymentTypeWallet       PaymentType = "wallet"
)

// TransactionToken is a tokenized payment instrument. Raw instrument
// details never appear on a token; charges reference tokens by id.
type TransactionToken struct {
	ID          string            `json:"id"`
	Type        TokenType         `json:"type"`
	PaymentType PaymentType       `json:"payment_type"`
	Email       string            `json:"email,omitempty"`
	Active      bool              `json:"active"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	LastUsedAt  *time.Time        `json:"last_used_at,omitempty"`
}

// CreateTransactionTokenParams are the inputs for creating a token.
type CreateTransactionTokenParams struct {
	Type        TokenType         `json:"type" validate:"required,oneof=one_time recurring subscription"`
	PaymentType PaymentType       `json:"payment_type" validate:"required,oneof=card bank_transfer wallet"`
	Email       string            `json:"email,omitempty" validate:"omitempty,email"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// UpdateTransactionTokenParams are the inputs for updating a token.
type UpdateTransactionTokenParams struct {
	Email    string            `json:"email,omitempty" validate:"omitempty,email"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// TransactionTokensClient operates on the /transaction_tokens resource.
type TransactionTokensClient struct {
	res *resource.Client[TransactionToken]
}

func newTransactionTokensClient(tr *transport.Transport) *TransactionTokensClient {
	return &TransactionTokensClient{
		res: resource.NewClient[TransactionToken](tr, "transaction_tokens"),
	}
}

// Create issues POST /transaction_tokens.
func (c *TransactionTokensClient) Create(ctx context.Context, params CreateTransactionTokenParams, opts ...resource.Option) (*TransactionToken, error) {
	return c.res.Create(ctx, params, opts...)
}

// Get issues GET /transaction_tokens/{id}.
func (c *TransactionTokensClient) Get(ctx context.Context, id string, opts ...resource.Option) (*TransactionToken, error) {
	return c.res.Get(ctx, id, opts...)
}

// List issues GET /transaction_tokens.
func (c *TransactionTokensClient) List(ctx context.Context, opts ...resource.Option) (*resource.List[TransactionToken], error) {
	return c.res.List(ctx, nil, opts...)
}

// Update issues PATCH /transaction_tokens/{id}.
func (c *TransactionTokensClient) Update(ctx context.Context, id string, params UpdateTransactionTokenParams, opts ...resource.Option) (*TransactionToken, error) {
	return c.res.Update(ctx, id, params, opts...)
}

// Delete issues DELETE /transaction_tokens/{id}, deactivating the token.
func (c *TransactionTokensClient) Delete(ctx context.Context, id string, opts ...resource.Option) error {
	return c.res.Delete(ctx, id, opts...)
}
