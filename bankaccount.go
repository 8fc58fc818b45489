package ledgerpay

import (
	"context"
	"time"

	"github.com/ledgerpay/ledgerpay-go/resource"
	"github.com/ledgerpay/ledgerpay-go/transport"
)

// BankAccountStatus enumerates verification states of a bank account.
type BankAccountStatus string

const (
	BankAccountStatusNew      BankAccountStatus = "new"
	BankAccountStatusVerified BankAccountStatus = "verified"
	BankAccountStatusErrored  BankAccountStatus = "errored"
)

// BankAccount is a payout destination. Only the last four digits of the
// account number are ever returned.
type BankAccount struct {
	ID           string            `json:"id"`
	HolderName   string            `json:"holder_name"`
	BankName     string            `json:"bank_name"`
	BranchCode   string            `json:"branch_code,omitempty"`
	AccountLast4 string            `json:"account_last4"`
	Currency     string            `json:"currency"`
	Primary      bool              `json:"primary"`
	Status       BankAccountStatus `json:"status"`
	CreatedAt    time.Time         `json:"created_at"`
}

// CreateBankAccountParams are the inputs for registering a bank account.
type CreateBankAccountParams struct {
	HolderName    string `json:"holder_name" validate:"required"`
	BankName      string `json:"bank_name" validate:"required"`
	BranchCode    string `json:"branch_code,omitempty"`
	AccountNumber string `json:"account_number" validate:"required"`
	Currency      string `json:"currency" validate:"required,len=3"`
	Primary       *bool  `json:"primary,omitempty"`
}

// UpdateBankAccountParams are the inputs for updating a bank account.
// Zero-valued fields are left unchanged.
type UpdateBankAccountParams struct {
	HolderName string `json:"holder_name,omitempty" validate:"omitempty,min=1"`
	Primary    *bool  `json:"primary,omitempty"`
}

// BankAccountsClient operates on the /bank_accounts resource.
type BankAccountsClient struct {
	res *resource.Client[BankAccount]
}

func newBankAccountsClient(tr *transport.Transport) *BankAccountsClient {
	return &BankAccountsClient{
		res: resource.NewClient[BankAccount](tr, "bank_accounts"),
	}
}

// Create issues POST /bank_accounts.
func (c *BankAccountsClient) Create(ctx context.Context, params CreateBankAccountParams, opts ...resource.Option) (*BankAccount, error) {
	return c.res.Create(ctx, params, opts...)
}

// Get issues GET /bank_accounts/{id}.
func (c *BankAccountsClient) Get(ctx context.Context, id string, opts ...resource.Option) (*BankAccount, error) {
	return c.res.Get(ctx, id, opts...)
}

// List issues GET /bank_accounts.
func (c *BankAccountsClient) List(ctx context.Context, opts ...resource.Option) (*resource.List[BankAccount], error) {
	return c.res.List(ctx, nil, opts...)
}

// Update issues PATCH /bank_accounts/{id}.
func (c *BankAccountsClient) Update(ctx context.Context, id string, params UpdateBankAccountParams, opts ...resource.Option) (*BankAccount, error) {
	return c.res.Update(ctx, id, params, opts...)
}

// Delete issues DELETE /bank_accounts/{id}.
func (c *BankAccountsClient) Delete(ctx context.Context, id string, opts ...resource.Option) error {
	return c.res.Delete(ctx, id, opts...)
}

// GetPrimary issues GET /bank_accounts/primary, returning the account
// currently flagged as the payout default.
func (c *BankAccountsClient) GetPrimary(ctx context.Context, opts ...resource.Option) (*BankAccount, error) {
	return c.res.GetSub(ctx, "primary", opts...)
}
