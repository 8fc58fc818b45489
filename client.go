package ledgerpay

import (
	"github.com/ledgerpay/ledgerpay-go/config"
	"github.com/ledgerpay/ledgerpay-go/transport"
)

// Client is the entry point to the LedgerPay API. All resource clients
// share one immutable transport; the Client is safe for concurrent use.
type Client struct {
	// Charges creates and inspects payment charges.
	Charges *ChargesClient
	// BankAccounts manages payout bank accounts.
	BankAccounts *BankAccountsClient
	// TransactionTokens manages tokenized payment details.
	TransactionTokens *TransactionTokensClient
	// WebhookEndpoints manages webhook subscriptions.
	WebhookEndpoints *WebhookEndpointsClient

	tr *transport.Transport
}

// New creates a client from an explicit transport configuration.
func New(cfg transport.Config) (*Client, error) {
	tr, err := transport.New(cfg)
	if err != nil {
		return nil, err
	}
	return NewWithTransport(tr), nil
}

// NewFromEnv creates a client configured from the environment (see the
// config package for the recognized variables).
func NewFromEnv(opts ...config.Option) (*Client, error) {
	cfg, err := config.Load(opts...)
	if err != nil {
		return nil, err
	}
	return New(cfg.Transport())
}

// NewWithTransport creates a client around an existing transport.
func NewWithTransport(tr *transport.Transport) *Client {
	return &Client{
		Charges:           newChargesClient(tr),
		BankAccounts:      newBankAccountsClient(tr),
		TransactionTokens: newTransactionTokensClient(tr),
		WebhookEndpoints:  newWebhookEndpointsClient(tr),
		tr:                tr,
	}
}

// Transport returns the underlying transport for advanced use cases.
func (c *Client) Transport() *transport.Transport {
	return c.tr
}
