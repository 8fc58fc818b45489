// Package transport is the shared HTTP execution layer used by all
// LedgerPay resource clients.
//
// It issues exactly one HTTP request per Send call: no retries, no
// caching, no connection management beyond net/http defaults.
// Cancellation and deadlines flow through the context.
//
// Outcomes are normalized into a uniform shape:
//
//   - 2xx: a *Response with the raw body (empty for 204) and nil error.
//
//   - 4xx/5xx: the *Response plus an apierrors request error with the
//     decoded error payload.
//
//   - no response at all: an apierrors network error.
//
//     tr, err := transport.New(transport.Config{
//     Endpoint:  "https://api.ledgerpay.example/v1",
//     AuthToken: os.Getenv("LEDGERPAY_TOKEN"),
//     })
//     resp, err := tr.Send(ctx, transport.Request{
//     Method: http.MethodGet,
//     Path:   "/charges/chg_123",
//     })
package transport
