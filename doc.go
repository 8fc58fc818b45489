// Package ledgerpay is the official Go client for the LedgerPay
// payment-processing API.
//
// A Client bundles one typed client per API resource, all sharing a
// single transport:
//
//	client, err := ledgerpay.New(transport.Config{
//	    Endpoint:  "https://api.ledgerpay.example/v1",
//	    AuthToken: os.Getenv("LEDGERPAY_TOKEN"),
//	})
//	if err != nil {
//	    return err
//	}
//
//	charge, err := client.Charges.Create(ctx, ledgerpay.CreateChargeParams{
//	    TransactionTokenID: token.ID,
//	    Amount:             1000, // minor units
//	    Currency:           "EUR",
//	})
//
// Every call fails with exactly one of three error kinds, discriminated
// via the apierrors package: validation (local, no request issued),
// request (the API answered 4xx/5xx) or network (no response obtained).
//
//	if apierrors.IsRequest(err) {
//	    // inspect the structured payload
//	}
package ledgerpay
