// Package apierrors defines the error taxonomy shared by every LedgerPay
// client call.
//
// Every failure surfaces as exactly one *Error discriminated by Kind:
//
//   - KindValidation: the request never left the client. Response carries
//     one entry per offending field.
//   - KindRequest: the API answered with a 4xx/5xx status. Response carries
//     the decoded error body (or a synthesized entry when the body was not
//     decodable).
//   - KindNetwork: no HTTP response was obtained at all.
//
// Validation and request errors carry a structurally identical
// *ErrorResponse, so callers need a single inspection path regardless of
// where the failure originated:
//
//	charge, err := client.Charges.Get(ctx, id)
//	if apierrors.IsValidation(err) {
//	    // bad input, fix the call site
//	}
package apierrors
