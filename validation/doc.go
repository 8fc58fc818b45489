// Package validation provides the pre-flight input checks run before any
// HTTP request is issued.
//
// A failed check short-circuits the call with an apierrors validation
// error, so client-side mistakes never cost a network round-trip and the
// caller sees the same error payload shape as for a remote rejection.
//
// It supports both struct tag validation (using the validator library,
// for create/update parameter structs) and programmatic validation with
// error collection (for path identifiers).
//
// # Struct Tag Validation
//
//	type CreateChargeParams struct {
//	    Amount   int64  `json:"amount" validate:"required,gt=0"`
//	    Currency string `json:"currency" validate:"required,len=3"`
//	}
//	err := validation.Struct(params)
//
// # Programmatic Validation
//
//	err := validation.New().
//	    Require("charge_id", chargeID).
//	    Require("id", id).
//	    Error()
package validation
