// Package resource implements the generic CRUD client every LedgerPay
// resource is built from.
//
// A Client[T] binds a record type and a base path to a shared transport
// and exposes Create/Get/List/Update/Delete plus fixed sub-routes. The
// per-resource clients in the root package are thin instantiations of
// this one pattern rather than hand-written copies.
//
//	charges := resource.NewClient[Charge](tr, "charges")
//	charge, err := charges.Get(ctx, "chg_123")
//
// Required identifiers are validated before any request is issued; an
// empty id fails with a validation error and zero network calls.
package resource
