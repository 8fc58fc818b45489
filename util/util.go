// Package util provides small helpers for working with optional request
// parameters, which are expressed as pointer fields so that "unset" and
// "zero" stay distinguishable on the wire.
package util

// Ptr returns a pointer to the given value.
//
//	params := ledgerpay.CreateChargeParams{Capture: util.Ptr(false)}
func Ptr[T any](v T) *T {
	return &v
}

// Deref returns the value pointed to by p, or the zero value if p is nil.
func Deref[T any](p *T) T {
	if p != nil {
		return *p
	}
	var zero T
	return zero
}
