// Package ok defines the core outcome values shared by the okflow helper
// family: the Result[T] success/failure sum, the zero-payload OK marker,
// ordered pairs, and small error utilities.
//
// Highlights:
// - Success/Fail: construct Result[T]; FailFrom moves a failure across types
// - OK/Unit: explicit zero-payload success marker
// - Unwrap/MustUnwrap: leave the two-track world (MustUnwrap panics on failure)
// - NewPair/NewRPair/Unpair: order-significant two-element groupings
// - GetErrors: flatten errors produced with errors.Join
package ok
