// Package types defines the error taxonomy shared by the bitkit packages.
//
// All user-facing failures carry a stable ErrKind so callers can branch on
// intent rather than on error text. Violated internal invariants (a buffer
// whose storage does not match its bit length) are engine bugs and panic
// instead of returning an error.
//
// This package has no dependencies beyond the standard library.
package types
