package bitbuf

import "math"

// Overflow-safe arithmetic on non-negative bit counts. Every length that
// reaches this package has already been validated as non-negative.

// AddNoOverflow adds two non-negative counts, returning ok = false when the
// result would overflow int.
func AddNoOverflow(a, b int) (int, bool) {
	if a > math.MaxInt-b {
		return 0, false
	}
	return a + b, true
}

// MulNoOverflow multiplies two non-negative counts, returning ok = false
// when the result would overflow int. Used for digit-count to bit-count
// conversion.
func MulNoOverflow(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}
