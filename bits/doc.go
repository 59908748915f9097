// Package bits implements bit-precision data containers: sequences of
// individual bits with indexing, slicing, bitwise logic, iteration, and
// conversion to and from binary, octal and hexadecimal text.
//
// Two concrete types share one contract. Bits is immutable: it can be
// aliased freely and every deriving operation returns a new value. MutBits
// mutates its buffer in place and must be exclusively owned by its holder
// while it is being mutated; the package provides no internal locking.
// Converting between the two always copies, so mutation of one can never be
// observed through the other.
//
// Bit 0 of a collection is the most significant bit of its first storage
// byte. Collections need not be a whole number of bytes long; unused bits
// in the final byte are kept at zero.
package bits
