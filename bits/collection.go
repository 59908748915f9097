package bits

import (
	"github.com/joshuapare/bitkit/internal/bitbuf"
	"github.com/joshuapare/bitkit/pkg/types"
)

// Op selects the boolean operator for combine operations.
type Op int

const (
	And Op = iota
	Or
	Xor
)

// String returns the operator name.
func (op Op) String() string {
	switch op {
	case And:
		return "and"
	case Or:
		return "or"
	case Xor:
		return "xor"
	default:
		return "op(?)"
	}
}

// BitCollection is the read contract shared by the immutable Bits and the
// mutable MutBits. Operations that take another collection as an operand
// accept a BitCollection, so the same slicing and combine logic serves both
// concrete types.
type BitCollection interface {
	// Len returns the number of bits.
	Len() int
	// Bit returns the bit at position i.
	Bit(i int) (bool, error)
	// Slice returns bits [start, end) as a new immutable collection.
	Slice(start, end int) (*Bits, error)
	// Binary renders one '0'/'1' character per bit, most significant first.
	Binary() string
	// Hexadecimal renders lowercase hex digits; the bit length must be
	// divisible by 4.
	Hexadecimal() (string, error)
	// Octal renders octal digits; the bit length must be divisible by 3.
	Octal() (string, error)
	// Bytes returns a copy of the packed storage, zero-padded to a whole
	// number of bytes.
	Bytes() []byte
	// Count returns the number of bits equal to v.
	Count(v bool) int

	// buffer exposes the packed storage to operations within this package.
	buffer() *bitbuf.Buffer
}

// Combine applies op position-by-position and returns the result as a new
// immutable collection. The operands must have equal lengths and are left
// unmodified.
func Combine(op Op, a, b BitCollection) (*Bits, error) {
	if a.Len() != b.Len() {
		return nil, types.Errorf(types.ErrKindMismatch,
			"bits: cannot %s-combine %d bits with %d bits", op, a.Len(), b.Len())
	}
	out := a.buffer().Clone()
	if err := applyOp(out, op, b.buffer()); err != nil {
		return nil, err
	}
	return &Bits{buf: out}, nil
}

// applyOp combines o into dst in place. Lengths are validated by callers.
func applyOp(dst *bitbuf.Buffer, op Op, o *bitbuf.Buffer) error {
	switch op {
	case And:
		dst.And(o)
	case Or:
		dst.Or(o)
	case Xor:
		dst.Xor(o)
	default:
		return types.Errorf(types.ErrKindUnsupported, "bits: unknown operator %d", int(op))
	}
	return nil
}

// checkIndex validates a single-bit position against a collection length.
func checkIndex(n, i int) error {
	if i < 0 || i >= n {
		return types.Errorf(types.ErrKindIndex, "bits: index %d out of range for %d bits", i, n)
	}
	return nil
}

// checkRange validates half-open slice bounds against a collection length.
func checkRange(n, start, end int) error {
	if start < 0 || start > end || end > n {
		return types.Errorf(types.ErrKindRange, "bits: invalid range [%d, %d) for %d bits", start, end, n)
	}
	return nil
}

// operandBuffer returns a buffer that stays stable for the lifetime of an
// iterator. Mutable operands are snapshot-copied; immutable ones are read
// directly.
func operandBuffer(c BitCollection) *bitbuf.Buffer {
	if m, ok := c.(*MutBits); ok {
		return m.buf.Clone()
	}
	return c.buffer()
}
