package bits

import (
	"github.com/joshuapare/bitkit/internal/bitbuf"
	"github.com/joshuapare/bitkit/pkg/types"
)

// MutBits is a mutable bit collection. Every content-changing operation
// mutates the buffer in place and reports success or failure; none returns a
// new value. A MutBits must be exclusively owned by its holder for the
// duration of any mutating call; concurrent mutation is undefined and the
// type provides no internal locking.
type MutBits struct {
	buf *bitbuf.Buffer
}

// ---- Constructors ----

// MutFromZeros returns an n-bit mutable collection with every bit clear.
func MutFromZeros(n int) (*MutBits, error) {
	buf, err := newFill(n, false)
	if err != nil {
		return nil, err
	}
	return &MutBits{buf: buf}, nil
}

// MutFromOnes returns an n-bit mutable collection with every bit set.
func MutFromOnes(n int) (*MutBits, error) {
	buf, err := newFill(n, true)
	if err != nil {
		return nil, err
	}
	return &MutBits{buf: buf}, nil
}

// MutFromBinary decodes binary text into a mutable collection. It accepts
// the same input as FromBinary.
func MutFromBinary(text string) (*MutBits, error) {
	buf, err := bitbuf.ParseBinary(text)
	if err != nil {
		return nil, wrapCodecErr(err, "binary")
	}
	return &MutBits{buf: buf}, nil
}

// MutFromHexadecimal decodes hexadecimal text into a mutable collection. It
// accepts the same input as FromHexadecimal.
func MutFromHexadecimal(text string) (*MutBits, error) {
	buf, err := bitbuf.ParseHex(text)
	if err != nil {
		return nil, wrapCodecErr(err, "hexadecimal")
	}
	return &MutBits{buf: buf}, nil
}

// MutFromOctal decodes octal text into a mutable collection. It accepts the
// same input as FromOctal.
func MutFromOctal(text string) (*MutBits, error) {
	buf, err := bitbuf.ParseOctal(text)
	if err != nil {
		return nil, wrapCodecErr(err, "octal")
	}
	return &MutBits{buf: buf}, nil
}

// MutFromBytes returns a mutable collection of len(raw)*8 bits copied from
// raw.
func MutFromBytes(raw []byte) *MutBits {
	return &MutBits{buf: bitbuf.FromBytes(raw, len(raw)*8)}
}

// ---- BitCollection contract ----

// Len returns the number of bits.
func (m *MutBits) Len() int { return m.buf.Len() }

// Bit returns the bit at position i.
func (m *MutBits) Bit(i int) (bool, error) {
	if err := checkIndex(m.Len(), i); err != nil {
		return false, err
	}
	return m.buf.Bit(i), nil
}

// Slice returns bits [start, end) as a new immutable collection.
func (m *MutBits) Slice(start, end int) (*Bits, error) {
	if err := checkRange(m.Len(), start, end); err != nil {
		return nil, err
	}
	return &Bits{buf: m.buf.Slice(start, end)}, nil
}

// Binary renders one '0'/'1' character per bit, most significant first.
func (m *MutBits) Binary() string { return bitbuf.FormatBinary(m.buf) }

// Hexadecimal renders the collection as lowercase hexadecimal. The bit
// length must be divisible by 4.
func (m *MutBits) Hexadecimal() (string, error) {
	s, err := bitbuf.FormatHex(m.buf)
	if err != nil {
		return "", types.Wrap(types.ErrKindAlignment, "bits: cannot render as hexadecimal", err)
	}
	return s, nil
}

// Octal renders the collection as octal. The bit length must be divisible
// by 3.
func (m *MutBits) Octal() (string, error) {
	s, err := bitbuf.FormatOctal(m.buf)
	if err != nil {
		return "", types.Wrap(types.ErrKindAlignment, "bits: cannot render as octal", err)
	}
	return s, nil
}

// Bytes returns a copy of the packed storage, zero-padded to a whole number
// of bytes.
func (m *MutBits) Bytes() []byte {
	return append([]byte(nil), m.buf.Bytes()...)
}

// Count returns the number of bits equal to v.
func (m *MutBits) Count(v bool) int { return m.buf.Count(v) }

func (m *MutBits) buffer() *bitbuf.Buffer { return m.buf }

// ---- In-place mutation ----

// SetBit overwrites exactly one bit.
func (m *MutBits) SetBit(i int, v bool) error {
	if err := checkIndex(m.Len(), i); err != nil {
		return err
	}
	m.buf.SetBit(i, v)
	return nil
}

// SetSlice replaces bits [start, end) with the content of src. The
// replacement length is src.Len(), which may differ from end-start: the
// collection then shrinks or grows, and bits after end shift to follow the
// inserted region contiguously.
func (m *MutBits) SetSlice(start, end int, src BitCollection) error {
	n := m.Len()
	if start < 0 || start > end || start > n {
		return types.Errorf(types.ErrKindRange,
			"bits: invalid slice bounds [%d, %d) for %d bits", start, end, n)
	}
	if end > n {
		return types.Errorf(types.ErrKindIndex,
			"bits: slice end %d out of range for %d bits", end, n)
	}
	sb := src.buffer()
	if sb == m.buf {
		// Self-assignment reads from a stable copy.
		sb = sb.Clone()
	}
	if sb.Len() == end-start {
		m.buf.Overwrite(start, sb)
	} else {
		m.buf.Splice(start, end, sb)
	}
	return nil
}

// And combines other into the receiver in place. Lengths must match; other
// is left unmodified.
func (m *MutBits) And(other BitCollection) error { return m.combine(And, other) }

// Or combines other into the receiver in place. Lengths must match; other
// is left unmodified.
func (m *MutBits) Or(other BitCollection) error { return m.combine(Or, other) }

// Xor combines other into the receiver in place. Lengths must match; other
// is left unmodified.
func (m *MutBits) Xor(other BitCollection) error { return m.combine(Xor, other) }

func (m *MutBits) combine(op Op, other BitCollection) error {
	if m.Len() != other.Len() {
		return types.Errorf(types.ErrKindMismatch,
			"bits: cannot %s-combine %d bits with %d bits", op, m.Len(), other.Len())
	}
	return applyOp(m.buf, op, other.buffer())
}

// Invert flips every bit in place.
func (m *MutBits) Invert() { m.buf.Invert() }

// Append extends the receiver with the content of other.
func (m *MutBits) Append(other BitCollection) error {
	if _, ok := bitbuf.AddNoOverflow(m.Len(), other.Len()); !ok {
		return types.Errorf(types.ErrKindLength, "bits: appended length overflows")
	}
	m.buf.Append(other.buffer())
	return nil
}

// Replace substitutes every non-overlapping occurrence of old with new,
// scanning left to right, and returns the number of replacements made.
// Replacing an empty pattern is an error.
func (m *MutBits) Replace(old, new BitCollection) (int, error) {
	if old.Len() == 0 {
		return 0, types.ErrEmptyPattern
	}
	ob, nb := old.buffer(), new.buffer()
	if ob == m.buf {
		ob = ob.Clone()
	}
	if nb == m.buf {
		nb = nb.Clone()
	}
	count := 0
	pos := 0
	for {
		p, ok := m.buf.Find(ob, pos, m.buf.Len(), false)
		if !ok {
			return count, nil
		}
		m.buf.Splice(p, p+ob.Len(), nb)
		pos = p + nb.Len()
		count++
	}
}

// Snapshot returns a frozen immutable copy of the current content. Later
// mutation of the receiver is never observed through the snapshot.
func (m *MutBits) Snapshot() *Bits {
	return &Bits{buf: m.buf.Clone()}
}

// Equal reports bitwise-content equality with another collection.
func (m *MutBits) Equal(other BitCollection) bool {
	return bitbuf.Equal(m.buf, other.buffer())
}

// String renders the collection as a 0x literal when it is a whole number of
// hex digits, and as a 0b literal otherwise.
func (m *MutBits) String() string {
	if n := m.Len(); n > 0 && n%4 == 0 {
		s, _ := bitbuf.FormatHex(m.buf)
		return "0x" + s
	}
	return "0b" + m.Binary()
}

// ---- Iterator factories ----
//
// Iterators over a MutBits snapshot-copy its buffer at creation, so
// mutating the collection while an iterator is live does not disturb the
// values the iterator yields.

// Bools returns an iterator over each bit of the current content.
func (m *MutBits) Bools() *BoolIterator {
	return &BoolIterator{buf: m.buf.Clone()}
}

// Chunks returns an iterator over fixed-width sub-collections of the
// current content.
func (m *MutBits) Chunks(width int) (*ChunksIterator, error) {
	return newChunks(m.buf.Clone(), width)
}

// FindAll returns an iterator over every occurrence of pattern in the
// current content, overlapping matches included.
func (m *MutBits) FindAll(pattern BitCollection) *FindAllIterator {
	return &FindAllIterator{buf: m.buf.Clone(), pat: operandBuffer(pattern)}
}
