package bits

import (
	"errors"

	"golang.org/x/text/encoding/unicode"

	"github.com/joshuapare/bitkit/internal/bitbuf"
	"github.com/joshuapare/bitkit/internal/mmfile"
	"github.com/joshuapare/bitkit/pkg/types"
)

// Bits is an immutable bit collection. It is safe to alias and to share
// between goroutines; every deriving operation allocates a new value and no
// operation ever writes to the receiver.
type Bits struct {
	buf *bitbuf.Buffer
}

// ---- Constructors ----

// FromZeros returns an n-bit collection with every bit clear.
func FromZeros(n int) (*Bits, error) {
	buf, err := newFill(n, false)
	if err != nil {
		return nil, err
	}
	return &Bits{buf: buf}, nil
}

// FromOnes returns an n-bit collection with every bit set.
func FromOnes(n int) (*Bits, error) {
	buf, err := newFill(n, true)
	if err != nil {
		return nil, err
	}
	return &Bits{buf: buf}, nil
}

// FromBinary decodes binary text, one bit per '0'/'1' character. ASCII
// whitespace and '_' separators are ignored and an optional 0b/0B prefix is
// accepted.
func FromBinary(text string) (*Bits, error) {
	buf, err := bitbuf.ParseBinary(text)
	if err != nil {
		return nil, wrapCodecErr(err, "binary")
	}
	return &Bits{buf: buf}, nil
}

// FromHexadecimal decodes hexadecimal text into 4 bits per digit. ASCII
// whitespace and '_' separators are ignored and an optional 0x/0X prefix is
// accepted.
func FromHexadecimal(text string) (*Bits, error) {
	buf, err := bitbuf.ParseHex(text)
	if err != nil {
		return nil, wrapCodecErr(err, "hexadecimal")
	}
	return &Bits{buf: buf}, nil
}

// FromOctal decodes octal text into 3 bits per digit, with an optional
// 0o/0O prefix.
func FromOctal(text string) (*Bits, error) {
	buf, err := bitbuf.ParseOctal(text)
	if err != nil {
		return nil, wrapCodecErr(err, "octal")
	}
	return &Bits{buf: buf}, nil
}

// FromBytes returns a collection of len(raw)*8 bits copied from raw.
func FromBytes(raw []byte) *Bits {
	return &Bits{buf: bitbuf.FromBytes(raw, len(raw)*8)}
}

// FromUTF8 returns the UTF-8 encoding of s as a bit collection.
func FromUTF8(s string) *Bits {
	return FromBytes([]byte(s))
}

// FromUTF16 returns the big-endian UTF-16 encoding of s, without a byte
// order mark, as a bit collection.
func FromUTF16(s string) (*Bits, error) {
	enc := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewEncoder()
	raw, err := enc.Bytes([]byte(s))
	if err != nil {
		return nil, types.Wrap(types.ErrKindCharacter, "bits: cannot encode text as UTF-16", err)
	}
	return FromBytes(raw), nil
}

// FromFile reads the file at path and returns its contents as a bit
// collection. The file is memory-mapped while being copied.
func FromFile(path string) (*Bits, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = cleanup() }()
	return FromBytes(data), nil
}

// Join concatenates the given collections into one.
func Join(parts ...BitCollection) (*Bits, error) {
	total := 0
	for _, p := range parts {
		n, ok := bitbuf.AddNoOverflow(total, p.Len())
		if !ok {
			return nil, types.Errorf(types.ErrKindLength, "bits: joined length overflows")
		}
		total = n
	}
	out := bitbuf.New(total, false)
	off := 0
	for _, p := range parts {
		out.Overwrite(off, p.buffer())
		off += p.Len()
	}
	return &Bits{buf: out}, nil
}

func newFill(n int, fill bool) (*bitbuf.Buffer, error) {
	if n < 0 {
		return nil, types.Errorf(types.ErrKindLength, "bits: invalid length %d", n)
	}
	return bitbuf.New(n, fill), nil
}

func wrapCodecErr(err error, base string) error {
	switch {
	case errors.Is(err, bitbuf.ErrBadCharacter):
		return types.Wrap(types.ErrKindCharacter, "bits: invalid "+base+" string", err)
	case errors.Is(err, bitbuf.ErrTooLong):
		return types.Wrap(types.ErrKindLength, "bits: "+base+" string too long", err)
	default:
		return err
	}
}

// ---- BitCollection contract ----

// Len returns the number of bits.
func (b *Bits) Len() int { return b.buf.Len() }

// Bit returns the bit at position i.
func (b *Bits) Bit(i int) (bool, error) {
	if err := checkIndex(b.Len(), i); err != nil {
		return false, err
	}
	return b.buf.Bit(i), nil
}

// Slice returns bits [start, end) as a new collection of length end-start.
func (b *Bits) Slice(start, end int) (*Bits, error) {
	if err := checkRange(b.Len(), start, end); err != nil {
		return nil, err
	}
	return &Bits{buf: b.buf.Slice(start, end)}, nil
}

// Binary renders one '0'/'1' character per bit, most significant first. The
// rendering round-trips exactly through FromBinary.
func (b *Bits) Binary() string { return bitbuf.FormatBinary(b.buf) }

// Hexadecimal renders the collection as lowercase hexadecimal. The bit
// length must be divisible by 4.
func (b *Bits) Hexadecimal() (string, error) {
	s, err := bitbuf.FormatHex(b.buf)
	if err != nil {
		return "", types.Wrap(types.ErrKindAlignment, "bits: cannot render as hexadecimal", err)
	}
	return s, nil
}

// Octal renders the collection as octal. The bit length must be divisible
// by 3.
func (b *Bits) Octal() (string, error) {
	s, err := bitbuf.FormatOctal(b.buf)
	if err != nil {
		return "", types.Wrap(types.ErrKindAlignment, "bits: cannot render as octal", err)
	}
	return s, nil
}

// Bytes returns a copy of the packed storage. When the length is not a
// multiple of 8, the final byte is zero-padded.
func (b *Bits) Bytes() []byte {
	return append([]byte(nil), b.buf.Bytes()...)
}

// Count returns the number of bits equal to v.
func (b *Bits) Count(v bool) int { return b.buf.Count(v) }

func (b *Bits) buffer() *bitbuf.Buffer { return b.buf }

// ---- Pure operations ----

// And returns the bitwise AND of b and other as a new collection.
func (b *Bits) And(other BitCollection) (*Bits, error) { return Combine(And, b, other) }

// Or returns the bitwise OR of b and other as a new collection.
func (b *Bits) Or(other BitCollection) (*Bits, error) { return Combine(Or, b, other) }

// Xor returns the bitwise XOR of b and other as a new collection.
func (b *Bits) Xor(other BitCollection) (*Bits, error) { return Combine(Xor, b, other) }

// Not returns a copy of b with every bit flipped.
func (b *Bits) Not() *Bits {
	out := b.buf.Clone()
	out.Invert()
	return &Bits{buf: out}
}

// Equal reports bitwise-content equality. Collections of differing lengths
// are unequal, never an error.
func (b *Bits) Equal(other BitCollection) bool {
	return bitbuf.Equal(b.buf, other.buffer())
}

// ToMutable returns an exclusively-owned mutable copy of b.
func (b *Bits) ToMutable() *MutBits {
	return &MutBits{buf: b.buf.Clone()}
}

// String renders the collection as a 0x literal when it is a whole number of
// hex digits, and as a 0b literal otherwise.
func (b *Bits) String() string {
	if n := b.Len(); n > 0 && n%4 == 0 {
		s, _ := bitbuf.FormatHex(b.buf)
		return "0x" + s
	}
	return "0b" + b.Binary()
}

// ---- Search ----

// Find returns the position of the first occurrence of pattern, or
// types.ErrNotFound when it does not occur. Searching for an empty pattern
// is an error.
func (b *Bits) Find(pattern BitCollection) (int, error) {
	return findIn(b.buf, pattern, 0, b.Len(), false)
}

// FindRange is Find restricted to positions within [start, end). With
// byteAligned, only positions divisible by 8 are considered.
func (b *Bits) FindRange(pattern BitCollection, start, end int, byteAligned bool) (int, error) {
	return findIn(b.buf, pattern, start, end, byteAligned)
}

// RFind returns the position of the last occurrence of pattern, or
// types.ErrNotFound when it does not occur.
func (b *Bits) RFind(pattern BitCollection) (int, error) {
	return rfindIn(b.buf, pattern, 0, b.Len(), false)
}

// RFindRange is RFind restricted to positions within [start, end).
func (b *Bits) RFindRange(pattern BitCollection, start, end int, byteAligned bool) (int, error) {
	return rfindIn(b.buf, pattern, start, end, byteAligned)
}

// Contains reports whether pattern occurs anywhere in b.
func (b *Bits) Contains(pattern BitCollection) bool {
	_, err := b.Find(pattern)
	return err == nil
}

func findIn(buf *bitbuf.Buffer, pattern BitCollection, start, end int, byteAligned bool) (int, error) {
	if pattern.Len() == 0 {
		return -1, types.ErrEmptyPattern
	}
	if err := checkRange(buf.Len(), start, end); err != nil {
		return -1, err
	}
	p, ok := buf.Find(pattern.buffer(), start, end, byteAligned)
	if !ok {
		return -1, types.ErrNotFound
	}
	return p, nil
}

func rfindIn(buf *bitbuf.Buffer, pattern BitCollection, start, end int, byteAligned bool) (int, error) {
	if pattern.Len() == 0 {
		return -1, types.ErrEmptyPattern
	}
	if err := checkRange(buf.Len(), start, end); err != nil {
		return -1, err
	}
	p, ok := buf.RFind(pattern.buffer(), start, end, byteAligned)
	if !ok {
		return -1, types.ErrNotFound
	}
	return p, nil
}

// ---- Iterator factories ----

// Bools returns an iterator over each bit in order.
func (b *Bits) Bools() *BoolIterator {
	return &BoolIterator{buf: b.buf}
}

// Chunks returns an iterator over fixed-width sub-collections. The final
// chunk is shorter when Len is not a multiple of width.
func (b *Bits) Chunks(width int) (*ChunksIterator, error) {
	return newChunks(b.buf, width)
}

// FindAll returns an iterator over the starting positions of every
// occurrence of pattern, overlapping matches included. An empty pattern
// yields no matches.
func (b *Bits) FindAll(pattern BitCollection) *FindAllIterator {
	return &FindAllIterator{buf: b.buf, pat: operandBuffer(pattern)}
}

// RFindAll returns every match position in reverse order.
func (b *Bits) RFindAll(pattern BitCollection) []int {
	ps := b.FindAll(pattern).Positions()
	for i, j := 0, len(ps)-1; i < j; i, j = i+1, j-1 {
		ps[i], ps[j] = ps[j], ps[i]
	}
	return ps
}
