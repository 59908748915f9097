// Package bitbuf implements the packed storage behind the public bit
// collection types.
//
// A Buffer holds nbits bits packed big-endian within each byte: bit 0 of the
// buffer is the most significant bit of data[0]. The final byte may be only
// partially used; its unused low-order bits are always zero, so whole-byte
// comparison and combination are exact.
//
// Callers are responsible for bounds and length validation. The public bits
// package performs all of it before reaching this layer.
package bitbuf

import (
	"bytes"
	"fmt"
	"math/bits"
)

// Buffer is a packed sequence of bits. The zero value is an empty buffer.
type Buffer struct {
	data  []byte
	nbits int
}

// byteLen returns the storage size in bytes for n bits.
func byteLen(n int) int { return (n + 7) / 8 }

// New returns a buffer of n bits, all set to fill.
func New(n int, fill bool) *Buffer {
	b := &Buffer{data: make([]byte, byteLen(n)), nbits: n}
	if fill {
		for i := range b.data {
			b.data[i] = 0xFF
		}
		b.maskPadding()
	}
	return b
}

// FromBytes returns a buffer of n bits copied from raw. Bits beyond n in the
// final used byte of raw are discarded.
func FromBytes(raw []byte, n int) *Buffer {
	if n < 0 || n > len(raw)*8 {
		panic(fmt.Sprintf("bitbuf: %d bits do not fit in %d bytes", n, len(raw)))
	}
	b := &Buffer{data: make([]byte, byteLen(n)), nbits: n}
	copy(b.data, raw[:byteLen(n)])
	b.maskPadding()
	return b
}

// Len returns the number of valid bits.
func (b *Buffer) Len() int { return b.nbits }

// Bytes returns the packed storage. Unused bits in the final byte are zero.
// Callers must not modify the returned slice.
func (b *Buffer) Bytes() []byte { return b.data }

// Clone returns an independent copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	c := &Buffer{data: make([]byte, len(b.data)), nbits: b.nbits}
	copy(c.data, b.data)
	return c
}

// Bit returns bit i.
func (b *Buffer) Bit(i int) bool {
	return b.data[i>>3]&(0x80>>(uint(i)&7)) != 0
}

// SetBit sets bit i to v.
func (b *Buffer) SetBit(i int, v bool) {
	if v {
		b.data[i>>3] |= 0x80 >> (uint(i) & 7)
	} else {
		b.data[i>>3] &^= 0x80 >> (uint(i) & 7)
	}
}

// Slice returns a new buffer holding bits [start, end).
func (b *Buffer) Slice(start, end int) *Buffer {
	n := end - start
	out := &Buffer{data: make([]byte, byteLen(n)), nbits: n}
	copyBits(out.data, 0, b.data, start, n)
	return out
}

// Splice replaces bits [start, end) with the contents of src. The buffer
// grows or shrinks when src.Len() differs from end-start; bits at and after
// end shift to follow the inserted region contiguously.
func (b *Buffer) Splice(start, end int, src *Buffer) {
	n := b.nbits - (end - start) + src.nbits
	out := make([]byte, byteLen(n))
	copyBits(out, 0, b.data, 0, start)
	copyBits(out, start, src.data, 0, src.nbits)
	copyBits(out, start+src.nbits, b.data, end, b.nbits-end)
	b.data, b.nbits = out, n
}

// Overwrite copies src over bits [start, start+src.Len()) without changing
// the buffer length. The range must fit; callers validate.
func (b *Buffer) Overwrite(start int, src *Buffer) {
	copyBits(b.data, start, src.data, 0, src.nbits)
}

// Append extends the buffer with the contents of src.
func (b *Buffer) Append(src *Buffer) {
	b.Splice(b.nbits, b.nbits, src)
}

// And combines b with o in place. Lengths must match; callers validate.
func (b *Buffer) And(o *Buffer) {
	for i := range b.data {
		b.data[i] &= o.data[i]
	}
}

// Or combines b with o in place. Lengths must match; callers validate.
func (b *Buffer) Or(o *Buffer) {
	for i := range b.data {
		b.data[i] |= o.data[i]
	}
}

// Xor combines b with o in place. Lengths must match; callers validate.
func (b *Buffer) Xor(o *Buffer) {
	for i := range b.data {
		b.data[i] ^= o.data[i]
	}
}

// Invert flips every valid bit in place.
func (b *Buffer) Invert() {
	for i := range b.data {
		b.data[i] = ^b.data[i]
	}
	b.maskPadding()
}

// Equal reports bitwise equality. Padding bits are always zero, so the byte
// comparison is exact.
func Equal(a, b *Buffer) bool {
	return a.nbits == b.nbits && bytes.Equal(a.data, b.data)
}

// Count returns the number of bits equal to v.
func (b *Buffer) Count(v bool) int {
	ones := 0
	for _, x := range b.data {
		ones += bits.OnesCount8(x)
	}
	if v {
		return ones
	}
	return b.nbits - ones
}

// Find returns the first position p in [start, end-pat.Len()] where pat
// occurs as a contiguous match. With byteAligned, only positions divisible
// by 8 are considered.
func (b *Buffer) Find(pat *Buffer, start, end int, byteAligned bool) (int, bool) {
	step := 1
	if byteAligned {
		if rem := start & 7; rem != 0 {
			start += 8 - rem
		}
		step = 8
	}
	for p := start; p+pat.nbits <= end; p += step {
		if b.matchAt(pat, p) {
			return p, true
		}
	}
	return -1, false
}

// RFind is Find scanning from the end of the range toward start.
func (b *Buffer) RFind(pat *Buffer, start, end int, byteAligned bool) (int, bool) {
	last := end - pat.nbits
	step := 1
	if byteAligned {
		last &^= 7
		step = 8
	}
	for p := last; p >= start; p -= step {
		if b.matchAt(pat, p) {
			return p, true
		}
	}
	return -1, false
}

// matchAt reports whether pat occurs at position p.
func (b *Buffer) matchAt(pat *Buffer, p int) bool {
	for i := 0; i < pat.nbits; i++ {
		if b.Bit(p+i) != pat.Bit(i) {
			return false
		}
	}
	return true
}

// maskPadding zeroes the unused low-order bits of the final byte.
func (b *Buffer) maskPadding() {
	if rem := b.nbits & 7; rem != 0 {
		b.data[len(b.data)-1] &= 0xFF << (8 - rem)
	}
}

// Check panics when the storage size does not match the bit length. A
// failure indicates a bug in this package, never bad user input.
func (b *Buffer) Check() {
	if len(b.data) != byteLen(b.nbits) || b.nbits < 0 {
		panic(fmt.Sprintf("bitbuf: corrupt buffer: %d bytes of storage for %d bits", len(b.data), b.nbits))
	}
}

// copyBits copies n bits from src starting at bit srcOff into dst starting
// at bit dstOff. The bit ranges must not overlap.
func copyBits(dst []byte, dstOff int, src []byte, srcOff, n int) {
	if n <= 0 {
		return
	}
	if dstOff&7 == 0 && srcOff&7 == 0 {
		di, si := dstOff>>3, srcOff>>3
		full := n >> 3
		copy(dst[di:di+full], src[si:si+full])
		if rem := n & 7; rem != 0 {
			mask := byte(0xFF) << (8 - rem)
			dst[di+full] = dst[di+full]&^mask | src[si+full]&mask
		}
		return
	}
	for i := 0; i < n; i++ {
		j := srcOff + i
		k := dstOff + i
		if src[j>>3]&(0x80>>(uint(j)&7)) != 0 {
			dst[k>>3] |= 0x80 >> (uint(k) & 7)
		} else {
			dst[k>>3] &^= 0x80 >> (uint(k) & 7)
		}
	}
}
