package bits

import (
	"io"

	"github.com/joshuapare/bitkit/internal/bitbuf"
	"github.com/joshuapare/bitkit/pkg/types"
)

// The iterators are lazy and finite. Next returns io.EOF once the sequence
// is exhausted, following the same convention as bufio-style readers.

// BoolIterator yields each bit of a collection in order, one bool per
// position.
type BoolIterator struct {
	buf *bitbuf.Buffer
	pos int
}

// Next returns the next bit, or io.EOF after the last one.
func (it *BoolIterator) Next() (bool, error) {
	if it.pos >= it.buf.Len() {
		return false, io.EOF
	}
	v := it.buf.Bit(it.pos)
	it.pos++
	return v, nil
}

// Reset restarts the iterator from bit 0.
func (it *BoolIterator) Reset() { it.pos = 0 }

// ChunksIterator yields fixed-width sub-collections left to right. When the
// collection length is not a multiple of the width, the final chunk holds
// the short remainder rather than being padded or dropped.
type ChunksIterator struct {
	buf   *bitbuf.Buffer
	width int
	pos   int
}

func newChunks(buf *bitbuf.Buffer, width int) (*ChunksIterator, error) {
	if width <= 0 {
		return nil, types.Errorf(types.ErrKindChunkWidth, "bits: invalid chunk width %d", width)
	}
	return &ChunksIterator{buf: buf, width: width}, nil
}

// Next returns the next chunk, or io.EOF after the last one.
func (it *ChunksIterator) Next() (*Bits, error) {
	if it.pos >= it.buf.Len() {
		return nil, io.EOF
	}
	end := it.pos + it.width
	if end > it.buf.Len() {
		end = it.buf.Len()
	}
	chunk := &Bits{buf: it.buf.Slice(it.pos, end)}
	it.pos = end
	return chunk, nil
}

// Collect drains the iterator and returns all remaining chunks.
func (it *ChunksIterator) Collect() []*Bits {
	var out []*Bits
	for {
		c, err := it.Next()
		if err != nil {
			return out
		}
		out = append(out, c)
	}
}

// FindAllIterator yields the starting bit positions of every occurrence of
// a pattern, scanning left to right. Matches may overlap: after a match at
// p the scan resumes at p+1. An empty pattern yields no matches.
type FindAllIterator struct {
	buf *bitbuf.Buffer
	pat *bitbuf.Buffer
	pos int
}

// Next returns the next match position, or io.EOF when no further match
// exists.
func (it *FindAllIterator) Next() (int, error) {
	if it.pat.Len() == 0 {
		return 0, io.EOF
	}
	p, ok := it.buf.Find(it.pat, it.pos, it.buf.Len(), false)
	if !ok {
		return 0, io.EOF
	}
	it.pos = p + 1
	return p, nil
}

// Positions drains the iterator and returns all remaining match positions.
func (it *FindAllIterator) Positions() []int {
	var out []int
	for {
		p, err := it.Next()
		if err != nil {
			return out
		}
		out = append(out, p)
	}
}
