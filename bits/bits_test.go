package bits

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/bitkit/pkg/types"
)

func TestFromZerosFromOnes(t *testing.T) {
	for _, n := range []int{0, 1, 5, 8, 9, 17, 64, 129} {
		z, err := FromZeros(n)
		require.NoError(t, err)
		o, err := FromOnes(n)
		require.NoError(t, err)

		require.Equal(t, n, z.Len())
		require.Equal(t, n, o.Len())
		for i := 0; i < n; i++ {
			v, err := z.Bit(i)
			require.NoError(t, err)
			assert.False(t, v)
			v, err = o.Bit(i)
			require.NoError(t, err)
			assert.True(t, v)
		}
	}
}

func TestFromZerosNegative(t *testing.T) {
	_, err := FromZeros(-1)
	require.Error(t, err)
	assert.True(t, types.IsKind(err, types.ErrKindLength))

	_, err = FromOnes(-8)
	require.Error(t, err)
	assert.True(t, types.IsKind(err, types.ErrKindLength))
}

func TestBinaryRoundTrip(t *testing.T) {
	for _, s := range []string{"", "0", "1", "1011011", "001100", "1111111111111111111"} {
		b, err := FromBinary(s)
		require.NoError(t, err)
		assert.Equal(t, s, b.Binary())
	}
}

func TestHexadecimalRoundTrip(t *testing.T) {
	for _, s := range []string{"", "a", "12345678", "deadbeef", "0ff1ce"} {
		b, err := FromHexadecimal(s)
		require.NoError(t, err)
		require.Equal(t, 4*len(s), b.Len())
		got, err := b.Hexadecimal()
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
}

func TestHexadecimalPrefixAndCase(t *testing.T) {
	b, err := FromHexadecimal("0xA0ff")
	require.NoError(t, err)
	got, err := b.Hexadecimal()
	require.NoError(t, err)
	assert.Equal(t, "a0ff", got)

	b2, err := FromHexadecimal("  \n0x a  4e       \r3  \n")
	require.NoError(t, err)
	assert.Equal(t, 16, b2.Len())
}

func TestInvalidCharacters(t *testing.T) {
	for _, s := range []string{"0xx0", "0xX0", "0Xx0", "-2e"} {
		_, err := FromHexadecimal(s)
		require.Error(t, err, "input %q", s)
		assert.True(t, types.IsKind(err, types.ErrKindCharacter), "input %q: %v", s, err)
	}
	_, err := FromBinary("0102")
	require.Error(t, err)
	assert.True(t, types.IsKind(err, types.ErrKindCharacter))
}

func TestHexadecimalUnaligned(t *testing.T) {
	b, err := FromBinary("1010101010") // 10 bits
	require.NoError(t, err)
	_, err = b.Hexadecimal()
	require.Error(t, err)
	assert.True(t, types.IsKind(err, types.ErrKindAlignment))
}

func TestOctalRoundTrip(t *testing.T) {
	b, err := FromOctal("0o755")
	require.NoError(t, err)
	assert.Equal(t, "111101101", b.Binary())
	got, err := b.Octal()
	require.NoError(t, err)
	assert.Equal(t, "755", got)
}

func TestBitIndexing(t *testing.T) {
	b, err := FromBinary("10010")
	require.NoError(t, err)

	want := []bool{true, false, false, true, false}
	for i, w := range want {
		v, err := b.Bit(i)
		require.NoError(t, err)
		assert.Equal(t, w, v, "bit %d", i)
	}

	for _, i := range []int{-1, 5, 100} {
		_, err := b.Bit(i)
		require.Error(t, err, "index %d", i)
		assert.True(t, types.IsKind(err, types.ErrKindIndex))
	}
}

func TestSlice(t *testing.T) {
	b, err := FromBinary("111000111")
	require.NoError(t, err)

	head, err := b.Slice(0, 3)
	require.NoError(t, err)
	assert.Equal(t, "111", head.Binary())

	mid, err := b.Slice(3, 6)
	require.NoError(t, err)
	assert.Equal(t, "000", mid.Binary())

	empty, err := b.Slice(4, 4)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())

	for _, r := range [][2]int{{-1, 3}, {4, 2}, {0, 10}, {10, 12}} {
		_, err := b.Slice(r[0], r[1])
		require.Error(t, err, "range %v", r)
		assert.True(t, types.IsKind(err, types.ErrKindRange))
	}
}

func TestSliceDoesNotAliasSource(t *testing.T) {
	m, err := MutFromOnes(8)
	require.NoError(t, err)
	s, err := m.Slice(0, 8)
	require.NoError(t, err)
	require.NoError(t, m.SetBit(0, false))
	assert.Equal(t, "11111111", s.Binary())
}

func TestCombine(t *testing.T) {
	a, err := FromBinary("1100")
	require.NoError(t, err)
	b, err := FromBinary("1010")
	require.NoError(t, err)

	and, err := a.And(b)
	require.NoError(t, err)
	assert.Equal(t, "1000", and.Binary())

	or, err := a.Or(b)
	require.NoError(t, err)
	assert.Equal(t, "1110", or.Binary())

	xor, err := a.Xor(b)
	require.NoError(t, err)
	assert.Equal(t, "0110", xor.Binary())

	// operands untouched
	assert.Equal(t, "1100", a.Binary())
	assert.Equal(t, "1010", b.Binary())
}

func TestCombineIdentities(t *testing.T) {
	a, err := FromBinary("110100111010")
	require.NoError(t, err)
	zeros, err := FromZeros(a.Len())
	require.NoError(t, err)

	selfAnd, err := Combine(And, a, a)
	require.NoError(t, err)
	assert.True(t, selfAnd.Equal(a))

	selfOr, err := Combine(Or, a, a)
	require.NoError(t, err)
	assert.True(t, selfOr.Equal(a))

	selfXor, err := Combine(Xor, a, a)
	require.NoError(t, err)
	assert.True(t, selfXor.Equal(zeros))
}

func TestCombineLengthMismatch(t *testing.T) {
	a, err := FromZeros(8)
	require.NoError(t, err)
	b, err := FromZeros(9)
	require.NoError(t, err)

	for _, op := range []Op{And, Or, Xor} {
		_, err := Combine(op, a, b)
		require.Error(t, err, "op %s", op)
		assert.True(t, types.IsKind(err, types.ErrKindMismatch))
	}
}

func TestNot(t *testing.T) {
	a, err := FromBinary("10110")
	require.NoError(t, err)
	assert.Equal(t, "01001", a.Not().Binary())
	assert.Equal(t, "10110", a.Binary())
}

func TestEqual(t *testing.T) {
	a, err := FromBinary("10110")
	require.NoError(t, err)
	b, err := FromBinary("10110")
	require.NoError(t, err)
	c, err := FromBinary("101100")
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c), "length mismatch is inequality, not an error")

	m, err := MutFromBinary("10110")
	require.NoError(t, err)
	assert.True(t, a.Equal(m), "equality works across variants")
}

func TestFromBytes(t *testing.T) {
	b := FromBytes([]byte{0xC3, 0xE0})
	assert.Equal(t, 16, b.Len())
	assert.Equal(t, "1100001111100000", b.Binary())
	assert.Equal(t, []byte{0xC3, 0xE0}, b.Bytes())
}

func TestBytesPadsShortTail(t *testing.T) {
	b, err := FromBinary("1111111111") // 10 bits
	require.NoError(t, err)
	assert.Equal(t, []byte{0xFF, 0xC0}, b.Bytes())
}

func TestJoin(t *testing.T) {
	a, err := FromBinary("0")
	require.NoError(t, err)
	b, err := FromBinary("11")
	require.NoError(t, err)

	j, err := Join(a, b)
	require.NoError(t, err)
	assert.Equal(t, "011", j.Binary())

	// operands untouched
	assert.Equal(t, "0", a.Binary())
	assert.Equal(t, "11", b.Binary())

	empty, err := Join()
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())
}

func TestFind(t *testing.T) {
	h, err := FromHexadecimal("c3e")
	require.NoError(t, err)
	pat, err := FromBinary("1111")
	require.NoError(t, err)

	p, err := h.Find(pat)
	require.NoError(t, err)
	assert.Equal(t, 6, p)
}

func TestFindNotFound(t *testing.T) {
	h, err := FromBinary("0000")
	require.NoError(t, err)
	pat, err := FromBinary("11")
	require.NoError(t, err)

	_, err = h.Find(pat)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestFindEmptyPattern(t *testing.T) {
	h, err := FromBinary("0000")
	require.NoError(t, err)
	empty, err := FromZeros(0)
	require.NoError(t, err)

	_, err = h.Find(empty)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrEmptyPattern)
}

func TestFindByteAligned(t *testing.T) {
	h, err := FromHexadecimal("abcd")
	require.NoError(t, err)
	pat, err := FromHexadecimal("bc")
	require.NoError(t, err)

	p, err := h.FindRange(pat, 0, h.Len(), false)
	require.NoError(t, err)
	assert.Equal(t, 4, p)

	_, err = h.FindRange(pat, 0, h.Len(), true)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestRFind(t *testing.T) {
	h, err := FromBinary("110110")
	require.NoError(t, err)
	one, err := FromBinary("1")
	require.NoError(t, err)
	zero, err := FromBinary("0")
	require.NoError(t, err)

	p, err := h.RFind(one)
	require.NoError(t, err)
	assert.Equal(t, 4, p)

	p, err = h.RFind(zero)
	require.NoError(t, err)
	assert.Equal(t, 5, p)
}

func TestContains(t *testing.T) {
	h, err := FromHexadecimal("0001dead0001")
	require.NoError(t, err)
	dead, err := FromHexadecimal("dead")
	require.NoError(t, err)
	feed, err := FromHexadecimal("feed")
	require.NoError(t, err)

	assert.True(t, h.Contains(dead))
	assert.False(t, h.Contains(feed))
}

func TestCount(t *testing.T) {
	b, err := FromBinary("1011011")
	require.NoError(t, err)
	assert.Equal(t, 5, b.Count(true))
	assert.Equal(t, 2, b.Count(false))
}

func TestToMutableIsIndependent(t *testing.T) {
	b, err := FromBinary("1111")
	require.NoError(t, err)
	m := b.ToMutable()
	require.NoError(t, m.SetBit(0, false))
	assert.Equal(t, "1111", b.Binary())
	assert.Equal(t, "0111", m.Binary())
}

func TestStringLiteral(t *testing.T) {
	b, err := FromHexadecimal("12ab")
	require.NoError(t, err)
	assert.Equal(t, "0x12ab", b.String())

	b2, err := FromBinary("101")
	require.NoError(t, err)
	assert.Equal(t, "0b101", b2.String())
}

func TestFromUTF8(t *testing.T) {
	b := FromUTF8("Ab")
	assert.Equal(t, 16, b.Len())
	assert.Equal(t, []byte{0x41, 0x62}, b.Bytes())
}

func TestFromUTF16(t *testing.T) {
	b, err := FromUTF16("ab")
	require.NoError(t, err)
	require.Equal(t, 32, b.Len())
	got, err := b.Hexadecimal()
	require.NoError(t, err)
	assert.Equal(t, "00610062", got)
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payload.bin")
	require.NoError(t, os.WriteFile(path, []byte{0xDE, 0xAD}, 0o644))

	b, err := FromFile(path)
	require.NoError(t, err)
	require.Equal(t, 16, b.Len())
	got, err := b.Hexadecimal()
	require.NoError(t, err)
	assert.Equal(t, "dead", got)

	_, err = FromFile(filepath.Join(t.TempDir(), "missing.bin"))
	require.Error(t, err)
}
