package bitbuf

import (
	"errors"
	"fmt"
	"strings"
)

// Text codecs for the three positional bases. Parsers ignore ASCII
// whitespace and '_' separators and accept an optional base prefix
// ("0b"/"0o"/"0x", either case), matching common bit-literal notation.

var (
	// ErrBadCharacter indicates a character outside the alphabet for the base.
	ErrBadCharacter = errors.New("bitbuf: invalid character")
	// ErrUnaligned indicates a bit length that is not a whole number of digits.
	ErrUnaligned = errors.New("bitbuf: unaligned length")
	// ErrTooLong indicates a digit count whose bit length overflows int.
	ErrTooLong = errors.New("bitbuf: length overflow")
)

const hexDigits = "0123456789abcdef"

// ParseBinary decodes text into a buffer, one bit per '0'/'1' character,
// most significant first.
func ParseBinary(text string) (*Buffer, error) {
	s := trimBasePrefix(compact(text), 'b')
	b := New(len(s), false)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
		case '1':
			b.SetBit(i, true)
		default:
			return nil, fmt.Errorf("%w %q at digit %d of binary string", ErrBadCharacter, s[i], i)
		}
	}
	return b, nil
}

// FormatBinary renders one '0'/'1' character per bit, most significant first.
func FormatBinary(b *Buffer) string {
	out := make([]byte, b.nbits)
	for i := range out {
		if b.Bit(i) {
			out[i] = '1'
		} else {
			out[i] = '0'
		}
	}
	return string(out)
}

// ParseHex decodes hexadecimal text into a buffer of 4 bits per digit.
func ParseHex(text string) (*Buffer, error) {
	s := trimBasePrefix(compact(text), 'x')
	n, ok := MulNoOverflow(len(s), 4)
	if !ok {
		return nil, fmt.Errorf("%w: %d hexadecimal digits", ErrTooLong, len(s))
	}
	b := New(n, false)
	for i := 0; i < len(s); i++ {
		v, ok := hexVal(s[i])
		if !ok {
			return nil, fmt.Errorf("%w %q at digit %d of hexadecimal string", ErrBadCharacter, s[i], i)
		}
		// Even digits fill the high nibble of their byte.
		if i&1 == 0 {
			b.data[i>>1] = v << 4
		} else {
			b.data[i>>1] |= v
		}
	}
	return b, nil
}

// FormatHex renders the buffer as lowercase hexadecimal, one digit per
// nibble. The bit length must be divisible by 4.
func FormatHex(b *Buffer) (string, error) {
	if b.nbits%4 != 0 {
		return "", fmt.Errorf("%w: %d bits is not a whole number of hexadecimal digits", ErrUnaligned, b.nbits)
	}
	out := make([]byte, b.nbits/4)
	for i := range out {
		var v byte
		if i&1 == 0 {
			v = b.data[i>>1] >> 4
		} else {
			v = b.data[i>>1] & 0x0F
		}
		out[i] = hexDigits[v]
	}
	return string(out), nil
}

// ParseOctal decodes octal text into a buffer of 3 bits per digit.
func ParseOctal(text string) (*Buffer, error) {
	s := trimBasePrefix(compact(text), 'o')
	n, ok := MulNoOverflow(len(s), 3)
	if !ok {
		return nil, fmt.Errorf("%w: %d octal digits", ErrTooLong, len(s))
	}
	b := New(n, false)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '7' {
			return nil, fmt.Errorf("%w %q at digit %d of octal string", ErrBadCharacter, c, i)
		}
		v := c - '0'
		for j := 0; j < 3; j++ {
			if v&(4>>j) != 0 {
				b.SetBit(i*3+j, true)
			}
		}
	}
	return b, nil
}

// FormatOctal renders the buffer as octal, one digit per 3 bits. The bit
// length must be divisible by 3.
func FormatOctal(b *Buffer) (string, error) {
	if b.nbits%3 != 0 {
		return "", fmt.Errorf("%w: %d bits is not a whole number of octal digits", ErrUnaligned, b.nbits)
	}
	out := make([]byte, b.nbits/3)
	for i := range out {
		v := byte(0)
		for j := 0; j < 3; j++ {
			if b.Bit(i*3 + j) {
				v |= 4 >> j
			}
		}
		out[i] = '0' + v
	}
	return string(out), nil
}

func hexVal(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// compact strips ASCII whitespace and '_' separators.
func compact(s string) string {
	if !strings.ContainsAny(s, " \t\r\n_") {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\r', '\n', '_':
		default:
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}

// trimBasePrefix removes a leading "0b"/"0o"/"0x" marker, either case.
func trimBasePrefix(s string, base byte) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == base || s[1] == base-('a'-'A')) {
		return s[2:]
	}
	return s
}
