package bitbuf

import (
	"errors"
	"strings"
	"testing"
)

func TestParseBinaryRoundTrip(t *testing.T) {
	for _, s := range []string{"", "0", "1", "1011011", "00000000", "1111111111111111", "101010101"} {
		b, err := ParseBinary(s)
		if err != nil {
			t.Fatalf("ParseBinary(%q): %v", s, err)
		}
		if got := FormatBinary(b); got != s {
			t.Fatalf("round trip %q -> %q", s, got)
		}
	}
}

func TestParseBinaryPrefixAndSeparators(t *testing.T) {
	tests := []struct{ in, want string }{
		{"0b1010", "1010"},
		{"0B1010", "1010"},
		{"0011_1100", "00111100"},
		{" 1 0\t1\n1 ", "1011"},
		{"0b", ""},
	}
	for _, tt := range tests {
		b, err := ParseBinary(tt.in)
		if err != nil {
			t.Fatalf("ParseBinary(%q): %v", tt.in, err)
		}
		if got := FormatBinary(b); got != tt.want {
			t.Fatalf("ParseBinary(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseBinaryBadCharacter(t *testing.T) {
	for _, s := range []string{"012", "0b2", "abc", "10 1x"} {
		if _, err := ParseBinary(s); !errors.Is(err, ErrBadCharacter) {
			t.Fatalf("ParseBinary(%q) err = %v, want ErrBadCharacter", s, err)
		}
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		bits string
	}{
		{"", ""},
		{"f", "1111"},
		{"0xA0ff", "1010000011111111"},
		{"0Xa0FF", "1010000011111111"},
		{"  \n0x a  4e       \r3  \n", "1010010011100011"},
		{"0102_0304", "00000001000000100000001100000100"},
	}
	for _, tt := range tests {
		b, err := ParseHex(tt.in)
		if err != nil {
			t.Fatalf("ParseHex(%q): %v", tt.in, err)
		}
		if got := FormatBinary(b); got != tt.bits {
			t.Fatalf("ParseHex(%q) = %q, want %q", tt.in, got, tt.bits)
		}
	}
}

func TestParseHexBadCharacter(t *testing.T) {
	for _, s := range []string{"0xx0", "0xX0", "0Xx0", "-2e", "12g4"} {
		if _, err := ParseHex(s); !errors.Is(err, ErrBadCharacter) {
			t.Fatalf("ParseHex(%q) err = %v, want ErrBadCharacter", s, err)
		}
	}
}

func TestFormatHex(t *testing.T) {
	b, err := ParseHex("12345678")
	if err != nil {
		t.Fatalf("ParseHex: %v", err)
	}
	s, err := FormatHex(b)
	if err != nil {
		t.Fatalf("FormatHex: %v", err)
	}
	if s != "12345678" {
		t.Fatalf("got %q", s)
	}
	// case normalization
	b, _ = ParseHex("DEADBEEF")
	s, _ = FormatHex(b)
	if s != "deadbeef" {
		t.Fatalf("got %q, want deadbeef", s)
	}
}

func TestFormatHexUnaligned(t *testing.T) {
	b := New(10, false)
	if _, err := FormatHex(b); !errors.Is(err, ErrUnaligned) {
		t.Fatalf("expected ErrUnaligned, got %v", err)
	}
}

func TestOctalRoundTrip(t *testing.T) {
	tests := []struct{ in, bits string }{
		{"", ""},
		{"7", "111"},
		{"0o755", "111101101"},
		{"0O017", "000001111"},
	}
	for _, tt := range tests {
		b, err := ParseOctal(tt.in)
		if err != nil {
			t.Fatalf("ParseOctal(%q): %v", tt.in, err)
		}
		if got := FormatBinary(b); got != tt.bits {
			t.Fatalf("ParseOctal(%q) = %q, want %q", tt.in, got, tt.bits)
		}
		out, err := FormatOctal(b)
		if err != nil {
			t.Fatalf("FormatOctal: %v", err)
		}
		if want := strings.TrimPrefix(strings.ToLower(tt.in), "0o"); out != want {
			t.Fatalf("FormatOctal = %q, want %q", out, want)
		}
	}
}

func TestParseOctalBadCharacter(t *testing.T) {
	for _, s := range []string{"8", "0o9", "7a"} {
		if _, err := ParseOctal(s); !errors.Is(err, ErrBadCharacter) {
			t.Fatalf("ParseOctal(%q) err = %v, want ErrBadCharacter", s, err)
		}
	}
}

func TestFormatOctalUnaligned(t *testing.T) {
	b := New(4, false)
	if _, err := FormatOctal(b); !errors.Is(err, ErrUnaligned) {
		t.Fatalf("expected ErrUnaligned, got %v", err)
	}
}
