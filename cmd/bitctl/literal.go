package main

import (
	"fmt"
	"strings"

	"github.com/joshuapare/bitkit/bits"
)

// parseLiteral decodes a bit literal. The base prefix is mandatory so that
// a value like "0110" is never silently misread.
func parseLiteral(s string) (*bits.Bits, error) {
	t := strings.TrimSpace(s)
	lower := strings.ToLower(t)
	switch {
	case strings.HasPrefix(lower, "0b"):
		return bits.FromBinary(t)
	case strings.HasPrefix(lower, "0o"):
		return bits.FromOctal(t)
	case strings.HasPrefix(lower, "0x"):
		return bits.FromHexadecimal(t)
	default:
		return nil, fmt.Errorf("literal %q must start with 0b, 0o or 0x", s)
	}
}
