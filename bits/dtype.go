package bits

import (
	"github.com/joshuapare/bitkit/pkg/types"
)

// Kind enumerates the encodings an external dtype descriptor can request.
type Kind int

const (
	KindBin   Kind = iota // one bit per character
	KindOct               // three bits per character
	KindHex               // four bits per character
	KindBytes             // eight bits per byte of raw text
)

// String returns the descriptor token for the kind.
func (k Kind) String() string {
	switch k {
	case KindBin:
		return "bin"
	case KindOct:
		return "oct"
	case KindHex:
		return "hex"
	case KindBytes:
		return "bytes"
	default:
		return "kind(?)"
	}
}

// Dtype is the interpretation contract handed over by an external
// descriptor parser: an encoding kind plus a field width in bits. A zero
// width leaves the length unconstrained.
//
// The core does not parse descriptor strings itself; see SetDtypeParser.
type Dtype struct {
	Kind  Kind
	Width int
}

// Pack builds a collection from a value rendered in the dtype's encoding
// and validates the width when one is set.
func (d Dtype) Pack(value string) (*Bits, error) {
	var b *Bits
	var err error
	switch d.Kind {
	case KindBin:
		b, err = FromBinary(value)
	case KindOct:
		b, err = FromOctal(value)
	case KindHex:
		b, err = FromHexadecimal(value)
	case KindBytes:
		b = FromBytes([]byte(value))
	default:
		return nil, types.Errorf(types.ErrKindUnsupported, "bits: unknown dtype kind %d", int(d.Kind))
	}
	if err != nil {
		return nil, err
	}
	if d.Width > 0 && b.Len() != d.Width {
		return nil, types.Errorf(types.ErrKindLength,
			"bits: dtype %s%d expects %d bits, value has %d", d.Kind, d.Width, d.Width, b.Len())
	}
	return b, nil
}

// Unpack renders a collection in the dtype's encoding, validating the width
// when one is set.
func (d Dtype) Unpack(b BitCollection) (string, error) {
	if d.Width > 0 && b.Len() != d.Width {
		return "", types.Errorf(types.ErrKindLength,
			"bits: dtype %s%d expects %d bits, collection has %d", d.Kind, d.Width, d.Width, b.Len())
	}
	switch d.Kind {
	case KindBin:
		return b.Binary(), nil
	case KindOct:
		return b.Octal()
	case KindHex:
		return b.Hexadecimal()
	case KindBytes:
		return string(b.Bytes()), nil
	default:
		return "", types.Errorf(types.ErrKindUnsupported, "bits: unknown dtype kind %d", int(d.Kind))
	}
}

// DtypeParser maps a descriptor string (for example "hex32") onto an
// interpretation contract.
type DtypeParser func(descriptor string) (Dtype, error)

// The registered parser. Registration is expected during program
// initialization; SetDtypeParser is not safe to call concurrently with
// ParseDtype.
var dtypeParser DtypeParser

// SetDtypeParser registers the external descriptor parser used by
// ParseDtype.
func SetDtypeParser(p DtypeParser) { dtypeParser = p }

// ParseDtype resolves a descriptor string through the registered parser. It
// returns types.ErrNoParser when none has been registered.
func ParseDtype(descriptor string) (Dtype, error) {
	if dtypeParser == nil {
		return Dtype{}, types.ErrNoParser
	}
	return dtypeParser(descriptor)
}
