package types

import (
	"errors"
	"fmt"
)

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindLength     ErrKind = iota // requested bit count is not representable
	ErrKindIndex                     // single-bit position outside [0, Len())
	ErrKindRange                     // slice bounds inverted or out of range
	ErrKindMismatch                  // bitwise operation on operands of differing lengths
	ErrKindAlignment                 // export requires a length the collection lacks
	ErrKindCharacter                 // decode input outside the alphabet for its base
	ErrKindChunkWidth                // chunk iterator requested with zero width
	ErrKindNotFound                  // pattern not present in the searched range
	ErrKindUnsupported               // feature or hook not available
)

// String returns a short stable name for the kind.
func (k ErrKind) String() string {
	switch k {
	case ErrKindLength:
		return "length"
	case ErrKindIndex:
		return "index"
	case ErrKindRange:
		return "range"
	case ErrKindMismatch:
		return "mismatch"
	case ErrKindAlignment:
		return "alignment"
	case ErrKindCharacter:
		return "character"
	case ErrKindChunkWidth:
		return "chunkwidth"
	case ErrKindNotFound:
		return "notfound"
	case ErrKindUnsupported:
		return "unsupported"
	default:
		return fmt.Sprintf("errkind(%d)", int(k))
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Errorf builds a typed error from a format string.
func Errorf(kind ErrKind, format string, a ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, a...)}
}

// Wrap builds a typed error around an underlying cause.
func Wrap(kind ErrKind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// IsKind reports whether err (or anything it wraps) is a typed error of the
// given kind.
func IsKind(err error, kind ErrKind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Sentinels commonly returned by implementations.
var (
	// ErrNotFound indicates the searched pattern does not occur.
	ErrNotFound = &Error{Kind: ErrKindNotFound, Msg: "bits: pattern not found"}
	// ErrEmptyPattern indicates a search was attempted with a zero-length pattern.
	ErrEmptyPattern = &Error{Kind: ErrKindLength, Msg: "bits: cannot search for an empty pattern"}
	// ErrNoParser indicates no dtype descriptor parser has been registered.
	ErrNoParser = &Error{Kind: ErrKindUnsupported, Msg: "bits: no dtype parser registered"}
)
