package types

import (
	"errors"
	"fmt"
	"strings"
)

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindInvalidArgument ErrKind = iota + 1 // bad mode, code too small, malformed extension
	ErrKindCapacity                           // payload does not fit in the cover
	ErrKindInternal                           // broken invariant (a bug, not a runtime condition)
	ErrKindResource                           // requested buffer cannot be allocated
	ErrKindFormat                             // malformed pixel-map container
	ErrKindCorrupt                            // prefix header does not describe a payload
)

// String implements the Stringer interface for ErrKind.
func (k ErrKind) String() string {
	switch k {
	case ErrKindInvalidArgument:
		return "invalid argument"
	case ErrKindCapacity:
		return "capacity exceeded"
	case ErrKindInternal:
		return "internal invariant violation"
	case ErrKindResource:
		return "resource exhausted"
	case ErrKindFormat:
		return "format"
	case ErrKindCorrupt:
		return "corrupt"
	default:
		return fmt.Sprintf("unknown error kind %d", int(k))
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

// Is reports whether target is a *Error of the same kind, so that
// errors.Is(err, ErrCapacityExceeded) matches any capacity failure.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) || e == nil {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels commonly returned by implementations.
var (
	// ErrInvalidArgument indicates a bad mode, key, code size or extension.
	ErrInvalidArgument = &Error{Kind: ErrKindInvalidArgument, Msg: "invalid argument"}
	// ErrCapacityExceeded indicates the payload does not fit in the pixel buffer.
	ErrCapacityExceeded = &Error{Kind: ErrKindCapacity, Msg: "payload exceeds cover capacity"}
	// ErrInternalInvariant indicates a bug (e.g. a syndrome with no matching column).
	ErrInternalInvariant = &Error{Kind: ErrKindInternal, Msg: "internal invariant violation"}
	// ErrResourceExhausted indicates a buffer size that cannot be represented or allocated.
	ErrResourceExhausted = &Error{Kind: ErrKindResource, Msg: "resource exhausted"}
	// ErrNotPixelMap indicates the input is not a supported PGM/PPM file.
	ErrNotPixelMap = &Error{Kind: ErrKindFormat, Msg: "not a binary pixel map (P5/P6)"}
	// ErrNoPayload indicates the prefix header does not describe a hidden payload.
	ErrNoPayload = &Error{Kind: ErrKindCorrupt, Msg: "no hidden payload"}
)

// Errorf builds a typed error of the given kind with a formatted message.
func Errorf(kind ErrKind, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind and message to an underlying cause.
func Wrap(kind ErrKind, msg string, err error) error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or 0 when err
// carries no kind.
func KindOf(err error) ErrKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// -----------------------------------------------------------------------------
// Embedding modes
// -----------------------------------------------------------------------------

// Mode selects how payload bits are distributed over the pixel buffer.
type Mode int

const (
	ModeSequential Mode = iota // one bit per pixel, natural order after the prefix
	ModeKeyed                  // one bit per pixel, passphrase-permuted order
	ModeHamming                // rows bits per 2^rows-1 pixel block, at most one change per block
)

// String implements the Stringer interface for Mode.
func (m Mode) String() string {
	switch m {
	case ModeSequential:
		return "sequential"
	case ModeKeyed:
		return "keyed"
	case ModeHamming:
		return "hamming"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Valid reports whether m is one of the defined modes.
func (m Mode) Valid() bool {
	return m >= ModeSequential && m <= ModeHamming
}

// ParseMode maps a mode name (case-insensitive) to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "sequential", "classic":
		return ModeSequential, nil
	case "keyed", "traversal":
		return ModeKeyed, nil
	case "hamming", "syndrome":
		return ModeHamming, nil
	default:
		return 0, Errorf(ErrKindInvalidArgument, "unknown mode %q", s)
	}
}
