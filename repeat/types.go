// Package repeat defines modes, ranges, and sentinel errors
// for the repeat subpackage of github.com/katalvlaran/modring.
package repeat

import "errors"

// Sentinel errors for repeat operations.
var (
	// ErrBadMode indicates a Mode outside {AtLeastTwice, ExactlyTwice}.
	ErrBadMode = errors.New("repeat: unrecognized classification mode")
	// ErrBadRange indicates a Range with Start > End.
	ErrBadRange = errors.New("repeat: range start exceeds end")
	// ErrMalformedRange indicates textual input that is not a
	// "start-end" pair of decimal integers.
	ErrMalformedRange = errors.New("repeat: malformed range")
)

// Mode selects which repetition rule a classification applies.
type Mode int

const (
	// AtLeastTwice accepts any pattern repeated two or more times,
	// e.g. 1212, 111, 123123123. This is the general primitive.
	AtLeastTwice Mode = iota
	// ExactlyTwice accepts only strings whose minimal period is exactly
	// half their length, e.g. 6464 but not 1111 (minimal period 1).
	ExactlyTwice
)

// String returns a short human name for m, or "?" if invalid.
func (m Mode) String() string {
	switch m {
	case AtLeastTwice:
		return "least"
	case ExactlyTwice:
		return "exact"
	default:
		return "?"
	}
}

// Range is an inclusive integer interval [Start, End].
type Range struct {
	Start, End uint64
}

// Valid reports whether Start ≤ End.
func (r Range) Valid() bool { return r.Start <= r.End }
