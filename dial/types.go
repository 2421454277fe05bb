// Package dial defines commands, options, and sentinel errors
// for the dial subpackage of github.com/katalvlaran/modring.
package dial

import "errors"

// Sentinel errors for dial operations.
var (
	// ErrBadDirection indicates a direction outside {Down, Up} or an
	// unrecognized direction code in textual input.
	ErrBadDirection = errors.New("dial: unrecognized direction")
	// ErrNegativeMagnitude indicates a command with Magnitude < 0.
	ErrNegativeMagnitude = errors.New("dial: magnitude must be non-negative")
	// ErrBadModulus indicates Options.Modulus ≤ 0.
	ErrBadModulus = errors.New("dial: modulus must be positive")
	// ErrBadCommand indicates textual input that is not a direction code
	// followed by a decimal magnitude.
	ErrBadCommand = errors.New("dial: malformed command")
)

// Direction selects which way a command rotates the dial.
type Direction int

const (
	// Down rotates toward lower labels (textual code 'L').
	Down Direction = iota
	// Up rotates toward higher labels (textual code 'R').
	Up
)

// String returns the single-letter wire code for d, or "?" if invalid.
func (d Direction) String() string {
	switch d {
	case Down:
		return "L"
	case Up:
		return "R"
	default:
		return "?"
	}
}

// Command is one rotation: a direction plus a non-negative magnitude
// measured in ticks.
type Command struct {
	Dir       Direction
	Magnitude int64
}

// Options contains tunable parameters for a dial.
type Options struct {
	// Modulus is the number of ticks on the dial; labels are 0..Modulus-1.
	Modulus int64
	// Initial is the starting label.
	Initial int64
}

// DefaultOptions returns an Options with default settings:
// Modulus=100 (labels 0..99), Initial=50.
func DefaultOptions() Options {
	return Options{
		Modulus: 100,
		Initial: 50,
	}
}

// Result holds the two counts accumulated over a run of commands.
type Result struct {
	// Landings is the number of commands whose final position was
	// exactly 0.
	Landings uint64
	// Crossings is the total number of times the zero mark was passed
	// through or stopped on, over all commands.
	Crossings uint64
}
