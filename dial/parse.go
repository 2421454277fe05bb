package dial

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseCommand parses the textual wire form of a command: a one-letter
// direction code ('L' or 'R') immediately followed by a decimal
// magnitude, e.g. "L68" or "R1000".
//
// Errors:
//   - ErrBadCommand   — empty input or missing/non-numeric magnitude.
//   - ErrBadDirection — first character is neither 'L' nor 'R'.
func ParseCommand(s string) (Command, error) {
	if len(s) < 2 {
		return Command{}, fmt.Errorf("%w: %q", ErrBadCommand, s)
	}

	var dir Direction
	switch s[0] {
	case 'L':
		dir = Down
	case 'R':
		dir = Up
	default:
		return Command{}, fmt.Errorf("%w: %q", ErrBadDirection, s[0])
	}

	mag, err := strconv.ParseInt(s[1:], 10, 64)
	if err != nil || mag < 0 {
		return Command{}, fmt.Errorf("%w: %q", ErrBadCommand, s)
	}

	return Command{Dir: dir, Magnitude: mag}, nil
}

// ParseCommands reads one command per line from r, skipping blank lines.
// The first malformed line aborts the parse; puzzle input is assumed
// well-formed and there is no meaningful recovery.
func ParseCommands(r io.Reader) ([]Command, error) {
	var cmds []Command
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		cmd, err := ParseCommand(line)
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, cmd)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dial: read commands: %w", err)
	}

	return cmds, nil
}
