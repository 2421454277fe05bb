package repeat

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseRange parses the textual wire form of one inclusive range:
// two decimal integers joined by a single '-', e.g. "11-22".
//
// Errors:
//   - ErrMalformedRange — missing delimiter or non-numeric bound.
//   - ErrBadRange       — start exceeds end.
func ParseRange(s string) (Range, error) {
	lo, hi, ok := strings.Cut(s, "-")
	if !ok {
		return Range{}, fmt.Errorf("%w: %q", ErrMalformedRange, s)
	}

	start, err := strconv.ParseUint(strings.TrimSpace(lo), 10, 64)
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q", ErrMalformedRange, s)
	}
	end, err := strconv.ParseUint(strings.TrimSpace(hi), 10, 64)
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q", ErrMalformedRange, s)
	}

	r := Range{Start: start, End: end}
	if !r.Valid() {
		return Range{}, fmt.Errorf("%w: %q", ErrBadRange, s)
	}

	return r, nil
}

// ParseRanges parses a comma-separated list of "start-end" tokens,
// e.g. "11-22,95-115". The first malformed token aborts the parse;
// puzzle input is assumed well-formed and there is no meaningful
// recovery.
func ParseRanges(s string) ([]Range, error) {
	var rs []Range
	for _, tok := range strings.Split(strings.TrimSpace(s), ",") {
		r, err := ParseRange(strings.TrimSpace(tok))
		if err != nil {
			return nil, err
		}
		rs = append(rs, r)
	}

	return rs, nil
}
