package repeat

import "strconv"

// MinPeriod — minimal-period detection over a digit string.
//
// Description:
//
//	The minimal period of s is the smallest prefix length d such that
//	d divides len(s) and tiling the prefix reconstructs s exactly.
//	An aperiodic string has minimal period len(s) (the standard
//	convention: every string tiles itself once).
//
// Algorithm Outline:
//  1. Let L = len(s). For each candidate d = 1..L/2, ascending:
//     a. skip d unless d divides L (so every block is full length —
//     no partial trailing block can exist);
//     b. compare each d-length block s[k*d : (k+1)*d] against the
//     prefix s[0:d] byte by byte; mismatch rejects d;
//     c. the first surviving d is minimal — return it.
//  2. No d survived: return L.
//
// Complexity:
//
//	Time   = O(L · d(L)), d(L) = number of divisors of L
//	Memory = O(1)
func MinPeriod(s string) int {
	l := len(s)
	for d := 1; d <= l/2; d++ {
		if l%d != 0 {
			continue
		}
		if tiles(s, d) {
			return d
		}
	}

	return l
}

// tiles reports whether the prefix s[0:d] repeated reconstructs s.
// Requires d > 0 and d | len(s).
func tiles(s string, d int) bool {
	for i := d; i < len(s); i++ {
		if s[i] != s[i-d] {
			return false
		}
	}

	return true
}

// IsRepeated reports whether v's canonical decimal representation is a
// proper substring repeated at least twice with no leftover digits.
// Single-digit values are never repetitions.
//
// Example:
//
//	IsRepeated(11)         // true  (1 twice)
//	IsRepeated(123123)     // true  (123 twice)
//	IsRepeated(1231)       // false
//	IsRepeated(5)          // false
//	IsRepeated(1212121212) // true  (12 five times)
func IsRepeated(v uint64) bool {
	s := strconv.FormatUint(v, 10)

	return MinPeriod(s) < len(s)
}

// Classify applies the repetition rule selected by mode to v.
//
// AtLeastTwice is IsRepeated. ExactlyTwice additionally requires the
// minimal period to be exactly half the digit count, so 6464 qualifies
// but 1111 (minimal period 1, repeated four times) does not.
//
// Errors:
//   - ErrBadMode — mode outside {AtLeastTwice, ExactlyTwice}.
func Classify(v uint64, mode Mode) (bool, error) {
	s := strconv.FormatUint(v, 10)
	switch mode {
	case AtLeastTwice:
		return MinPeriod(s) < len(s), nil
	case ExactlyTwice:
		return len(s)%2 == 0 && MinPeriod(s) == len(s)/2, nil
	default:
		return false, ErrBadMode
	}
}
