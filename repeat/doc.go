// Package repeat classifies numbers whose decimal digits are a shorter
// pattern repeated contiguously with no remainder, and sums such numbers
// over inclusive integer ranges.
//
// 🚀 What is repeat?
//
//	A number like 123123 is "invalid": its digit string is the pattern
//	123 written twice. repeat detects this by minimal-period analysis:
//	  • MinPeriod  — the smallest prefix length d dividing len(s) whose
//	    repetition reconstructs the whole string (len(s) if aperiodic)
//	  • IsRepeated — true when a number's digits repeat some pattern
//	    at least twice (MinPeriod < len)
//	  • SumInvalid / SumInvalidRanges — add up every such number inside
//	    one or many inclusive [Start, End] ranges
//
// ✨ Key properties:
//   - one divisor scan, d = 1..L/2 with d | L, byte comparison only —
//     no factorization machinery, no allocation beyond the digit string
//   - two call modes over the same scan: AtLeastTwice (the general
//     primitive) and ExactlyTwice (minimal period exactly half the
//     string)
//   - uint64 accumulators: range sums reach tens of billions
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/modring/repeat"
//
//	repeat.IsRepeated(123123)        // true
//	repeat.IsRepeated(1231)          // false
//
//	rs, err := repeat.ParseRanges("11-22,95-115")
//	if err != nil { ... }
//	total, err := repeat.SumInvalidRanges(rs, repeat.AtLeastTwice)
//
// Performance:
//
//   - Classification: O(L·d(L)) per number, L = digit count ≤ 20
//   - Summation:      linear in the range width
//
// See example_test.go for worked scenarios.
package repeat
