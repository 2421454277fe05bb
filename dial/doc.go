// Package dial tracks a position on a circular counter (a combination-lock
// style dial) as it receives signed rotation commands, and counts how often
// the zero mark is landed on or crossed.
//
// 🚀 What is dial?
//
//	A dial has Modulus ticks, labeled 0..Modulus-1, and starts at Initial.
//	Each Command rotates it Up (toward higher labels) or Down (toward
//	lower labels) by a non-negative Magnitude. dial reports two counts:
//	  • Landings  — commands whose final position is exactly 0
//	  • Crossings — every time the motion passes through or stops on 0,
//	    including multiple passes inside one large rotation
//
// ✨ Key properties:
//   - closed-form crossing math: one floor division per command, never a
//     tick-by-tick walk, so R1000000007 costs the same as R1
//   - a raw, unnormalized accumulator is the source of truth; the
//     normalized 0..Modulus-1 reading is derived on demand. Collapsing
//     the raw value between commands would corrupt later crossing counts.
//   - floor division throughout: Go's / and % truncate toward zero for
//     negative operands, which silently drops crossings once the
//     accumulator goes negative. dial derives floor semantics explicitly.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/modring/dial"
//
//	cmds, err := dial.ParseCommands(strings.NewReader("L68\nR1000\n"))
//	if err != nil { ... }
//
//	res, err := dial.Process(cmds, dial.DefaultOptions())
//	if err != nil { ... }
//	fmt.Println(res.Landings, res.Crossings)
//
// For streaming input, construct a Counter and feed it one Command at a
// time with Apply; Result may be read at any point.
//
// Performance:
//
//   - Time:   O(1) per command
//   - Memory: O(1)
//
// See example_test.go for worked scenarios.
package dial
