// Package modring is a compact toolkit for exact integer arithmetic on
// circular (modular) domains and periodic digit strings.
//
// 🚀 What is modring?
//
//	A small, deterministic, pure-Go library that brings together:
//		• dial/   — motion on a circular counter: track a dial under signed
//		  rotation commands, count landings on and crossings of the zero
//		  mark with closed-form floor-division math
//		• repeat/ — minimal-period analysis of decimal strings: classify
//		  numbers whose digits are a shorter pattern repeated ≥2 times,
//		  and sum them over inclusive ranges
//
// ✨ Why choose modring?
//
//   - Exact by construction – floor division everywhere, never truncation,
//     so negative accumulators cannot silently drop crossings
//   - Streaming or batch – feed commands one at a time or all at once
//   - Pure Go – no cgo, no hidden state, every function deterministic
//   - Tested against brute force – closed forms are property-checked
//     against unit-step simulation
//
// Under the hood, everything is organized under two subpackages plus glue:
//
//	dial/   — cyclic motion counter (landings + zero crossings)
//	repeat/ — repetition classifier and range summation
//	cmd/    — the modring CLI for puzzle-style input files
//
// Quick ASCII example:
//
//	    99  0  1
//	  98    │    2
//	 97     ▼     3       a dial of 100 ticks; commands like L68 or
//	  ..  (dial) ..       R1000 rotate it, and modring counts every
//	        50            pass through the 0 mark.
//
// Dive into each package's doc.go for algorithm outlines, complexity
// notes and worked examples.
//
//	go get github.com/katalvlaran/modring
package modring
