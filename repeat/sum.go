package repeat

// SumInvalid — range summation of repeated-pattern numbers.
//
// Description:
//
//	Walks every integer v in the inclusive interval [r.Start, r.End]
//	and accumulates v into a uint64 total wherever the rule selected
//	by mode classifies v as a repetition. Sums in exercised scenarios
//	reach tens of billions, hence the fixed 64-bit accumulator.
//
// Complexity:
//
//	Time   = O((End-Start+1) · L · d(L))
//	Memory = O(1)
//
// Errors:
//   - ErrBadRange — r.Start > r.End.
//   - ErrBadMode  — unknown mode.
func SumInvalid(r Range, mode Mode) (uint64, error) {
	if !r.Valid() {
		return 0, ErrBadRange
	}

	var total uint64
	for v := r.Start; ; v++ {
		hit, err := Classify(v, mode)
		if err != nil {
			return 0, err
		}
		if hit {
			total += v
		}
		if v == r.End { // inclusive upper bound; v++ past MaxUint64 would wrap
			break
		}
	}

	return total, nil
}

// SumInvalidRanges sums SumInvalid over every range in rs and returns
// the grand total. The first invalid range aborts the whole computation;
// silently skipping it would corrupt the aggregate without signal.
func SumInvalidRanges(rs []Range, mode Mode) (uint64, error) {
	var total uint64
	for _, r := range rs {
		sub, err := SumInvalid(r, mode)
		if err != nil {
			return 0, err
		}
		total += sub
	}

	return total, nil
}
