package dial

// Counter — streaming cyclic motion counter.
//
// Description:
//
//	A Counter tracks a dial position under a sequence of rotation
//	commands and accumulates how many commands end exactly on the zero
//	mark (Landings) and how many times the zero mark is passed through
//	or stopped on in total (Crossings).
//
// Algorithm Outline (per command):
//  1. Let pre be the raw, unnormalized accumulated position
//     (pre = Initial before the first command).
//  2. post = pre + magnitude (Up) or pre - magnitude (Down).
//  3. Crossings gained = floorDiv(post, m) - floorDiv(pre, m) for Up,
//     or floorDiv(pre, m) - floorDiv(post, m) for Down. This counts the
//     multiples of m strictly between pre and post, plus post itself
//     when it lands exactly on a multiple. Floor division is mandatory:
//     truncating division undercounts as soon as pre or post is negative.
//  4. If floorMod(post, m) == 0, one more landing.
//  5. The raw accumulator becomes post, unnormalized. Normalization
//     happens only in derived views (Position), never in the state.
//
// Complexity:
//
//	Time   = O(1) per command
//	Memory = O(1)
//
// Errors:
//   - ErrBadModulus        — Options.Modulus ≤ 0 at construction.
//   - ErrBadDirection      — Command.Dir outside {Down, Up}.
//   - ErrNegativeMagnitude — Command.Magnitude < 0.
type Counter struct {
	modulus   int64
	raw       int64 // unnormalized accumulator; source of truth for crossing math
	landings  uint64
	crossings uint64
}

// NewCounter constructs a Counter from opts.
// Returns ErrBadModulus when opts.Modulus ≤ 0.
func NewCounter(opts Options) (*Counter, error) {
	if opts.Modulus <= 0 {
		return nil, ErrBadModulus
	}

	return &Counter{modulus: opts.Modulus, raw: opts.Initial}, nil
}

// Apply executes one command and returns the resulting normalized
// position in [0, Modulus). The Counter is unchanged on error.
func (c *Counter) Apply(cmd Command) (int64, error) {
	if cmd.Dir != Down && cmd.Dir != Up {
		return 0, ErrBadDirection
	}
	if cmd.Magnitude < 0 {
		return 0, ErrNegativeMagnitude
	}

	pre := c.raw
	var post, crossed int64
	if cmd.Dir == Up {
		post = pre + cmd.Magnitude
		crossed = floorDiv(post, c.modulus) - floorDiv(pre, c.modulus)
	} else {
		post = pre - cmd.Magnitude
		crossed = floorDiv(pre, c.modulus) - floorDiv(post, c.modulus)
	}

	c.crossings += uint64(crossed)
	landing := floorMod(post, c.modulus)
	if landing == 0 {
		c.landings++
	}
	c.raw = post // carry forward unnormalized

	return landing, nil
}

// Position returns the current normalized label in [0, Modulus).
func (c *Counter) Position() int64 { return floorMod(c.raw, c.modulus) }

// Raw returns the unnormalized accumulated position.
func (c *Counter) Raw() int64 { return c.raw }

// Result returns the counts accumulated so far.
func (c *Counter) Result() Result {
	return Result{Landings: c.landings, Crossings: c.crossings}
}

// Process runs all commands against a fresh Counter built from opts and
// returns the final counts. It stops at the first invalid command.
//
// Example:
//
//	res, err := dial.Process(cmds, dial.DefaultOptions())
func Process(cmds []Command, opts Options) (Result, error) {
	c, err := NewCounter(opts)
	if err != nil {
		return Result{}, err
	}
	for _, cmd := range cmds {
		if _, err = c.Apply(cmd); err != nil {
			return Result{}, err
		}
	}

	return c.Result(), nil
}

// floorDiv returns a divided by m, rounded toward negative infinity.
// Requires m > 0. Go's native / truncates toward zero, which differs
// exactly when a < 0 with a remainder.
func floorDiv(a, m int64) int64 {
	q := a / m
	if a%m != 0 && a < 0 {
		q--
	}

	return q
}

// floorMod returns a mod m in [0, m). Requires m > 0.
func floorMod(a, m int64) int64 {
	r := a % m
	if r < 0 {
		r += m
	}

	return r
}
