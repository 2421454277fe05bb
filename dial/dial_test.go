package dial_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/modring/dial"
)

// TestNewCounter_BadModulus verifies that a non-positive modulus is rejected.
func TestNewCounter_BadModulus(t *testing.T) {
	_, err := dial.NewCounter(dial.Options{Modulus: 0, Initial: 50})
	assert.ErrorIs(t, err, dial.ErrBadModulus, "modulus 0 must error")

	_, err = dial.NewCounter(dial.Options{Modulus: -100, Initial: 50})
	assert.ErrorIs(t, err, dial.ErrBadModulus, "negative modulus must error")
}

// TestApply_BadCommand ensures invalid direction and negative magnitude
// error out without mutating the counter.
func TestApply_BadCommand(t *testing.T) {
	c, err := dial.NewCounter(dial.DefaultOptions())
	require.NoError(t, err)

	_, err = c.Apply(dial.Command{Dir: dial.Direction(7), Magnitude: 1})
	assert.ErrorIs(t, err, dial.ErrBadDirection, "unknown direction must error")

	_, err = c.Apply(dial.Command{Dir: dial.Up, Magnitude: -1})
	assert.ErrorIs(t, err, dial.ErrNegativeMagnitude, "negative magnitude must error")

	assert.Equal(t, int64(50), c.Position(), "failed Apply must not move the dial")
	assert.Equal(t, dial.Result{}, c.Result(), "failed Apply must not touch counts")
}

// TestApply_ZeroMagnitude verifies that zero-magnitude commands leave both
// counts and the reported position unchanged from initial state.
func TestApply_ZeroMagnitude(t *testing.T) {
	for _, initial := range []int64{0, 1, 49, 50, 99} {
		c, err := dial.NewCounter(dial.Options{Modulus: 100, Initial: initial})
		require.NoError(t, err)

		for i := 0; i < 5; i++ {
			pos, aerr := c.Apply(dial.Command{Dir: dial.Up, Magnitude: 0})
			require.NoError(t, aerr)
			assert.Equal(t, initial, pos, "zero-magnitude command must not move the dial")
		}

		res := c.Result()
		if initial == 0 {
			// Resting on 0, every command "lands" there again.
			assert.Equal(t, uint64(5), res.Landings, "resting on 0 counts a landing per command")
			assert.Equal(t, uint64(0), res.Crossings, "no motion, no new crossing past the rest point")
		} else {
			assert.Equal(t, dial.Result{}, res, "away from 0, zero-magnitude commands count nothing")
		}
	}
}

// TestApply_DownThroughZero reproduces the canonical L68-from-50 move:
// raw post -18, normalized landing 82, exactly one crossing.
func TestApply_DownThroughZero(t *testing.T) {
	c, err := dial.NewCounter(dial.DefaultOptions())
	require.NoError(t, err)

	pos, err := c.Apply(dial.Command{Dir: dial.Down, Magnitude: 68})
	require.NoError(t, err)

	assert.Equal(t, int64(-18), c.Raw(), "raw accumulator must stay unnormalized")
	assert.Equal(t, int64(82), pos, "normalized landing")
	assert.Equal(t, dial.Result{Landings: 0, Crossings: 1}, c.Result(), "one pass through 0")
}

// TestApply_LargeUpRotation checks multi-wrap counting: R1000 from 50
// crosses 0 ten times and returns to label 50.
func TestApply_LargeUpRotation(t *testing.T) {
	c, err := dial.NewCounter(dial.DefaultOptions())
	require.NoError(t, err)

	pos, err := c.Apply(dial.Command{Dir: dial.Up, Magnitude: 1000})
	require.NoError(t, err)

	assert.Equal(t, int64(50), pos, "full wraps return to the start label")
	assert.Equal(t, int64(1050), c.Raw(), "raw accumulator keeps the full displacement")
	assert.Equal(t, uint64(10), c.Result().Crossings, "ten wraps, ten crossings")
	assert.Equal(t, uint64(0), c.Result().Landings, "never stops on 0")
}

// TestApply_LandingOnZero verifies that stopping exactly on 0 counts both
// a landing and a crossing.
func TestApply_LandingOnZero(t *testing.T) {
	c, err := dial.NewCounter(dial.DefaultOptions())
	require.NoError(t, err)

	pos, err := c.Apply(dial.Command{Dir: dial.Up, Magnitude: 50})
	require.NoError(t, err)

	assert.Equal(t, int64(0), pos, "50+50 stops on the zero mark")
	assert.Equal(t, dial.Result{Landings: 1, Crossings: 1}, c.Result(),
		"stopping on 0 is both a landing and a crossing")
}

// TestApply_ZeroBoundaryByDirection pins the asymmetric boundary rule
// at the zero mark: an Up move hits the marks it arrives on (multiples
// in (pre, post]), a Down move hits the marks it departs from
// (multiples in (post, pre]). Stopping on 0 is always a landing, but it
// is a crossing only on the arriving (Up) side.
func TestApply_ZeroBoundaryByDirection(t *testing.T) {
	// Down landing exactly on 0: no crossing, one landing.
	c, err := dial.NewCounter(dial.Options{Modulus: 100, Initial: 1})
	require.NoError(t, err)
	pos, err := c.Apply(dial.Command{Dir: dial.Down, Magnitude: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(0), pos)
	assert.Equal(t, dial.Result{Landings: 1, Crossings: 0}, c.Result(),
		"moving down onto 0 lands without crossing")

	// Down departing 0: one crossing, no landing.
	c, err = dial.NewCounter(dial.Options{Modulus: 100, Initial: 0})
	require.NoError(t, err)
	pos, err = c.Apply(dial.Command{Dir: dial.Down, Magnitude: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(99), pos)
	assert.Equal(t, dial.Result{Landings: 0, Crossings: 1}, c.Result(),
		"moving down off 0 counts the departed mark")

	// Up mirror: landing on 0 crosses, departing 0 does not.
	c, err = dial.NewCounter(dial.Options{Modulus: 100, Initial: -1})
	require.NoError(t, err)
	_, err = c.Apply(dial.Command{Dir: dial.Up, Magnitude: 1})
	require.NoError(t, err)
	assert.Equal(t, dial.Result{Landings: 1, Crossings: 1}, c.Result(),
		"moving up onto 0 both lands and crosses")

	c, err = dial.NewCounter(dial.Options{Modulus: 100, Initial: 0})
	require.NoError(t, err)
	_, err = c.Apply(dial.Command{Dir: dial.Up, Magnitude: 1})
	require.NoError(t, err)
	assert.Equal(t, dial.Result{Landings: 0, Crossings: 0}, c.Result(),
		"moving up off 0 leaves the mark uncounted")
}

// TestApply_NegativeAccumulatorCarries drives the raw accumulator deep
// negative and verifies later crossings stay correct. Normalizing the
// state between commands would break this sequence.
func TestApply_NegativeAccumulatorCarries(t *testing.T) {
	c, err := dial.NewCounter(dial.DefaultOptions())
	require.NoError(t, err)

	// 50 -> -250: passes 0, -100 and -200, stopping on label 50.
	_, err = c.Apply(dial.Command{Dir: dial.Down, Magnitude: 300})
	require.NoError(t, err)
	assert.Equal(t, int64(-250), c.Raw())
	assert.Equal(t, dial.Result{Landings: 0, Crossings: 3}, c.Result())

	// -250 -> 30: passes -200, -100 and 0.
	pos, err := c.Apply(dial.Command{Dir: dial.Up, Magnitude: 280})
	require.NoError(t, err)
	assert.Equal(t, int64(30), pos)
	assert.Equal(t, dial.Result{Landings: 0, Crossings: 6}, c.Result())
}

// TestProcess_Sequence runs a small mixed script end to end.
func TestProcess_Sequence(t *testing.T) {
	cmds := []dial.Command{
		{Dir: dial.Down, Magnitude: 68},  // 50 -> -18, crossing
		{Dir: dial.Up, Magnitude: 18},    // -18 -> 0, landing + crossing
		{Dir: dial.Up, Magnitude: 1000},  // 0 -> 1000, 10 crossings, landing on 0
		{Dir: dial.Down, Magnitude: 0},   // still on 0: landing, no crossing
		{Dir: dial.Up, Magnitude: 1},     // leave 0
	}

	res, err := dial.Process(cmds, dial.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, uint64(3), res.Landings, "three commands finish on 0")
	assert.Equal(t, uint64(12), res.Crossings, "1+1+10 passes through 0")
}

// TestProcess_StopsOnError verifies Process reports the first bad command.
func TestProcess_StopsOnError(t *testing.T) {
	cmds := []dial.Command{
		{Dir: dial.Up, Magnitude: 10},
		{Dir: dial.Direction(-1), Magnitude: 10},
	}

	_, err := dial.Process(cmds, dial.DefaultOptions())
	assert.ErrorIs(t, err, dial.ErrBadDirection)
}

// TestCounter_PositionMatchesNormalizedRaw cross-checks the two views of
// position over a scripted run.
func TestCounter_PositionMatchesNormalizedRaw(t *testing.T) {
	c, err := dial.NewCounter(dial.Options{Modulus: 7, Initial: 3})
	require.NoError(t, err)

	script := []dial.Command{
		{Dir: dial.Down, Magnitude: 10},
		{Dir: dial.Up, Magnitude: 4},
		{Dir: dial.Down, Magnitude: 22},
		{Dir: dial.Up, Magnitude: 100},
	}
	for _, cmd := range script {
		pos, aerr := c.Apply(cmd)
		require.NoError(t, aerr)
		assert.Equal(t, c.Position(), pos, "Apply must return the normalized view")
		assert.GreaterOrEqual(t, pos, int64(0))
		assert.Less(t, pos, int64(7))
	}
}
