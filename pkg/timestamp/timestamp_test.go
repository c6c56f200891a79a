package timestamp

import (
	"testing"
	"time"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestResolution(t *testing.T) {
	res, err := Resolution()
	assert.NilError(t, err)
	assert.Check(t, res > 0, "resolution must be positive on success, got %d", res)
}

// Resolution must report the same figure for the lifetime of the
// process; the clock source is fixed on first use.
func TestResolutionStable(t *testing.T) {
	first, err := Resolution()
	assert.NilError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Resolution()
		assert.NilError(t, err)
		assert.Check(t, is.Equal(first, again))
	}
}

func TestNowNonDecreasing(t *testing.T) {
	prev, err := Now()
	assert.NilError(t, err)
	for i := 0; i < 1000; i++ {
		cur, err := Now()
		assert.NilError(t, err)
		assert.Check(t, cur >= prev, "timestamp went backwards: %d then %d", prev, cur)
		prev = cur
	}
}

func TestTimebaseInfo(t *testing.T) {
	tb := TimebaseInfo()
	assert.Check(t, tb.Numer >= 1, "numer %d", tb.Numer)
	assert.Check(t, tb.Denom >= 1, "denom %d", tb.Denom)
}

func TestAbsolute(t *testing.T) {
	ticks, err := Absolute()
	if err != nil {
		assert.ErrorIs(t, err, ErrNoAbsoluteTime)
		assert.Check(t, is.Equal(ticks, uint64(0)))
		return
	}
	assert.Check(t, ticks > 0)
}

func TestSince(t *testing.T) {
	start, err := Now()
	assert.NilError(t, err)

	time.Sleep(10 * time.Millisecond)

	elapsed, err := Since(start)
	assert.NilError(t, err)
	assert.Check(t, elapsed >= 10*time.Millisecond, "measured only %s", elapsed)
	assert.Check(t, elapsed < time.Minute, "measured %s", elapsed)
}

func TestSinceFutureStart(t *testing.T) {
	cur, err := Now()
	assert.NilError(t, err)

	_, err = Since(cur + uint64(time.Hour))
	assert.Check(t, err != nil)
}

// Timestamps combined with the reported resolution must measure real
// time in the right ballpark regardless of which backend is active.
func TestResolutionMeasuresSeconds(t *testing.T) {
	res, err := Resolution()
	assert.NilError(t, err)
	tb := TimebaseInfo()

	before, err := Now()
	assert.NilError(t, err)
	time.Sleep(50 * time.Millisecond)
	after, err := Now()
	assert.NilError(t, err)

	elapsedNanos := (after - before) * uint64(tb.Numer) / uint64(tb.Denom)
	if res == secondsToMicroseconds {
		elapsedNanos = (after - before) * 1000
	}
	assert.Check(t, elapsedNanos >= uint64(50*time.Millisecond),
		"measured only %dns across a 50ms sleep", elapsedNanos)
	assert.Check(t, elapsedNanos < uint64(time.Minute),
		"measured %dns across a 50ms sleep", elapsedNanos)
}
