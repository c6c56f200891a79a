// Package timestamp exposes the best monotonic time source the platform
// offers: the current tick count, the source's resolution, and the tick
// to nanosecond conversion ratio.
//
// Exactly one of three backends is compiled in: the POSIX monotonic
// clock, the Mach absolute timer, or a wall clock derived fallback.
// Callers never branch on platform; they combine the timestamp with the
// reported resolution (or the timebase ratio) to obtain wall units.
package timestamp

import (
	"sync"
	"time"

	"github.com/pkg/errors"
)

const (
	secondsToMicroseconds = 1000000    // 10^6
	secondsToNanoseconds  = 1000000000 // 10^9
)

// ErrNoMonotonicClock is returned when the platform's monotonic clock
// facility cannot be used. Features that depend on monotonic timing
// should treat it as fatal.
var ErrNoMonotonicClock = errors.New("monotonic clock is not usable")

// ErrNoAbsoluteTime is returned by Absolute on platforms without a
// tick-based absolute timer.
var ErrNoAbsoluteTime = errors.New("absolute tick time is not supported on this platform")

// Timebase is the tick to nanosecond conversion ratio of the active
// clock source: nanoseconds = ticks * Numer / Denom. On platforms
// without tick-based timing it is the identity ratio {1, 1}; that is a
// "no conversion needed" sentinel, not an error.
type Timebase struct {
	Numer uint32
	Denom uint32
}

var (
	probeOnce sync.Once
	probeRes  uint64
	probeErr  error
)

// Resolution reports the resolution of the active clock source in ticks
// per second: 1e9 for the monotonic and tick-based sources (tick
// resolution is normalized through the timebase ratio so it is always
// expressed in nanosecond units), 1e6 for the wall clock fallback.
//
// The source is probed on the first call and fixed for the lifetime of
// the process; check the error once at startup, later reads through Now
// do not re-validate. On failure the resolution is 0.
func Resolution() (uint64, error) {
	probeOnce.Do(func() {
		probeRes, probeErr = resolution()
	})
	return probeRes, probeErr
}

// Now returns the current value of the active clock source. Units are
// source ticks: nanoseconds for the monotonic clock, raw unconverted
// ticks on tick-based platforms, microseconds for the fallback.
//
// Values count from an arbitrary epoch, never decrease within a
// process, and are meaningless across processes or reboots.
func Now() (uint64, error) {
	return now()
}

// Absolute returns the raw, unconverted tick count on tick-based
// platforms. It exists separately from Now for callers that need the
// raw ticks specifically, e.g. to apply the timebase ratio themselves.
// Everywhere else it returns 0 and ErrNoAbsoluteTime.
func Absolute() (uint64, error) {
	return absolute()
}

// TimebaseInfo returns the tick to nanosecond conversion ratio of the
// active clock source. It always succeeds.
func TimebaseInfo() Timebase {
	return timebase()
}

// Since converts the difference between a prior Now value and the
// current reading into a duration, using the backend's native tick to
// nanosecond conversion.
func Since(start uint64) (time.Duration, error) {
	end, err := now()
	if err != nil {
		return 0, err
	}
	if end < start {
		return 0, errors.Errorf("timestamp %d was not produced by an earlier Now call", start)
	}
	return time.Duration(toNanoseconds(end - start)), nil
}
