//go:build linux || freebsd || netbsd || openbsd || dragonfly || solaris

package timestamp

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// resolution probes CLOCK_MONOTONIC with a real read. Verifying the
// call here means now does not have to branch on clock availability.
func resolution() (uint64, error) {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		return 0, errors.Wrapf(ErrNoMonotonicClock, "clock_gettime(CLOCK_MONOTONIC): %v", err)
	}
	return secondsToNanoseconds, nil
}

func now() (uint64, error) {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		// Cannot happen once the resolution probe succeeded.
		return 0, errors.Wrap(err, "clock_gettime(CLOCK_MONOTONIC)")
	}
	return uint64(ts.Sec)*secondsToNanoseconds + uint64(ts.Nsec), nil
}

func absolute() (uint64, error) {
	return 0, ErrNoAbsoluteTime
}

func timebase() Timebase {
	return Timebase{Numer: 1, Denom: 1}
}

// The monotonic clock already reports nanoseconds.
func toNanoseconds(ticks uint64) uint64 {
	return ticks
}
