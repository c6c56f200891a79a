//go:build !linux && !freebsd && !netbsd && !openbsd && !dragonfly && !solaris && !(darwin && cgo)

package timestamp

import "time"

// Low resolution fallback for platforms without a usable monotonic or
// tick-based facility. Counting from a process-local epoch with
// time.Since rides on the runtime's monotonic reading, so successive
// values still never decrease.
var wallEpoch = time.Now()

func resolution() (uint64, error) {
	return secondsToMicroseconds, nil
}

func now() (uint64, error) {
	return uint64(time.Since(wallEpoch).Microseconds()), nil
}

func absolute() (uint64, error) {
	return 0, ErrNoAbsoluteTime
}

func timebase() Timebase {
	return Timebase{Numer: 1, Denom: 1}
}

func toNanoseconds(ticks uint64) uint64 {
	return ticks * 1000
}
