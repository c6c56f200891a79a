//go:build darwin && cgo

package timestamp

/*
#include <mach/kern_return.h>
#include <mach/mach_time.h>
*/
import "C"

// resolution scales the Mach timebase so the reported figure is in
// nanosecond units like the monotonic backend's. Multiply before
// dividing: denom/numer alone truncates to zero on hardware where a
// tick is longer than a nanosecond, and 1e9*denom stays well inside
// uint64.
func resolution() (uint64, error) {
	var mtid C.mach_timebase_info_data_t
	if C.mach_timebase_info(&mtid) != C.KERN_SUCCESS {
		return 0, ErrNoMonotonicClock
	}
	return secondsToNanoseconds * uint64(mtid.denom) / uint64(mtid.numer), nil
}

// now returns the raw tick count unconverted; callers combine it with
// the resolution or the timebase ratio.
func now() (uint64, error) {
	return uint64(C.mach_absolute_time()), nil
}

func absolute() (uint64, error) {
	return uint64(C.mach_absolute_time()), nil
}

func timebase() Timebase {
	var mtid C.mach_timebase_info_data_t
	if C.mach_timebase_info(&mtid) != C.KERN_SUCCESS {
		return Timebase{Numer: 1, Denom: 1}
	}
	return Timebase{Numer: uint32(mtid.numer), Denom: uint32(mtid.denom)}
}

func toNanoseconds(ticks uint64) uint64 {
	tb := timebase()
	return ticks * uint64(tb.Numer) / uint64(tb.Denom)
}
