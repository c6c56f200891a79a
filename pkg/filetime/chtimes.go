package filetime

import (
	"math"
	"time"
)

// Used by Chtimes
var unixEpochTime, unixMaxTime time.Time

func init() {
	unixEpochTime = time.Unix(0, 0)
	if math.MaxInt == math.MaxInt32 {
		// This is a 32 bit timespec
		unixMaxTime = time.Unix(math.MaxInt32, 0)
	} else {
		// This is a 64 bit timespec
		//
		// Note that this intentionally sets nsec (not sec), which sets both sec
		// and nsec internally in time.Unix();
		// https://github.com/golang/go/blob/go1.19.2/src/time/time.go#L1364-L1380
		unixMaxTime = time.Unix(0, math.MaxInt64)
	}
}

// Chtimes changes the access time and modified time of a file at the
// given path. Times prior to the Unix epoch or after the end of Unix
// time are clamped to the epoch, where the underlying calls would
// otherwise have undefined behavior.
func Chtimes(path string, atime time.Time, mtime time.Time) error {
	if atime.Before(unixEpochTime) || atime.After(unixMaxTime) {
		atime = unixEpochTime
	}
	if mtime.Before(unixEpochTime) || mtime.After(unixMaxTime) {
		mtime = unixEpochTime
	}

	return SetPrecise(path, PreciseTimes{
		AccessSec:  atime.Unix(),
		AccessUsec: int64(atime.Nanosecond() / int(time.Microsecond)),
		ModifySec:  mtime.Unix(),
		ModifyUsec: int64(mtime.Nanosecond() / int(time.Microsecond)),
	})
}
