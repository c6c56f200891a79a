//go:build !unix

package filetime

import (
	"os"
	"time"
)

// Platforms without utimes go through os.Chtimes. EINTR does not
// surface here, so no retry wrapper either.

func setTimes(path string, t Times) error {
	return os.Chtimes(path, time.Unix(t.Access, 0), time.Unix(t.Modify, 0))
}

func setTimesPrecise(path string, t PreciseTimes) error {
	atime := time.Unix(t.AccessSec, t.AccessUsec*int64(time.Microsecond))
	mtime := time.Unix(t.ModifySec, t.ModifyUsec*int64(time.Microsecond))
	return os.Chtimes(path, atime, mtime)
}
