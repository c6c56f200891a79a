//go:build unix

package filetime

import (
	"time"

	"golang.org/x/sys/unix"

	"github.com/moby/systime/internal/eintr"
)

func setTimes(path string, t Times) error {
	tv := []unix.Timeval{
		unix.NsecToTimeval(t.Access * int64(time.Second)),
		unix.NsecToTimeval(t.Modify * int64(time.Second)),
	}
	return eintr.Retry(func() error {
		return unix.Utimes(path, tv)
	})
}

func setTimesPrecise(path string, t PreciseTimes) error {
	tv := []unix.Timeval{
		unix.NsecToTimeval(t.AccessSec*int64(time.Second) + t.AccessUsec*int64(time.Microsecond)),
		unix.NsecToTimeval(t.ModifySec*int64(time.Second) + t.ModifyUsec*int64(time.Microsecond)),
	}
	return eintr.Retry(func() error {
		return unix.Utimes(path, tv)
	})
}
