// Package filetime updates file access and modification timestamps,
// with two representations (whole seconds, and seconds plus
// microseconds) and an optional relaxed path matching fallback for
// paths that do not resolve exactly.
package filetime

import (
	"context"
	"os"

	"github.com/containerd/log"
	"github.com/pkg/errors"

	"github.com/moby/systime/pkg/pathmatch"
)

// Times carries coarse, whole second access and modification times for
// compatibility with seconds-only callers.
type Times struct {
	Access int64
	Modify int64
}

// PreciseTimes carries access and modification times as seconds plus
// microseconds pairs. Microsecond fields are expected in [0, 1000000);
// out of range values are handed to the OS as given, the result is
// whatever the OS makes of them.
type PreciseTimes struct {
	AccessSec  int64
	AccessUsec int64
	ModifySec  int64
	ModifyUsec int64
}

// Updater sets file times, retrying through a path Resolver when the
// exact path is missing and relaxed matching is enabled for the
// process.
type Updater struct {
	resolver pathmatch.Resolver
}

// NewUpdater returns an Updater backed by r. A nil r disables the
// not-found fallback regardless of the process matching mode.
func NewUpdater(r pathmatch.Resolver) *Updater {
	return &Updater{resolver: r}
}

// Set updates path's access and modification times with one second
// granularity.
func (u *Updater) Set(path string, t Times) error {
	return u.update(path, func(p string) error {
		return setTimes(p, t)
	})
}

// SetPrecise updates path's access and modification times with
// microsecond granularity.
func (u *Updater) SetPrecise(path string, t PreciseTimes) error {
	return u.update(path, func(p string) error {
		return setTimesPrecise(p, t)
	})
}

// update runs op against path and, when the file is missing at the
// exact path while relaxed matching is on, once more against the
// resolver's corrected path. The fallback is only for not-found;
// permission and other failures indicate problems a corrected path
// cannot fix and are surfaced immediately.
func (u *Updater) update(path string, op func(string) error) error {
	err := op(path)
	if err == nil {
		return nil
	}
	if u.resolver == nil || !pathmatch.Enabled() || !errors.Is(err, os.ErrNotExist) {
		return err
	}
	located, ok := u.resolver.Find(path, true)
	if !ok {
		// Nothing better on disk; surface the original error.
		return err
	}
	log.G(context.TODO()).WithField("path", path).WithField("located", located).
		Debug("retrying utimes with relaxed path match")
	return op(located)
}

var defaultUpdater = &Updater{}

// Set updates path's access and modification times with one second
// granularity, without a path fallback.
func Set(path string, t Times) error {
	return defaultUpdater.Set(path, t)
}

// SetPrecise updates path's access and modification times with
// microsecond granularity, without a path fallback.
func SetPrecise(path string, t PreciseTimes) error {
	return defaultUpdater.SetPrecise(path, t)
}
