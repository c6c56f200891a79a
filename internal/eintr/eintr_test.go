//go:build unix

package eintr

import (
	"testing"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
	"gotest.tools/v3/assert"
)

func TestRetryTransparent(t *testing.T) {
	calls := 0
	err := Retry(func() error {
		calls++
		if calls <= 3 {
			return unix.EINTR
		}
		return nil
	})
	assert.NilError(t, err)
	assert.Equal(t, calls, 4)
}

func TestRetryStopsOnOtherErrors(t *testing.T) {
	calls := 0
	err := Retry(func() error {
		calls++
		return unix.EACCES
	})
	assert.ErrorIs(t, err, unix.EACCES)
	assert.Equal(t, calls, 1)
}

func TestRetryImmediateSuccess(t *testing.T) {
	calls := 0
	err := Retry(func() error {
		calls++
		return nil
	})
	assert.NilError(t, err)
	assert.Equal(t, calls, 1)
}

func TestRetryWrappedInterrupt(t *testing.T) {
	calls := 0
	err := Retry(func() error {
		calls++
		if calls == 1 {
			return errors.Wrap(unix.EINTR, "utimes")
		}
		return nil
	})
	assert.NilError(t, err)
	assert.Equal(t, calls, 2)
}
