//go:build unix

// Package eintr re-invokes blocking syscalls that fail due to transient
// signal interruption.
package eintr

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// Retry invokes op until it returns anything other than EINTR, and
// returns that first non-interrupted result. Signal interruption is
// transient and bounded by the kernel's delivery rate, so there is no
// retry cap and no backoff.
func Retry(op func() error) error {
	for {
		err := op()
		if !errors.Is(err, unix.EINTR) {
			return err
		}
	}
}
