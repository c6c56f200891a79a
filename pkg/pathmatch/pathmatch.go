// Package pathmatch holds the process wide relaxed path matching
// configuration and the capability interface used to locate a file
// whose exact path does not resolve.
//
// The search strategy itself (case folding, drive letter normalization)
// lives behind the Resolver interface; this package only owns the
// on/off state consulted by callers on a not-found error.
package pathmatch

import "sync/atomic"

// Mode is a bit set of relaxed matching behaviours.
type Mode uint32

const (
	// ModeNone disables relaxed matching.
	ModeNone Mode = 0x0
	// ModeUnknown tolerates mismatches whose kind is not known in
	// advance; the resolver tries everything it can.
	ModeUnknown Mode = 0x1
	// ModeDrive tolerates drive letter style prefixes on the
	// requested path.
	ModeDrive Mode = 0x2
	// ModeCase tolerates case differences between the requested path
	// and the entry on disk.
	ModeCase Mode = 0x4
)

var mode atomic.Uint32

// SetMode replaces the process wide matching mode.
func SetMode(m Mode) {
	mode.Store(uint32(m))
}

// CurrentMode returns the process wide matching mode.
func CurrentMode() Mode {
	return Mode(mode.Load())
}

// Enabled reports whether any relaxed matching behaviour is on.
func Enabled() bool {
	return CurrentMode() != ModeNone
}

// Resolver locates a filesystem entry for a path that failed to resolve
// exactly. mustExist requires the final path element to exist as well,
// not just its parents. ok is false when no plausible entry was found.
type Resolver interface {
	Find(path string, mustExist bool) (located string, ok bool)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(path string, mustExist bool) (string, bool)

// Find calls f.
func (f ResolverFunc) Find(path string, mustExist bool) (string, bool) {
	return f(path, mustExist)
}
