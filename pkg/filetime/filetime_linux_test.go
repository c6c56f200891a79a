//go:build linux

package filetime

import (
	"testing"

	"golang.org/x/sys/unix"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

// os.Stat does not expose atime, so check both recorded times through
// stat(2) directly.
func TestSetRecordsAccessTime(t *testing.T) {
	path := newTestFile(t)

	assert.NilError(t, Set(path, Times{Access: 1000, Modify: 2000}))

	var st unix.Stat_t
	assert.NilError(t, unix.Stat(path, &st))
	assert.Check(t, is.Equal(int64(st.Atim.Sec), int64(1000)))
	assert.Check(t, is.Equal(int64(st.Mtim.Sec), int64(2000)))
}

func TestSetPreciseRecordsAccessMicroseconds(t *testing.T) {
	path := newTestFile(t)

	assert.NilError(t, SetPrecise(path, PreciseTimes{
		AccessSec:  1000,
		AccessUsec: 250000,
		ModifySec:  2000,
		ModifyUsec: 500000,
	}))

	var st unix.Stat_t
	assert.NilError(t, unix.Stat(path, &st))
	assert.Check(t, is.Equal(int64(st.Atim.Sec), int64(1000)))
	assert.Check(t, is.Equal(int64(st.Atim.Nsec), int64(250000*1000)))
	assert.Check(t, is.Equal(int64(st.Mtim.Nsec), int64(500000*1000)))
}
