//go:build linux

package store

import (
	"time"

	"golang.org/x/sys/unix"
)

// statTimes returns the modification and access timestamps of path. On stat
// failure both stay at the zero value; see the comparator doc comments.
func statTimes(path string) (mtime, atime time.Time) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return
	}
	mtime = time.Unix(st.Mtim.Sec, st.Mtim.Nsec)
	atime = time.Unix(st.Atim.Sec, st.Atim.Nsec)
	return
}
