//go:build darwin

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
	mtime = time.Unix(st.Mtimespec.Sec, st.Mtimespec.Nsec)
	atime = time.Unix(st.Atimespec.Sec, st.Atimespec.Nsec)
	return
}
