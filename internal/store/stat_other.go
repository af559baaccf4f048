//go:build !linux && !darwin

package store

import (
	"os"
	"time"
)

// statTimes returns the modification timestamp of path for both values on
// platforms without a portable access time. Callers sorting by access time
// degrade to modification-time order here.
func statTimes(path string) (mtime, atime time.Time) {
	info, err := os.Stat(path)
	if err != nil {
		return
	}
	return info.ModTime(), info.ModTime()
}
