package store

import (
	"path/filepath"
	"strings"
	"time"
)

// CompareByName orders two bare filenames by byte-wise lexical comparison.
// Returns -1, 0, or 1.
func CompareByName(name1, name2 string) int {
	return strings.Compare(name1, name2)
}

// CompareByDateModified orders two filenames in dir by last-modification
// time, oldest first. A file that cannot be stat'ed keeps the zero timestamp
// and therefore sorts as oldest; this matches the historical behavior and is
// deliberate (missing entries sink to the front of a most-recently-used
// listing instead of failing it).
func CompareByDateModified(dir, name1, name2 string) int {
	mtime1, _ := statTimes(filepath.Join(dir, name1))
	mtime2, _ := statTimes(filepath.Join(dir, name2))
	return compareTimes(mtime1, mtime2)
}

// CompareByDateAccessed orders two filenames in dir by last-access time,
// oldest first. Stat failures behave as in CompareByDateModified.
func CompareByDateAccessed(dir, name1, name2 string) int {
	_, atime1 := statTimes(filepath.Join(dir, name1))
	_, atime2 := statTimes(filepath.Join(dir, name2))
	return compareTimes(atime1, atime2)
}

func compareTimes(t1, t2 time.Time) int {
	if t1.Before(t2) {
		return -1
	}
	if t1.After(t2) {
		return 1
	}
	return 0
}
