package store

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"
)

func TestCompareByName(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"a", "b", -1},
		{"b", "a", 1},
		{"same", "same", 0},
		{"a", "ab", -1},
		{"B", "a", -1}, // byte-wise, not case-folded
	}
	for _, tt := range tests {
		if got := CompareByName(tt.a, tt.b); got != tt.want {
			t.Errorf("CompareByName(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCompareByDateModified(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, filepath.Join(dir, "old"), "x")
	writeTestFile(t, filepath.Join(dir, "new"), "x")

	base := time.Now().Add(-time.Hour)
	if err := setFileTimes(dir, "old", base, base); err != nil {
		t.Fatalf("Failed to set times: %v", err)
	}
	if err := setFileTimes(dir, "new", base.Add(time.Minute), base.Add(time.Minute)); err != nil {
		t.Fatalf("Failed to set times: %v", err)
	}

	if got := CompareByDateModified(dir, "old", "new"); got != -1 {
		t.Errorf("CompareByDateModified(old, new) = %d, want -1", got)
	}
	if got := CompareByDateModified(dir, "new", "old"); got != 1 {
		t.Errorf("CompareByDateModified(new, old) = %d, want 1", got)
	}
	if got := CompareByDateModified(dir, "old", "old"); got != 0 {
		t.Errorf("CompareByDateModified(old, old) = %d, want 0", got)
	}
}

func TestCompareByDateAccessed(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, filepath.Join(dir, "stale"), "x")
	writeTestFile(t, filepath.Join(dir, "fresh"), "x")

	base := time.Now().Add(-time.Hour)
	if err := setFileTimes(dir, "stale", base, base); err != nil {
		t.Fatalf("Failed to set times: %v", err)
	}
	if err := setFileTimes(dir, "fresh", base.Add(time.Minute), base); err != nil {
		t.Fatalf("Failed to set times: %v", err)
	}

	if got := CompareByDateAccessed(dir, "stale", "fresh"); got != -1 {
		t.Errorf("CompareByDateAccessed(stale, fresh) = %d, want -1", got)
	}
}

// A file that cannot be stat'ed keeps the zero timestamp and sorts oldest.
func TestCompareMissingFileSortsOldest(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, filepath.Join(dir, "present"), "x")

	if got := CompareByDateModified(dir, "missing", "present"); got != -1 {
		t.Errorf("CompareByDateModified(missing, present) = %d, want -1", got)
	}
	if got := CompareByDateModified(dir, "missing", "also-missing"); got != 0 {
		t.Errorf("CompareByDateModified over two missing files = %d, want 0", got)
	}
}

func TestSortMostRecentlyModifiedFirst(t *testing.T) {
	dir := t.TempDir()
	names := []string{"first", "second", "third"}
	base := time.Now().Add(-time.Hour)
	for i, name := range names {
		writeTestFile(t, filepath.Join(dir, name), "x")
		when := base.Add(time.Duration(i) * time.Minute)
		if err := setFileTimes(dir, name, when, when); err != nil {
			t.Fatalf("Failed to set times: %v", err)
		}
	}

	listing := []string{"second", "first", "third"}
	sort.SliceStable(listing, func(i, j int) bool {
		return CompareByDateModified(dir, listing[i], listing[j]) > 0
	})

	want := []string{"third", "second", "first"}
	for i := range want {
		if listing[i] != want[i] {
			t.Fatalf("sorted listing = %v, want %v", listing, want)
		}
	}
}

func setFileTimes(dir, name string, atime, mtime time.Time) error {
	return os.Chtimes(filepath.Join(dir, name), atime, mtime)
}
