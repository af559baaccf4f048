package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// MatchFunc decides whether a directory entry belongs in a listing. It is
// called with the bare filename and the caller-supplied argument.
type MatchFunc func(name, arg string) bool

// ListDirIf enumerates the regular files in dir whose names satisfy match.
// A nil match accepts every entry. Entries that are not regular files
// (directories, sockets, symlinks) are skipped based on the cheap type
// information the platform exposes during enumeration.
//
// The result is in directory enumeration order, which is platform-dependent;
// callers needing a deterministic order must sort afterward.
func ListDirIf(dir string, match MatchFunc, arg string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open directory %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if match == nil || match(entry.Name(), arg) {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// ListDir enumerates all regular files in dir.
func ListDir(dir string) ([]string, error) {
	return ListDirIf(dir, nil, "")
}

// ListAccountConfigs returns the bare filenames of all account configs in the
// store directory.
func ListAccountConfigs() ([]string, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	return ListDirIf(dir, matchAccountConfig, "")
}

// ListClientConfigs returns the client configs in the store directory as
// fully qualified paths. Note the asymmetry with ListAccountConfigs, which
// returns bare names; existing callers depend on both shapes.
func ListClientConfigs() ([]string, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	names, err := ListDirIf(dir, matchClientConfig, "")
	if err != nil {
		return nil, err
	}
	for i, name := range names {
		names[i] = filepath.Join(dir, name)
	}
	return names, nil
}

func matchAccountConfig(name, _ string) bool { return IsAccountConfig(name) }
func matchClientConfig(name, _ string) bool  { return IsClientConfig(name) }
