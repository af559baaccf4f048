package store

import (
	"fmt"
	"os"
	"path/filepath"

	kerrors "github.com/quietfox/keyfold/internal/errors"
)

// Reserved filenames inside the store directory. Both end in ".config" so the
// classifier keeps them out of the account listing.
const (
	// IssuerConfigFilename is the issuer/global config marker created empty
	// when the store directory is first established.
	IssuerConfigFilename = "issuer.config"

	// SettingsFilename holds the agent settings (TOML). Written only when a
	// setting changes, never by EnsureDir.
	SettingsFilename = "store.config"
)

// possibleLocations are the store directory candidates relative to the user's
// home directory, in priority order. The first entry is the modern layout,
// the second the legacy top-level dotted directory. The list is fixed; no
// runtime mutation.
var possibleLocations = [...]string{
	filepath.Join(".config", "keyfold"),
	".keyfold",
}

// Dir returns the store directory, trying each candidate location in priority
// order and returning the first one that exists as a directory. A candidate
// occupied by something other than a directory is skipped, so a stray file at
// the modern location cannot shadow a valid legacy store.
//
// Returns ErrStoreNotFound when no candidate exists yet, or
// ErrStoreNotADirectory when the only occupied candidate is not a directory;
// callers that need the directory to exist should run EnsureDir first.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	notADir := ""
	for _, loc := range possibleLocations {
		path := filepath.Join(home, loc)
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return "", fmt.Errorf("failed to check store location %s: %w", path, err)
		}
		if !info.IsDir() {
			if notADir == "" {
				notADir = path
			}
			continue
		}
		return path, nil
	}

	if notADir != "" {
		return "", fmt.Errorf("%w: %s", kerrors.ErrStoreNotADirectory, notADir)
	}
	return "", kerrors.ErrStoreNotFound
}

// EnsureDir creates the store directory and the zero-length issuer config
// marker inside it, and returns the directory path.
//
// The target is chosen deterministically: if ~/.config exists the store nests
// under it, otherwise the legacy dotted directory is used. An existing marker
// file is truncated back to zero length.
func EnsureDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	target := filepath.Join(home, possibleLocations[1])
	if ok, err := DirExists(filepath.Join(home, ".config")); err != nil {
		return "", err
	} else if ok {
		target = filepath.Join(home, possibleLocations[0])
	}

	if err := CreateDir(target); err != nil {
		return "", err
	}

	marker, err := os.OpenFile(filepath.Join(target, IssuerConfigFilename), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return "", fmt.Errorf("failed to create issuer config marker: %w", err)
	}
	if err := marker.Close(); err != nil {
		return "", fmt.Errorf("failed to close issuer config marker: %w", err)
	}

	return target, nil
}

// ConcatToStoreDir qualifies a bare filename against the resolved store
// directory. Pure path construction apart from the directory lookup; the
// result is not checked for existence.
func ConcatToStoreDir(filename string) (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, filename), nil
}
