package store

import (
	"fmt"
	"os"

	kerrors "github.com/quietfox/keyfold/internal/errors"
)

// ReadFile reads the whole file at path.
// A missing file is reported as ErrFileNotFound; other failures carry the
// underlying system reason.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", kerrors.ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// WriteFile writes data to path with owner-only permissions, creating or
// truncating the file.
func WriteFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// FileExists reports whether a file exists at path.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// RemoveFile removes the file at path.
func RemoveFile(path string) error {
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", kerrors.ErrFileNotFound, path)
		}
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}
	return nil
}

// DirExists reports whether path exists and is a directory. A missing path is
// not an error.
func DirExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check directory %s: %w", path, err)
	}
	return info.IsDir(), nil
}

// CreateDir creates the directory at path, including missing parents, with
// owner-only permissions. Creating an existing directory is not an error.
func CreateDir(path string) error {
	if err := os.MkdirAll(path, 0700); err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	return nil
}
