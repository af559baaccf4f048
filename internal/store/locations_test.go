package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	kerrors "github.com/quietfox/keyfold/internal/errors"
)

func TestDirNotFound(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := Dir()
	if !errors.Is(err, kerrors.ErrStoreNotFound) {
		t.Errorf("expected ErrStoreNotFound, got: %v", err)
	}
}

func TestDirPrefersConfigLayout(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	modern := filepath.Join(home, ".config", "keyfold")
	legacy := filepath.Join(home, ".keyfold")
	for _, dir := range []string{modern, legacy} {
		if err := os.MkdirAll(dir, 0700); err != nil {
			t.Fatalf("Failed to create %s: %v", dir, err)
		}
	}

	dir, err := Dir()
	if err != nil {
		t.Fatalf("Dir failed: %v", err)
	}
	if dir != modern {
		t.Errorf("Dir() = %s, want %s", dir, modern)
	}
}

func TestDirFallsBackToLegacyLayout(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	legacy := filepath.Join(home, ".keyfold")
	if err := os.MkdirAll(legacy, 0700); err != nil {
		t.Fatalf("Failed to create %s: %v", legacy, err)
	}

	dir, err := Dir()
	if err != nil {
		t.Fatalf("Dir failed: %v", err)
	}
	if dir != legacy {
		t.Errorf("Dir() = %s, want %s", dir, legacy)
	}
}

func TestDirSkipsFileAtModernLocation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if err := os.MkdirAll(filepath.Join(home, ".config"), 0700); err != nil {
		t.Fatalf("Failed to create .config: %v", err)
	}
	if err := os.WriteFile(filepath.Join(home, ".config", "keyfold"), []byte("stray"), 0600); err != nil {
		t.Fatalf("Failed to create stray file: %v", err)
	}
	legacy := filepath.Join(home, ".keyfold")
	if err := os.MkdirAll(legacy, 0700); err != nil {
		t.Fatalf("Failed to create %s: %v", legacy, err)
	}

	dir, err := Dir()
	if err != nil {
		t.Fatalf("Dir failed: %v", err)
	}
	if dir != legacy {
		t.Errorf("Dir() = %s, want %s", dir, legacy)
	}
}

func TestDirOnlyCandidateIsAFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if err := os.MkdirAll(filepath.Join(home, ".config"), 0700); err != nil {
		t.Fatalf("Failed to create .config: %v", err)
	}
	if err := os.WriteFile(filepath.Join(home, ".config", "keyfold"), []byte("stray"), 0600); err != nil {
		t.Fatalf("Failed to create stray file: %v", err)
	}

	_, err := Dir()
	if !errors.Is(err, kerrors.ErrStoreNotADirectory) {
		t.Errorf("expected ErrStoreNotADirectory, got: %v", err)
	}
}

func TestEnsureDirNestsUnderConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if err := os.MkdirAll(filepath.Join(home, ".config"), 0700); err != nil {
		t.Fatalf("Failed to create .config: %v", err)
	}

	dir, err := EnsureDir()
	if err != nil {
		t.Fatalf("EnsureDir failed: %v", err)
	}
	want := filepath.Join(home, ".config", "keyfold")
	if dir != want {
		t.Errorf("EnsureDir() = %s, want %s", dir, want)
	}

	marker := filepath.Join(dir, IssuerConfigFilename)
	info, err := os.Stat(marker)
	if err != nil {
		t.Fatalf("marker file missing: %v", err)
	}
	if info.Size() != 0 {
		t.Errorf("marker file should be zero-length, got %d bytes", info.Size())
	}
}

func TestEnsureDirLegacyFallback(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir, err := EnsureDir()
	if err != nil {
		t.Fatalf("EnsureDir failed: %v", err)
	}
	want := filepath.Join(home, ".keyfold")
	if dir != want {
		t.Errorf("EnsureDir() = %s, want %s", dir, want)
	}
}

func TestEnsureDirTruncatesMarker(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir, err := EnsureDir()
	if err != nil {
		t.Fatalf("EnsureDir failed: %v", err)
	}
	marker := filepath.Join(dir, IssuerConfigFilename)
	if err := os.WriteFile(marker, []byte("stale"), 0600); err != nil {
		t.Fatalf("Failed to write marker: %v", err)
	}

	if _, err := EnsureDir(); err != nil {
		t.Fatalf("second EnsureDir failed: %v", err)
	}
	info, err := os.Stat(marker)
	if err != nil {
		t.Fatalf("marker file missing: %v", err)
	}
	if info.Size() != 0 {
		t.Errorf("marker file should be truncated to zero length, got %d bytes", info.Size())
	}
}

func TestConcatToStoreDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir, err := EnsureDir()
	if err != nil {
		t.Fatalf("EnsureDir failed: %v", err)
	}

	path, err := ConcatToStoreDir("gitlab")
	if err != nil {
		t.Fatalf("ConcatToStoreDir failed: %v", err)
	}
	if path != filepath.Join(dir, "gitlab") {
		t.Errorf("ConcatToStoreDir(%q) = %s", "gitlab", path)
	}
}
