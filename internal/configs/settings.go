package configs

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"

	kerrors "github.com/quietfox/keyfold/internal/errors"
	"github.com/quietfox/keyfold/internal/store"
)

// Sort orders accepted by Settings.DefaultSort and `keyfold store list --sort`.
const (
	SortByName     = "name"
	SortByModified = "modified"
	SortByAccessed = "accessed"
)

// Settings are the agent's non-secret preferences, stored as TOML in the
// store directory under store.SettingsFilename. The ".config" suffix of that
// name keeps the file out of the account and client listings.
type Settings struct {
	Store  StoreSettings  `toml:"store"`
	Prompt PromptSettings `toml:"prompt"`
}

type StoreSettings struct {
	// UUID identifies this store to the agent. Generated on first save.
	UUID string `toml:"store_uuid"`

	// DefaultSort is the listing order when --sort is not given.
	DefaultSort string `toml:"default_sort"`
}

type PromptSettings struct {
	// PasswordCommand, when set, supplies passwords non-interactively
	// (its stdout becomes the password). Wrong passwords are then not
	// retried.
	PasswordCommand string `toml:"password_command"`
}

// SortOrder returns the configured default sort, falling back to name order.
func (s *Settings) SortOrder() string {
	switch s.Store.DefaultSort {
	case SortByModified, SortByAccessed:
		return s.Store.DefaultSort
	default:
		return SortByName
	}
}

// LoadSettings loads the agent settings from the store directory. A missing
// store, missing settings file, or empty settings file all yield defaults
// without error.
func LoadSettings() (*Settings, error) {
	settings := &Settings{}

	path, err := store.ConcatToStoreDir(store.SettingsFilename)
	if err != nil {
		if errors.Is(err, kerrors.ErrStoreNotFound) {
			return settings, nil
		}
		return nil, err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return settings, nil
	}

	if err := LoadTOML(path, settings); err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return settings, nil
}

// SaveSettings writes the agent settings to the store directory, which must
// exist.
func SaveSettings(settings *Settings) error {
	path, err := store.ConcatToStoreDir(store.SettingsFilename)
	if err != nil {
		return err
	}
	if err := SaveTOML(path, settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// EnsureSettings loads the settings and fills in the store UUID on first use,
// persisting it.
func EnsureSettings() (*Settings, error) {
	settings, err := LoadSettings()
	if err != nil {
		return nil, err
	}

	if settings.Store.UUID == "" {
		settings.Store.UUID = uuid.New().String()
		if err := SaveSettings(settings); err != nil {
			return nil, err
		}
	}

	return settings, nil
}
