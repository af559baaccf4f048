package workflows

import (
	"context"
	"errors"
	"fmt"

	"github.com/quietfox/keyfold/internal/configs"
	kerrors "github.com/quietfox/keyfold/internal/errors"
	"github.com/quietfox/keyfold/internal/store"
)

// InitResult contains the outcome of an init operation.
type InitResult struct {
	// StorePath is the store directory.
	StorePath string

	// StoreUUID identifies the store to the agent.
	StoreUUID string

	// Created indicates whether the directory was created by this call.
	Created bool
}

// Init establishes the credential store: it creates the store directory (and
// the zero-length issuer config marker) if no candidate location exists yet,
// and ensures the store has a persisted identity.
//
// Running Init against an existing store is harmless; the existing directory
// and marker are left untouched.
func Init(ctx context.Context) (*InitResult, error) {
	created := false

	dir, err := store.Dir()
	if errors.Is(err, kerrors.ErrStoreNotFound) {
		dir, err = store.EnsureDir()
		created = true
	}
	if err != nil {
		return nil, fmt.Errorf("establishing store directory: %w", err)
	}

	settings, err := configs.EnsureSettings()
	if err != nil {
		return nil, fmt.Errorf("ensuring store settings: %w", err)
	}

	return &InitResult{
		StorePath: dir,
		StoreUUID: settings.Store.UUID,
		Created:   created,
	}, nil
}
