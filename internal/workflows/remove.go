package workflows

import (
	"context"
	"fmt"

	kerrors "github.com/quietfox/keyfold/internal/errors"
	"github.com/quietfox/keyfold/internal/store"
)

// RemoveOptions configures the remove workflow.
type RemoveOptions struct {
	// Name is the config filename inside the store.
	Name string
}

// RemoveResult contains the outcome of a remove operation.
type RemoveResult struct {
	// Name is the config filename that was removed.
	Name string

	// Path is the qualified path that was removed.
	Path string
}

// Remove deletes one config file from the store.
//
// Returns ErrStoreNotFound if the store has not been initialized and
// ErrFileNotFound if no config with that name exists.
func Remove(ctx context.Context, opts RemoveOptions) (*RemoveResult, error) {
	if opts.Name == "" {
		return nil, fmt.Errorf("%w: name", kerrors.ErrMissingArgument)
	}

	path, err := store.ConcatToStoreDir(opts.Name)
	if err != nil {
		return nil, err
	}
	if err := store.RemoveFile(path); err != nil {
		return nil, err
	}

	return &RemoveResult{Name: opts.Name, Path: path}, nil
}
