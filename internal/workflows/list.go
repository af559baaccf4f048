package workflows

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/quietfox/keyfold/internal/configs"
	"github.com/quietfox/keyfold/internal/store"
)

// Listing kinds accepted by ListOptions.Kind.
const (
	KindAccounts = "accounts"
	KindClients  = "clients"
)

// ListOptions configures the list workflow.
type ListOptions struct {
	// Kind selects account configs (bare names) or client configs
	// (qualified paths). Default: accounts.
	Kind string

	// SortBy orders the listing: name (ascending), or modified/accessed
	// (most recent first). Empty means the configured default.
	SortBy string
}

// ListResult contains the outcome of a list operation.
type ListResult struct {
	// Names holds the listing: bare filenames for accounts, qualified
	// paths for clients.
	Names []string

	// StorePath is the store directory the listing came from.
	StorePath string

	// SortBy is the order actually applied.
	SortBy string
}

// List enumerates the configs of one kind in the store directory, sorted.
//
// Returns ErrStoreNotFound if the store has not been initialized.
func List(ctx context.Context, opts ListOptions) (*ListResult, error) {
	dir, err := store.Dir()
	if err != nil {
		return nil, err
	}

	sortBy := opts.SortBy
	if sortBy == "" {
		settings, err := configs.LoadSettings()
		if err != nil {
			return nil, fmt.Errorf("loading settings: %w", err)
		}
		sortBy = settings.SortOrder()
	}

	var names []string
	switch opts.Kind {
	case KindClients:
		names, err = store.ListClientConfigs()
	case KindAccounts, "":
		names, err = store.ListAccountConfigs()
	default:
		return nil, fmt.Errorf("unknown listing kind %q", opts.Kind)
	}
	if err != nil {
		return nil, err
	}

	sortNames(dir, names, sortBy)

	return &ListResult{Names: names, StorePath: dir, SortBy: sortBy}, nil
}

// sortNames orders a listing in place. Date orders put the most recently
// touched entry first; name order is ascending. Client listings hold
// qualified paths, so date comparisons go through the base name.
func sortNames(dir string, names []string, sortBy string) {
	switch sortBy {
	case configs.SortByModified:
		sort.SliceStable(names, func(i, j int) bool {
			return store.CompareByDateModified(dir, filepath.Base(names[i]), filepath.Base(names[j])) > 0
		})
	case configs.SortByAccessed:
		sort.SliceStable(names, func(i, j int) bool {
			return store.CompareByDateAccessed(dir, filepath.Base(names[i]), filepath.Base(names[j])) > 0
		})
	default:
		sort.SliceStable(names, func(i, j int) bool {
			return store.CompareByName(names[i], names[j]) < 0
		})
	}
}
