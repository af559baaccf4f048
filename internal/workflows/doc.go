// Package workflows provides high-level orchestration for keyfold commands.
//
// Workflows coordinate multiple operations across packages (configs, store)
// to implement complete user-facing features. Each workflow handles a single
// command's business logic, independent of CLI concerns like flag parsing,
// spinners, and output formatting.
//
// # Design Philosophy
//
// The cmd/ package should be a thin layer that:
//   - Parses command-line flags and arguments
//   - Calls the appropriate workflow function
//   - Formats the result for display
//
// Workflows handle everything else:
//   - Loading settings
//   - Validating prerequisites
//   - Performing the core operation
//
// # Available Workflows
//
// Each command has a corresponding workflow:
//
//   - Init: Establishes the store directory, marker file, and identity
//   - List: Enumerates account or client configs, sorted
//   - Save: Encrypts and writes a config into the store
//   - Load: Reads and decrypts a config, re-prompting on wrong passwords
//   - Remove: Deletes a config from the store
//
// # Error Handling
//
// Workflows return typed errors from the internal/errors package, allowing
// the CLI layer to provide appropriate user-facing messages without string
// matching. Use errors.Is() to check for specific error conditions:
//
//	result, err := workflows.Load(ctx, opts)
//	if errors.Is(err, kerrors.ErrStoreNotFound) {
//	    // Suggest running keyfold store init
//	}
//
// # Context Usage
//
// All workflow functions accept a context.Context as their first parameter,
// matching the agent's calling convention. The store layer itself is
// synchronous blocking I/O; the only mid-operation abort is the user
// cancelling a password prompt.
package workflows
