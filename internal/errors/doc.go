// Package errors provides typed error values for the keyfold application.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching. This makes
// error handling more robust and refactoring-safe.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Store errors: Store directory state (ErrStoreNotFound)
//   - Crypto errors: Decryption outcomes (ErrWrongPassword, ErrMalformedCiphertext)
//   - Prompt errors: Interactive input (ErrPromptCancelled, ErrNoTerminal)
//   - File errors: File system issues (ErrFileNotFound, ErrMissingArgument)
//
// # Usage
//
// Return errors from internal packages:
//
//	if dir == "" {
//	    return nil, errors.ErrStoreNotFound
//	}
//
// Handle errors in the CLI layer:
//
//	result, err := workflows.Load(opts)
//	if errors.Is(err, kerrors.ErrWrongPassword) {
//	    // Show user-friendly message
//	}
//
// ErrWrongPassword carries a hard requirement: it must never be conflated
// with I/O failures, because callers use it to decide whether re-prompting
// the user can possibly help.
package errors
