package errors

import "errors"

// Store errors indicate issues locating or establishing the store directory.
var (
	// ErrStoreNotFound indicates no candidate store directory exists yet.
	ErrStoreNotFound = errors.New("credential store directory not found")

	// ErrStoreNotADirectory indicates a candidate location exists but is not a directory.
	ErrStoreNotADirectory = errors.New("store location exists but is not a directory")
)

// Crypto errors indicate failures during encryption or decryption operations.
var (
	// ErrWrongPassword indicates decryption rejected the supplied password.
	// It is distinct from I/O and format failures so callers can re-prompt.
	ErrWrongPassword = errors.New("wrong password")

	// ErrMalformedCiphertext indicates the encrypted file is too short or
	// structurally invalid and cannot be attributed to a bad password.
	ErrMalformedCiphertext = errors.New("malformed encrypted file")
)

// Prompt errors indicate issues obtaining a password from the user.
var (
	// ErrPromptCancelled indicates the user aborted the password prompt.
	ErrPromptCancelled = errors.New("password prompt cancelled")

	// ErrNoTerminal indicates no terminal is available for interactive input.
	ErrNoTerminal = errors.New("no terminal available for password input")
)

// File errors indicate issues with file discovery or access.
var (
	// ErrFileNotFound indicates a specific file could not be located.
	ErrFileNotFound = errors.New("file not found")

	// ErrConfigExists indicates a config file with the requested name is
	// already present in the store.
	ErrConfigExists = errors.New("config file already exists")

	// ErrMissingArgument indicates a required input was absent. It is always
	// returned before any I/O is attempted.
	ErrMissingArgument = errors.New("required argument missing")
)
