package workflows

import (
	"context"
	"fmt"

	"github.com/quietfox/keyfold/internal/configs"
	kerrors "github.com/quietfox/keyfold/internal/errors"
	"github.com/quietfox/keyfold/internal/store"
)

// SaveOptions configures the save workflow.
type SaveOptions struct {
	// Name is the config filename inside the store.
	Name string

	// Plaintext is the configuration content to protect.
	Plaintext []byte

	// Password, when set, is used instead of prompting.
	Password []byte

	// PasswordCommand overrides the configured external password command.
	PasswordCommand string

	// Force allows overwriting an existing config.
	Force bool
}

// SaveResult contains the outcome of a save operation.
type SaveResult struct {
	// Name is the config filename that was written.
	Name string

	// Path is the qualified path of the written file.
	Path string

	// Overwritten indicates an existing config was replaced.
	Overwritten bool
}

// Save encrypts a configuration under a password and writes it into the
// store.
//
// Returns ErrMissingArgument before any I/O when name or content is absent,
// ErrStoreNotFound if the store has not been initialized, ErrConfigExists
// when the name is taken and Force is unset, and ErrPromptCancelled if the
// user aborts the password prompt (in which case nothing is written).
func Save(ctx context.Context, opts SaveOptions) (*SaveResult, error) {
	if opts.Name == "" {
		return nil, fmt.Errorf("%w: name", kerrors.ErrMissingArgument)
	}
	if len(opts.Plaintext) == 0 {
		return nil, fmt.Errorf("%w: content", kerrors.ErrMissingArgument)
	}

	path, err := store.ConcatToStoreDir(opts.Name)
	if err != nil {
		return nil, err
	}

	exists := store.FileExists(path)
	if exists && !opts.Force {
		return nil, fmt.Errorf("%w: %s", kerrors.ErrConfigExists, opts.Name)
	}

	command, err := passwordCommand(opts.PasswordCommand)
	if err != nil {
		return nil, err
	}

	src := store.PasswordSource{Password: opts.Password, Command: command}
	if err := store.EncryptAndWriteStoreFile(opts.Plaintext, opts.Name, opts.Name, src); err != nil {
		return nil, err
	}

	return &SaveResult{Name: opts.Name, Path: path, Overwritten: exists}, nil
}

// passwordCommand resolves the effective external password command: an
// explicit override wins, otherwise the configured default applies.
func passwordCommand(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	settings, err := configs.LoadSettings()
	if err != nil {
		return "", fmt.Errorf("loading settings: %w", err)
	}
	return settings.Prompt.PasswordCommand, nil
}
