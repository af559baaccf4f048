package workflows

import (
	"context"
	"fmt"

	kerrors "github.com/quietfox/keyfold/internal/errors"
	"github.com/quietfox/keyfold/internal/store"
)

// LoadOptions configures the load (decrypt) workflow.
type LoadOptions struct {
	// Name is a config filename inside the store. Takes precedence over
	// Path when both are set.
	Name string

	// Path addresses an arbitrary encrypted file outside the store.
	Path string

	// Password, when set, is used instead of prompting. Wrong-password
	// outcomes are then surfaced instead of retried.
	Password []byte

	// PasswordCommand overrides the configured external password command.
	PasswordCommand string
}

// LoadResult contains the outcome of a load operation.
type LoadResult struct {
	// Plaintext is the decrypted configuration content.
	Plaintext []byte

	// Target is the name or path that was decrypted.
	Target string
}

// Load reads and decrypts one configuration file.
//
// With an interactive password source, a wrong password re-prompts until the
// user succeeds or cancels. Returns ErrFileNotFound before any prompt when
// the target does not exist, ErrWrongPassword for non-interactive sources,
// and ErrPromptCancelled when the user aborts.
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	if opts.Name == "" && opts.Path == "" {
		return nil, fmt.Errorf("%w: name or path", kerrors.ErrMissingArgument)
	}

	command, err := passwordCommand(opts.PasswordCommand)
	if err != nil {
		return nil, err
	}
	src := store.PasswordSource{Password: opts.Password, Command: command}

	if opts.Name != "" {
		plaintext, err := store.DecryptStoreFile(opts.Name, src)
		if err != nil {
			return nil, err
		}
		return &LoadResult{Plaintext: plaintext, Target: opts.Name}, nil
	}

	plaintext, err := store.DecryptFile(opts.Path, src)
	if err != nil {
		return nil, err
	}
	return &LoadResult{Plaintext: plaintext, Target: opts.Path}, nil
}
