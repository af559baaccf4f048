package prompt

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"

	"golang.org/x/term"

	kerrors "github.com/quietfox/keyfold/internal/errors"
)

// Password obtains an encryption password for the file described by hint.
//
// When command is non-empty the prompt is non-interactive: the command is run
// through the shell and its stdout, with a single trailing newline stripped,
// becomes the password. Otherwise the user is asked on the controlling
// terminal with input echo disabled. An empty interactive answer falls back
// to suggested when one is provided.
//
// Returns ErrPromptCancelled if the user aborts the prompt (EOF), and
// ErrNoTerminal if interactive input is needed but no terminal is available.
// The returned buffer is owned by the caller, who must wipe it after use.
func Password(hint string, suggested []byte, command string) ([]byte, error) {
	if command != "" {
		return fromCommand(command)
	}
	return fromTerminal(hint, suggested)
}

// Interactive reports whether the given command argument would make Password
// prompt on the terminal. Wrong-password retries only make sense when it does.
func Interactive(command string) bool {
	return command == ""
}

func fromCommand(command string) ([]byte, error) {
	// #nosec G204 -- the password command is explicit user configuration.
	out, err := exec.Command("sh", "-c", command).Output()
	if err != nil {
		return nil, fmt.Errorf("password command failed: %w", err)
	}
	out = bytes.TrimSuffix(out, []byte("\n"))
	if len(out) == 0 {
		return nil, fmt.Errorf("password command produced no output")
	}
	return out, nil
}

func fromTerminal(hint string, suggested []byte) ([]byte, error) {
	ttyPath := "/dev/tty"
	if runtime.GOOS == "windows" {
		ttyPath = "CON"
	}

	tty, err := os.Open(ttyPath)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot open %s", kerrors.ErrNoTerminal, ttyPath)
	}
	defer tty.Close()

	fd := int(tty.Fd())
	if !term.IsTerminal(fd) {
		return nil, kerrors.ErrNoTerminal
	}

	fmt.Fprintf(os.Stderr, "Enter password for %s: ", hint)
	password, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr) // Add newline after hidden input.

	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, kerrors.ErrPromptCancelled
		}
		return nil, fmt.Errorf("failed to read password: %w", err)
	}

	if len(password) == 0 {
		if len(suggested) > 0 {
			out := make([]byte, len(suggested))
			copy(out, suggested)
			return out, nil
		}
		// Empty answer with nothing to fall back on is a cancel.
		return nil, kerrors.ErrPromptCancelled
	}

	return password, nil
}
