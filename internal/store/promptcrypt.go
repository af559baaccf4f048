package store

import (
	"errors"
	"fmt"
	"os"

	"github.com/quietfox/keyfold/internal/crypto"
	kerrors "github.com/quietfox/keyfold/internal/errors"
	"github.com/quietfox/keyfold/internal/prompt"
)

// promptPassword is the interactive prompt collaborator. Tests replace it to
// drive the retry loop without a terminal.
var promptPassword = prompt.Password

// PasswordSource describes where the encryption password for one operation
// comes from. The zero value means: ask the user on the terminal.
type PasswordSource struct {
	// Password is a caller-supplied password. When set, no prompt runs and
	// wrong-password outcomes are never retried.
	Password []byte

	// Suggested prefills the interactive prompt: an empty answer accepts it.
	Suggested []byte

	// Command is an external password command. When set, the password is the
	// command's output and wrong-password outcomes are never retried.
	Command string
}

// interactive reports whether a wrong password can be fixed by asking again.
func (s PasswordSource) interactive() bool {
	return s.Password == nil && prompt.Interactive(s.Command)
}

// obtain returns a password buffer owned by the caller, who must wipe it.
// Caller-supplied passwords are copied so the original stays untouched.
func (s PasswordSource) obtain(hint string) ([]byte, error) {
	if s.Password != nil {
		out := make([]byte, len(s.Password))
		copy(out, s.Password)
		return out, nil
	}
	return promptPassword(hint, s.Suggested, s.Command)
}

// EncryptAndWriteFile encrypts text under a password from src and writes the
// ciphertext to an arbitrary filesystem path. Nothing is written if the
// password cannot be obtained (in particular on ErrPromptCancelled).
func EncryptAndWriteFile(text []byte, path, hint string, src PasswordSource) error {
	if path == "" {
		return fmt.Errorf("%w: path", kerrors.ErrMissingArgument)
	}
	return encryptAndWriteAny(text, path, "", hint, src)
}

// EncryptAndWriteStoreFile is EncryptAndWriteFile for a file addressed by its
// bare name inside the store directory.
func EncryptAndWriteStoreFile(text []byte, filename, hint string, src PasswordSource) error {
	if filename == "" {
		return fmt.Errorf("%w: filename", kerrors.ErrMissingArgument)
	}
	return encryptAndWriteAny(text, "", filename, hint, src)
}

// encryptAndWriteAny validates arguments, obtains a password, encrypts, and
// writes. When both a path and a store filename are given, the store filename
// wins. The password is wiped on every exit path.
func encryptAndWriteAny(text []byte, path, filename, hint string, src PasswordSource) error {
	if len(text) == 0 {
		return fmt.Errorf("%w: text", kerrors.ErrMissingArgument)
	}
	if hint == "" {
		return fmt.Errorf("%w: hint", kerrors.ErrMissingArgument)
	}
	if path == "" && filename == "" {
		return fmt.Errorf("%w: path or filename", kerrors.ErrMissingArgument)
	}

	target := path
	if filename != "" {
		var err error
		target, err = ConcatToStoreDir(filename)
		if err != nil {
			return err
		}
	}

	password, err := src.obtain(hint)
	if err != nil {
		return err
	}
	defer crypto.Wipe(password)

	ciphertext, err := crypto.Encrypt(text, password)
	if err != nil {
		return fmt.Errorf("failed to encrypt %s: %w", hint, err)
	}

	return WriteFile(target, ciphertext)
}

// DecryptResult pairs decrypted plaintext with the password that produced it,
// for callers that need the password afterward (e.g. to encrypt a related
// file without prompting twice). Ownership of Password transfers to the
// caller, who must wipe it.
type DecryptResult struct {
	Plaintext []byte
	Password  []byte
}

// DecryptFileWithPassword reads and decrypts the file at path, returning the
// plaintext together with the password used.
//
// Read failures surface before any password is requested. With an interactive
// source, a wrong password re-prompts until the user succeeds or cancels;
// with a supplied password or an external command, ErrWrongPassword is
// returned to the caller on the first failure.
func DecryptFileWithPassword(path string, src PasswordSource) (*DecryptResult, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: path", kerrors.ErrMissingArgument)
	}
	return decryptAny(path, path, src)
}

// DecryptStoreFileWithPassword is DecryptFileWithPassword for a file
// addressed by its bare name inside the store directory.
func DecryptStoreFileWithPassword(filename string, src PasswordSource) (*DecryptResult, error) {
	if filename == "" {
		return nil, fmt.Errorf("%w: filename", kerrors.ErrMissingArgument)
	}
	path, err := ConcatToStoreDir(filename)
	if err != nil {
		return nil, err
	}
	return decryptAny(path, filename, src)
}

// DecryptFile reads and decrypts the file at path. The password is wiped
// internally before returning.
func DecryptFile(path string, src PasswordSource) ([]byte, error) {
	res, err := DecryptFileWithPassword(path, src)
	if err != nil {
		return nil, err
	}
	crypto.Wipe(res.Password)
	return res.Plaintext, nil
}

// DecryptStoreFile is DecryptFile for a file addressed by its bare name
// inside the store directory.
func DecryptStoreFile(filename string, src PasswordSource) ([]byte, error) {
	res, err := DecryptStoreFileWithPassword(filename, src)
	if err != nil {
		return nil, err
	}
	crypto.Wipe(res.Password)
	return res.Plaintext, nil
}

func decryptAny(path, hint string, src PasswordSource) (*DecryptResult, error) {
	ciphertext, err := ReadFile(path)
	if err != nil {
		return nil, err
	}

	for {
		password, err := src.obtain(hint)
		if err != nil {
			return nil, err
		}

		plaintext, err := crypto.Decrypt(ciphertext, password)
		if err == nil {
			return &DecryptResult{Plaintext: plaintext, Password: password}, nil
		}
		crypto.Wipe(password)

		if errors.Is(err, kerrors.ErrWrongPassword) && src.interactive() {
			fmt.Fprintln(os.Stderr, "Wrong password. Try again.")
			continue
		}
		return nil, err
	}
}
