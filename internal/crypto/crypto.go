package crypto

import (
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/nacl/secretbox"

	kerrors "github.com/quietfox/keyfold/internal/errors"
)

const (
	saltSize  = 16
	nonceSize = 24

	// argon2id parameters for deriving the secretbox key from a password.
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	keySize      = 32
)

// overhead is the minimum ciphertext length: salt, nonce, and the
// secretbox authentication tag for an empty message.
const overhead = saltSize + nonceSize + secretbox.Overhead

func deriveKey(password []byte, salt []byte) *[keySize]byte {
	var key [keySize]byte
	raw := argon2.IDKey(password, salt, argonTime, argonMemory, argonThreads, keySize)
	copy(key[:], raw)
	Wipe(raw)
	return &key
}

// Encrypt seals plaintext with a key derived from password. The output is
// salt || nonce || secretbox ciphertext, so every call produces different
// bytes even for identical inputs.
func Encrypt(plaintext []byte, password []byte) ([]byte, error) {
	var salt [saltSize]byte
	if _, err := io.ReadFull(rand.Reader, salt[:]); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	key := deriveKey(password, salt[:])
	defer Wipe(key[:])

	out := make([]byte, 0, overhead+len(plaintext))
	out = append(out, salt[:]...)
	out = append(out, nonce[:]...)
	return secretbox.Seal(out, plaintext, &nonce, key), nil
}

// Decrypt opens ciphertext produced by Encrypt.
//
// Returns ErrMalformedCiphertext if the input is too short to carry the salt
// and nonce, and ErrWrongPassword if secretbox authentication fails. The two
// must stay distinct: only the latter can be fixed by re-prompting the user.
func Decrypt(ciphertext []byte, password []byte) ([]byte, error) {
	if len(ciphertext) < overhead {
		return nil, kerrors.ErrMalformedCiphertext
	}

	salt := ciphertext[:saltSize]

	var nonce [nonceSize]byte
	copy(nonce[:], ciphertext[saltSize:saltSize+nonceSize])

	key := deriveKey(password, salt)
	defer Wipe(key[:])

	plaintext, ok := secretbox.Open(nil, ciphertext[saltSize+nonceSize:], &nonce, key)
	if !ok {
		return nil, kerrors.ErrWrongPassword
	}
	return plaintext, nil
}

// Wipe overwrites b with zeros. Call it on password and key buffers as soon
// as they are no longer needed.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
