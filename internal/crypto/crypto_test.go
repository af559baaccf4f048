package crypto

import (
	"bytes"
	"errors"
	"testing"

	kerrors "github.com/quietfox/keyfold/internal/errors"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	plaintext := []byte("{\"issuer\":\"https://example.com\",\"refresh_token\":\"abc\"}")
	password := []byte("correct horse battery staple")

	ciphertext, err := Encrypt(plaintext, password)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	if bytes.Contains(ciphertext, plaintext) {
		t.Error("ciphertext contains plaintext")
	}

	got, err := Decrypt(ciphertext, password)
	if err != nil {
		t.Fatalf("Decrypt failed: %v", err)
	}
	if !bytes.Equal(got, plaintext) {
		t.Errorf("round trip mismatch: got %q, want %q", got, plaintext)
	}
}

func TestEncryptNonDeterministic(t *testing.T) {
	plaintext := []byte("same input")
	password := []byte("pw")

	first, err := Encrypt(plaintext, password)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	second, err := Encrypt(plaintext, password)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	if bytes.Equal(first, second) {
		t.Error("two encryptions of the same input produced identical ciphertext")
	}
}

func TestDecryptWrongPassword(t *testing.T) {
	ciphertext, err := Encrypt([]byte("secret"), []byte("right"))
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	_, err = Decrypt(ciphertext, []byte("wrong"))
	if !errors.Is(err, kerrors.ErrWrongPassword) {
		t.Errorf("expected ErrWrongPassword, got: %v", err)
	}
}

func TestDecryptTooShort(t *testing.T) {
	_, err := Decrypt([]byte("way too short"), []byte("pw"))
	if !errors.Is(err, kerrors.ErrMalformedCiphertext) {
		t.Errorf("expected ErrMalformedCiphertext, got: %v", err)
	}
	if errors.Is(err, kerrors.ErrWrongPassword) {
		t.Error("truncated input must not be reported as a wrong password")
	}
}

func TestDecryptCorruptedCiphertext(t *testing.T) {
	ciphertext, err := Encrypt([]byte("secret"), []byte("pw"))
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	// Flip a bit in the sealed portion.
	ciphertext[len(ciphertext)-1] ^= 0x01

	if _, err := Decrypt(ciphertext, []byte("pw")); !errors.Is(err, kerrors.ErrWrongPassword) {
		t.Errorf("expected ErrWrongPassword for corrupted box, got: %v", err)
	}
}

func TestWipe(t *testing.T) {
	b := []byte("sensitive")
	Wipe(b)
	for i, c := range b {
		if c != 0 {
			t.Fatalf("byte %d not zeroed: %q", i, b)
		}
	}
}
