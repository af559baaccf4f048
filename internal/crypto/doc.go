// Package crypto implements the symmetric encryption primitive protecting
// stored configuration files.
//
// # Scheme
//
// Files are sealed with NaCl secretbox under a key derived from the user's
// password with argon2id. The wire format is:
//
//	salt (16 bytes) || nonce (24 bytes) || secretbox(plaintext)
//
// Salt and nonce are random per encryption, so re-encrypting the same
// plaintext with the same password produces different output.
//
// # Outcomes
//
// Decrypt distinguishes three outcomes, which callers depend on:
//
//   - success: the plaintext
//   - errors.ErrWrongPassword: secretbox authentication failed
//   - errors.ErrMalformedCiphertext: input shorter than salt+nonce+tag
//
// A secretbox authentication failure cannot tell a bad password apart from a
// corrupted file; it is reported as a wrong password because that is the
// overwhelmingly common cause and the only recoverable one.
//
// # Secret Hygiene
//
// Derived keys are wiped before returning. Password buffers are owned by the
// caller; use Wipe on them when done.
package crypto
