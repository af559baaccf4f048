// Package configs manages the keyfold agent settings.
//
// Settings are stored in TOML format in the store directory itself, in a file
// whose name ends in ".config" so the store's classifiers never list it as an
// account or client config.
//
// # Contents
//
// The settings file stores:
//   - Store identity (UUID, auto-generated on first save)
//   - Default listing sort order (name, modified, accessed)
//   - Optional external password command for non-interactive use
//
// Secrets never live here. Passwords and decrypted configuration content
// stay in the encrypted per-account files.
//
// # Lifecycle
//
// LoadSettings tolerates a missing store, a missing file, and an empty file,
// returning defaults in each case, so commands can consult settings before
// the store is initialized. SaveSettings requires the store directory to
// exist. The zero-length issuer config marker is untouched by this package.
package configs
