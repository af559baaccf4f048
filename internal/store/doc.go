// Package store implements the encrypted configuration file store of the
// keyfold agent.
//
// # Layout
//
// All configuration lives in a single store directory, resolved among two
// legacy layout conventions in priority order:
//
//	~/.config/keyfold/
//	~/.keyfold/
//
// Whichever already exists wins, so existing installs keep working; a fresh
// install nests under ~/.config when that directory exists. The directory
// contains account configs (one per identity/provider profile), client
// configs (<base>.clientconfig with an optional numeric suffix), and the
// reserved issuer config marker plus the agent settings file, both ending in
// ".config" and excluded from every listing.
//
// # Classification
//
// IsClientConfig and IsAccountConfig are pure functions of the filename; the
// two categories are disjoint and together exclude only the reserved
// ".config" names.
//
// # Listing and ordering
//
// ListDirIf enumerates regular files through a predicate, in platform
// enumeration order. The comparators (CompareByName, CompareByDateModified,
// CompareByDateAccessed) give callers deterministic orderings, e.g. a
// most-recently-used account menu.
//
// # Encrypted access
//
// EncryptAndWrite* and Decrypt* wrap the crypto and prompt collaborators into
// the store's read/write protocol: arguments are validated before any I/O, a
// password is obtained (supplied, external command, or interactive prompt),
// wrong passwords re-prompt only for interactive sources, and password
// buffers are wiped on every exit path. The ...WithPassword variants transfer
// password ownership to the caller instead.
package store
