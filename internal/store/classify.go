package store

import "strings"

const clientConfigSuffix = ".clientconfig"

// IsClientConfig reports whether name is a client config filename: it either
// ends in ".clientconfig", or contains ".clientconfig" followed only by
// decimal digits until the end of the string. The digit suffix lets several
// client configs share a base name (gitlab.clientconfig, gitlab.clientconfig2).
func IsClientConfig(name string) bool {
	if strings.HasSuffix(name, clientConfigSuffix) {
		return true
	}
	idx := strings.Index(name, clientConfigSuffix)
	if idx < 0 {
		return false
	}
	rest := name[idx+len(clientConfigSuffix):]
	for _, c := range rest {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// IsAccountConfig reports whether name is an account config filename: any
// name that is not a client config and does not end in ".config". The
// ".config" suffix is reserved for the issuer config marker and the agent
// settings file, which must never be listed as account profiles.
func IsAccountConfig(name string) bool {
	if IsClientConfig(name) {
		return false
	}
	return !strings.HasSuffix(name, ".config")
}
