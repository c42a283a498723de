// Package configs manages Sealbox user settings.
//
// Settings live in the platform config directory (os.UserConfigDir) as
// config.toml, and keys default to the XDG data directory. The config
// file is optional: a missing file behaves like an empty one, and
// EnsureUserConfig lazily creates it with a fresh user UUID the first
// time an operation needs to be attributed to a user (audit entries).
//
// The [keys] table lets a user relocate key storage and pick the key
// name commands default to:
//
//	[keys]
//	directory = "/mnt/secure/keys"
//	default_key = "work"
package configs
