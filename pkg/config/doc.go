// Package config handles projup settings.
//
// Settings are layered with koanf: embedded defaults, then the user's
// config.toml, then PROJUP_* environment variables. Locations left empty
// fall back to directories under the XDG data directory.
package config
