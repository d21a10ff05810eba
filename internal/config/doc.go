// Package config handles configuration loading and defaults.
//
// Configuration is loaded from multiple sources in priority order:
// 1. Built-in defaults
// 2. User config file (~/.trophies/trophies.toml or OS-specific config directory)
// 3. Project config file (trophies.toml or .trophies.toml in the working directory)
// 4. Environment variables (TROPHIES_*)
// 5. CLI flags
//
// Each level overrides the previous one, so CLI flags take precedence.
//
// User-level config locations:
// - ~/.trophies/trophies.toml (preferred)
// - Windows: %APPDATA%\trophies\trophies.toml
// - macOS: ~/Library/Application Support/trophies/trophies.toml
// - Linux/BSD: $XDG_CONFIG_HOME/trophies/trophies.toml or ~/.config/trophies/trophies.toml
package config
