package config

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# trophies configuration file
# Values can be overridden by TROPHIES_* environment variables or CLI flags

# Catalog file (relative to the working directory)
catalog_file = "NoPlatinum.txt"

# Session journal directory (supports ~ expansion and %VAR% on Windows)
log_dir = "~/.trophies/logs"

# Write a JSONL journal for each interactive session
journal = true

# Console logging: debug, info, warn, error
log_level = "warn"

# Console log format: text, json, logfmt
log_format = "text"
log_timestamps = false
log_caller = false

# Terminal viewer refresh interval (seconds)
tui_refresh_seconds = 2
`
}
