package config

// ConfigSource represents where a configuration value came from.
type ConfigSource string

const (
	SourceDefault  ConfigSource = "default"
	SourceUserFile ConfigSource = "user file"
	SourceProjFile ConfigSource = "project file"
	SourceEnv      ConfigSource = "environment"
	SourceFlag     ConfigSource = "flag"
)

// ConfigWithSources holds configuration along with source information for each field.
type ConfigWithSources struct {
	Config  *Config
	Sources map[string]ConfigSource
	Files   []string // config files that were read, in load order
}

// Default values.
const (
	DefaultCatalogFile       = "NoPlatinum.txt"
	DefaultLogDir            = "~/.trophies/logs"
	DefaultJournal           = true
	DefaultLogLevel          = "warn"
	DefaultLogFormat         = "text"
	DefaultTUIRefreshSeconds = 2
)

// Config holds the full configuration for trophies.
type Config struct {
	// Catalog file, relative to the working directory unless absolute.
	CatalogFile string `toml:"catalog_file"`

	// Session journal
	LogDir  string `toml:"log_dir"`
	Journal bool   `toml:"journal"`

	// Console logging
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
	LogCaller     bool   `toml:"log_caller"`

	// Terminal viewer
	TUIRefreshSeconds int `toml:"tui_refresh_seconds"`

	// Working directory (computed)
	WorkDir string `toml:"-"`
}

// configFields returns the configurable field names for source tracking.
func configFields() []string {
	return []string{
		"catalog_file",
		"log_dir",
		"journal",
		"log_level",
		"log_format",
		"log_timestamps",
		"log_caller",
		"tui_refresh_seconds",
	}
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	cfg.CatalogFile = DefaultCatalogFile
	cfg.LogDir = DefaultLogDir
	cfg.Journal = DefaultJournal
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
	cfg.TUIRefreshSeconds = DefaultTUIRefreshSeconds
}
