package config

import (
	"flag"
)

// flagFields maps flag names to config field names.
var flagFields = map[string]string{
	"file":           "catalog_file",
	"log-dir":        "log_dir",
	"journal":        "journal",
	"log-level":      "log_level",
	"log-format":     "log_format",
	"log-timestamps": "log_timestamps",
	"log-caller":     "log_caller",
	"tui-refresh":    "tui_refresh_seconds",
}

// parseFlags defines the global flags on fs, parses args, and marks
// explicitly set flags in sources.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string, sources map[string]ConfigSource) error {
	if fs == nil {
		fs = flag.NewFlagSet("trophies", flag.ContinueOnError)
	}

	fs.StringVar(&cfg.CatalogFile, "file", cfg.CatalogFile, "Path to the catalog file")
	fs.StringVar(&cfg.LogDir, "log-dir", cfg.LogDir, "Session journal directory")
	fs.BoolVar(&cfg.Journal, "journal", cfg.Journal, "Write a session journal")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Console log level (debug|info|warn|error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Console log format (text|json|logfmt)")
	fs.BoolVar(&cfg.LogTimestamps, "log-timestamps", cfg.LogTimestamps, "Include timestamps in console logs")
	fs.BoolVar(&cfg.LogCaller, "log-caller", cfg.LogCaller, "Include caller in console logs")
	fs.IntVar(&cfg.TUIRefreshSeconds, "tui-refresh", cfg.TUIRefreshSeconds, "Terminal viewer refresh interval (seconds)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		if field, ok := flagFields[f.Name]; ok {
			sources[field] = SourceFlag
		}
	})
	return nil
}
