package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// loadFromEnv overrides config from TROPHIES_* environment variables.
func loadFromEnv(cfg *Config, sources map[string]ConfigSource) error {
	set := func(field string) {
		sources[field] = SourceEnv
	}

	if v := os.Getenv("TROPHIES_FILE"); v != "" {
		cfg.CatalogFile = v
		set("catalog_file")
	}
	if v := os.Getenv("TROPHIES_LOG_DIR"); v != "" {
		cfg.LogDir = v
		set("log_dir")
	}
	if v := os.Getenv("TROPHIES_JOURNAL"); v != "" {
		cfg.Journal = boolFromString(v)
		set("journal")
	}
	if v := os.Getenv("TROPHIES_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
		set("log_level")
	}
	if v := os.Getenv("TROPHIES_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
		set("log_format")
	}
	if v := os.Getenv("TROPHIES_LOG_TIMESTAMPS"); v != "" {
		cfg.LogTimestamps = boolFromString(v)
		set("log_timestamps")
	}
	if v := os.Getenv("TROPHIES_LOG_CALLER"); v != "" {
		cfg.LogCaller = boolFromString(v)
		set("log_caller")
	}
	if v := os.Getenv("TROPHIES_TUI_REFRESH"); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("TROPHIES_TUI_REFRESH: %w", err)
		}
		cfg.TUIRefreshSeconds = n
		set("tui_refresh_seconds")
	}
	return nil
}

func boolFromString(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
