package config

import (
	"fmt"
	"os"
	"strings"
)

// loadFromEnv overrides config from environment variables. If sources is
// non-nil, it tracks the source of each value.
func loadFromEnv(cfg *Config, sources map[string]ConfigSource) {
	set := func(field string) {
		if sources != nil {
			sources[field] = SourceEnv
		}
	}

	if v := os.Getenv("TODOLIST_SEED_FILE"); v != "" {
		cfg.SeedFile = v
		set("seed_file")
	}
	if v := os.Getenv("TODOLIST_SEED_URL"); v != "" {
		cfg.SeedURL = v
		set("seed_url")
	}
	if v := os.Getenv("TODOLIST_SCHEMA"); v != "" {
		cfg.SchemaFile = v
		set("schema_file")
	}
	if v := os.Getenv("TODOLIST_FETCH_TIMEOUT"); v != "" {
		var i int
		if _, err := fmt.Sscanf(v, "%d", &i); err == nil {
			cfg.FetchTimeoutSeconds = i
			set("fetch_timeout_seconds")
		}
	}
	if v := os.Getenv("TODOLIST_ID_SCHEME"); v != "" {
		cfg.IDScheme = v
		set("id_scheme")
	}
	if v := os.Getenv("TODOLIST_HOOK"); v != "" {
		cfg.HookCommand = v
		set("hook_command")
	}
	if v := os.Getenv("TODOLIST_SERVE_ADDR"); v != "" {
		cfg.ServeAddr = v
		set("serve_addr")
	}

	// Logging configuration
	if v := os.Getenv("TODOLIST_LOG_DIR"); v != "" {
		cfg.LogDir = v
		set("log_dir")
	}
	if v := os.Getenv("TODOLIST_LOG_FILE"); v != "" {
		cfg.LogFile = v
		set("log_file")
	}
	if v := os.Getenv("TODOLIST_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
		set("log_level")
	}
	if v := os.Getenv("TODOLIST_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
		set("log_format")
	}
	if v := os.Getenv("TODOLIST_LOG_TIMESTAMPS"); v != "" {
		cfg.LogTimestamps = boolFromString(v)
		set("log_timestamps")
	}
	if v := os.Getenv("TODOLIST_LOG_CALLER"); v != "" {
		cfg.LogCaller = boolFromString(v)
		set("log_caller")
	}
}

func boolFromString(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
