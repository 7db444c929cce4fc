package config

import "flag"

// flagToSource maps flag names to config field names.
var flagToSource = map[string]string{
	"seed":           "seed_file",
	"seed-url":       "seed_url",
	"schema":         "schema_file",
	"fetch-timeout":  "fetch_timeout_seconds",
	"id-scheme":      "id_scheme",
	"hook":           "hook_command",
	"serve-addr":     "serve_addr",
	"log-dir":        "log_dir",
	"log-file":       "log_file",
	"log-level":      "log_level",
	"log-format":     "log_format",
	"log-timestamps": "log_timestamps",
	"log-caller":     "log_caller",
}

// parseFlags defines and parses CLI flags on fs. Flags default to the values
// already in cfg, so unset flags leave earlier layers untouched. If sources
// is non-nil, explicitly set flags are recorded there.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string, sources map[string]ConfigSource) error {
	if fs == nil {
		fs = flag.NewFlagSet("todolist", flag.ContinueOnError)
	}

	// Seed data
	fs.StringVar(&cfg.SeedFile, "seed", cfg.SeedFile, "Path to seed data file")
	fs.StringVar(&cfg.SeedURL, "seed-url", cfg.SeedURL, "URL returning seed data (overrides -seed)")
	fs.StringVar(&cfg.SchemaFile, "schema", cfg.SchemaFile, "Path to seed schema file (default: built-in schema)")
	fs.IntVar(&cfg.FetchTimeoutSeconds, "fetch-timeout", cfg.FetchTimeoutSeconds, "Seed fetch timeout in seconds (0 = none)")

	// List behavior
	fs.StringVar(&cfg.IDScheme, "id-scheme", cfg.IDScheme, "Item id scheme (sequence|uuid|length)")
	fs.StringVar(&cfg.HookCommand, "hook", cfg.HookCommand, "Command to run after an item is deleted")

	// Seed service stub
	fs.StringVar(&cfg.ServeAddr, "serve-addr", cfg.ServeAddr, "Listen address for the serve command")

	// Logging
	fs.StringVar(&cfg.LogDir, "log-dir", cfg.LogDir, "Log directory")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Log file used while the TUI is running")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text, json, logfmt)")
	fs.BoolVar(&cfg.LogTimestamps, "log-timestamps", cfg.LogTimestamps, "Show timestamps in logs")
	fs.BoolVar(&cfg.LogCaller, "log-caller", cfg.LogCaller, "Show caller location in logs")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if sources != nil {
		fs.Visit(func(f *flag.Flag) {
			if field, ok := flagToSource[f.Name]; ok {
				sources[field] = SourceFlag
			}
		})
	}
	return nil
}
