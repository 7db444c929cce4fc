package config

import "time"

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

	// Files lists the config files that were read, in load order.
	Files []string
}

// Default values.
const (
	DefaultSeedFile            = "todo-seed.json"
	DefaultIDScheme            = "sequence"
	DefaultLogDir              = "~/.todolist"
	DefaultLogFile             = "todolist.log"
	DefaultServeAddr           = "127.0.0.1:8080"
	DefaultFetchTimeoutSeconds = 10
)

// Config holds the full configuration for todolist.
type Config struct {
	// Seed data source. SeedURL takes precedence over SeedFile when set.
	SeedFile   string `toml:"seed_file"`
	SeedURL    string `toml:"seed_url"`
	SchemaFile string `toml:"schema_file"`

	// FetchTimeoutSeconds bounds the initial seed fetch; 0 disables the limit.
	FetchTimeoutSeconds int `toml:"fetch_timeout_seconds"`

	// IDScheme selects how new item ids are assigned (sequence, uuid, length).
	IDScheme string `toml:"id_scheme"`

	// HookCommand is run as "<hook> delete <id>" after an item is deleted.
	HookCommand string `toml:"hook_command"`

	// Seed service stub
	ServeAddr string `toml:"serve_addr"`

	// Logging configuration
	LogDir        string `toml:"log_dir"`
	LogFile       string `toml:"log_file"`
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
	LogCaller     bool   `toml:"log_caller"`

	// Project root (computed)
	ProjectRoot string `toml:"-"`
}

// FetchTimeout returns the seed fetch timeout as a duration.
func (c *Config) FetchTimeout() time.Duration {
	if c.FetchTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.FetchTimeoutSeconds) * time.Second
}

// configFields returns the list of configurable field names for source tracking.
func configFields() []string {
	return []string{
		"seed_file",
		"seed_url",
		"schema_file",
		"fetch_timeout_seconds",
		"id_scheme",
		"hook_command",
		"serve_addr",
		"log_dir",
		"log_file",
		"log_level",
		"log_format",
		"log_timestamps",
		"log_caller",
	}
}

var validIDSchemes = map[string]bool{
	"sequence": true,
	"uuid":     true,
	"length":   true,
}
