package config

import (
	"os"
	"path/filepath"
)

const (
	configDirName  = ".todolist"
	configFileName = "todolist.toml"
)

// findProjectConfigFile returns todolist.toml or .todolist.toml from the
// working directory, whichever exists first.
func findProjectConfigFile() string {
	return firstExisting(configFileName, "."+configFileName)
}

// findUserConfigFile returns ~/.todolist/todolist.toml, or todolist/todolist.toml
// under the OS config directory (XDG_CONFIG_HOME, APPDATA, or
// ~/Library/Application Support).
func findUserConfigFile() string {
	var candidates []string
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, configDirName, configFileName))
	}
	if dir, err := os.UserConfigDir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, "todolist", configFileName))
	}
	return firstExisting(candidates...)
}

func firstExisting(paths ...string) string {
	for _, p := range paths {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

func setDefaults(cfg *Config) {
	*cfg = Config{
		SeedFile:            DefaultSeedFile,
		FetchTimeoutSeconds: DefaultFetchTimeoutSeconds,
		IDScheme:            DefaultIDScheme,
		ServeAddr:           DefaultServeAddr,
		LogDir:              DefaultLogDir,
		LogFile:             DefaultLogFile,
		LogLevel:            "info",
		LogFormat:           "text",
	}
}
