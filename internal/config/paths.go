package config

import (
	"os"
	"path/filepath"
)

// Paths contains standard filesystem paths for modlist.
type Paths struct {
	// ConfigFile is the path to the config file (~/.modlist/config.yaml).
	ConfigFile string

	// HomeDir is the modlist home directory (~/.modlist).
	HomeDir string
}

// DefaultPaths returns the default paths for modlist.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	modlistHome := filepath.Join(homeDir, ".modlist")

	return &Paths{
		ConfigFile: filepath.Join(modlistHome, "config.yaml"),
		HomeDir:    modlistHome,
	}, nil
}

// GetConfigFile returns the config file path.
// If MODLIST_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv("MODLIST_CONFIG"); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.ConfigFile, nil
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 {
		return path, nil
	}

	if path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	// Handle ~/path/to/something
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// ~username expansion is not supported, return as-is
	return path, nil
}
