package config

import (
	"os"
	"path/filepath"
)

// Paths contains standard filesystem paths for scadparam.
type Paths struct {
	// ConfigFile is the path to the config file (~/.scadparam/config.yaml).
	ConfigFile string

	// HomeDir is the scadparam home directory (~/.scadparam).
	HomeDir string
}

// DefaultPaths returns the default paths for scadparam.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	home := filepath.Join(homeDir, ".scadparam")

	return &Paths{
		ConfigFile: filepath.Join(home, "config.yaml"),
		HomeDir:    home,
	}, nil
}

// GetConfigFile returns the config file path.
// If SCADPARAM_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv(EnvConfig); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.ConfigFile, nil
}

// ExpandTilde expands a leading ~ to the user's home directory.
// ~username forms and paths that cannot be expanded are returned unchanged.
func ExpandTilde(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	if len(path) == 1 {
		return homeDir
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	return path
}

// ConfigFileExists checks if the config file exists.
func ConfigFileExists(path string) (bool, error) {
	_, err := os.Stat(ExpandTilde(path))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
