package config

import (
	"os"
	"path/filepath"
)

// GetGlobalConfigDir returns the path to the global state directory (~/.selfdiscover).
// It's a variable to allow overriding in tests.
var GetGlobalConfigDir = func() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ConfigName), nil
}

// GetCrashLogBasePath returns the directory crash logs are written under.
// Falls back to a relative .selfdiscover when the home directory is unknown.
func GetCrashLogBasePath() string {
	dir, err := GetGlobalConfigDir()
	if err != nil {
		return ConfigName
	}
	return dir
}
