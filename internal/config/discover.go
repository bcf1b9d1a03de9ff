package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// ConfigDirName is the directory name for nora config.
	ConfigDirName = ".nora"
	// ConfigFileName is the config file name within the config directory.
	ConfigFileName = "config.yaml"
)

// DiscoverConfig finds the config file using walk-up discovery.
// Search order:
//  1. Walk up from cwd looking for .nora/config.yaml
//  2. Fall back to ~/.nora/config.yaml
//
// Returns the path to the config file, or empty string if not found.
func DiscoverConfig() string {
	// Start from current working directory
	cwd, err := os.Getwd()
	if err != nil {
		// Can't get cwd, try home directory fallback
		home := homeConfigPath()
		if fileExists(home) {
			return home
		}
		return ""
	}

	// Walk up looking for .nora/config.yaml
	dir := cwd
	for {
		configPath := filepath.Join(dir, ConfigDirName, ConfigFileName)
		if fileExists(configPath) {
			return configPath
		}

		// Move to parent directory
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root, stop
			break
		}
		dir = parent
	}

	// Fall back to home directory
	homePath := homeConfigPath()
	if fileExists(homePath) {
		return homePath
	}

	return ""
}

// homeConfigPath returns the path to ~/.nora/config.yaml
func homeConfigPath() string {
	return expandPath("~/" + ConfigDirName + "/" + ConfigFileName)
}

// expandPath expands a leading ~ to the user's home directory.
func expandPath(path string) string {
	if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
