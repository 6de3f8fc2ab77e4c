package xdgpath

import (
	"fmt"
	"os"
	"path/filepath"
)

const appDir = "trans-selection"

func getConfigHome() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return configHome, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not get user home directory: %w", err)
	}
	return filepath.Join(home, ".config"), nil
}

// ConfigPath returns the path for a config file. The directory is not created.
func ConfigPath(elem ...string) (string, error) {
	base, err := getConfigHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(append([]string{base, appDir}, elem...)...), nil
}
