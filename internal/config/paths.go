package config

import (
	"os"
	"path/filepath"

	"github.com/harsh9t/xapian/internal/constants"
	"github.com/harsh9t/xapian/internal/errors"
)

// GlobalConfigDir returns the path to the global configuration directory.
// This is typically ~/.xapian on Unix systems. The XAPIAN_HOME environment
// variable overrides the default location.
//
// Returns an error if the home directory cannot be determined.
func GlobalConfigDir() (string, error) {
	if home := os.Getenv("XAPIAN_HOME"); home != "" {
		return home, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get home directory")
	}
	return filepath.Join(home, constants.XapianHome), nil
}

// GlobalConfigPath returns the full path to the global configuration file.
// This is typically ~/.xapian/config.yaml on Unix systems.
//
// Returns an error if the home directory cannot be determined.
func GlobalConfigPath() (string, error) {
	dir, err := GlobalConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, constants.GlobalConfigName), nil
}
