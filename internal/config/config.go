// Package config provides configuration management for xapian with layered
// precedence.
//
// Configuration sources are loaded in the following order (highest precedence
// first):
//  1. Environment variables (XAPIAN_* prefix)
//  2. Project config (./.xapian.yaml)
//  3. Global config (~/.xapian/config.yaml)
//  4. Built-in defaults
//
// Each higher level completely overrides the lower level for the same key.
//
// IMPORTANT: This package may import internal/constants and internal/errors,
// but MUST NOT import other internal packages.
package config

import (
	"time"

	"github.com/harsh9t/xapian/internal/constants"
)

// Config is the root configuration structure.
type Config struct {
	// Lock contains settings for the database write lock.
	Lock LockConfig `yaml:"lock" mapstructure:"lock"`
}

// LockConfig contains settings for the database write lock.
type LockConfig struct {
	// HolderPath optionally points at a standalone holder helper binary
	// (xapian-lockd). When empty, the current binary re-execs itself as the
	// holder, which is the default and requires no extra install step.
	HolderPath string `yaml:"holder_path" mapstructure:"holder_path"`

	// ProbeInterval is the delay between lock attempts when waiting for a
	// contended lock (xapian lock probe --wait).
	ProbeInterval time.Duration `yaml:"probe_interval" mapstructure:"probe_interval"`
}

// DefaultConfig returns a new Config with the built-in default values. These
// form the base layer that config files and environment variables override.
func DefaultConfig() *Config {
	return &Config{
		Lock: LockConfig{
			// HolderPath: empty means re-exec the current binary.
			HolderPath: "",

			// ProbeInterval: one second keeps waiting probes responsive
			// without hammering the lock file.
			ProbeInterval: constants.DefaultProbeInterval,
		},
	}
}
