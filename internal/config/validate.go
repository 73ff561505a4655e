package config

import (
	"path/filepath"
	"time"

	"github.com/harsh9t/xapian/internal/errors"
)

// Validation bounds for the probe interval. The lower bound keeps waiting
// probes from spinning on the lock file; the upper bound catches config
// typos like "10h" that would look like a hang.
const (
	minProbeInterval = 10 * time.Millisecond
	maxProbeInterval = 10 * time.Minute
)

// Validate checks the configuration for invalid or inconsistent values.
// It returns an error describing the first validation failure found.
//
// Validation rules:
//   - lock probe interval must be within [10ms, 10m]
//   - lock holder path, when set, must be absolute
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.ErrConfigNil
	}
	return validateLockConfig(&cfg.Lock)
}

// validateLockConfig checks lock-specific configuration values.
func validateLockConfig(cfg *LockConfig) error {
	if cfg.ProbeInterval < minProbeInterval || cfg.ProbeInterval > maxProbeInterval {
		return errors.Wrapf(errors.ErrConfigInvalidLock,
			"probe_interval %s must be between %s and %s",
			cfg.ProbeInterval, minProbeInterval, maxProbeInterval)
	}
	if cfg.HolderPath != "" && !filepath.IsAbs(cfg.HolderPath) {
		return errors.Wrapf(errors.ErrConfigInvalidLock,
			"holder_path %q must be an absolute path", cfg.HolderPath)
	}
	return nil
}
