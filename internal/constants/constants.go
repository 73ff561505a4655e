// Package constants provides centralized constant values shared across the
// xapian packages. This package is the single source of truth for all shared
// constants and MUST NOT import any other internal packages.
package constants

import "time"

// File names used inside a database directory.
const (
	// LockFileName is the name of the write-lock target file inside a
	// database directory. The file's contents are never meaningful; it
	// exists only to be a lockable inode.
	LockFileName = "flintlock"
)

// Directory names and paths used for organizing data.
const (
	// XapianHome is the hidden directory name where xapian stores its
	// user-level data. This directory is created in the user's home
	// directory.
	XapianHome = ".xapian"

	// LogsDir is the directory name where log files are stored.
	LogsDir = "logs"
)

// Log file names.
const (
	// CLILogFileName is the name of the global CLI log file.
	// This file is located in ~/.xapian/logs/xapian.log
	CLILogFileName = "xapian.log"
)

// Configuration file names.
const (
	// GlobalConfigName is the name of the global configuration file.
	// This file is located in the xapian home directory.
	GlobalConfigName = "config.yaml"

	// ProjectConfigName is the name of the project-specific configuration
	// file. This file is located in the current working directory.
	ProjectConfigName = ".xapian.yaml"
)

// Lock holder process identity.
const (
	// HolderEnvVar marks a process as a spawned lock holder. When set, the
	// process must run the holder protocol instead of its normal main.
	HolderEnvVar = "XAPIAN_LOCK_HOLDER"

	// HolderProcessTitle is the inert argv[0] given to the holder child so
	// that process listings make clear it performs no work of its own.
	HolderProcessTitle = "xapian-lock-holder"
)

// Lock timing defaults.
const (
	// DefaultProbeInterval is the default delay between lock attempts when
	// probing with --wait.
	DefaultProbeInterval = 1 * time.Second
)

// Log rotation settings for the CLI log file.
const (
	// LogMaxSizeMB is the maximum size in megabytes of a log file before
	// it gets rotated.
	LogMaxSizeMB = 10

	// LogMaxBackups is the maximum number of rotated log files to retain.
	LogMaxBackups = 3

	// LogMaxAgeDays is the maximum number of days to retain rotated logs.
	LogMaxAgeDays = 30

	// LogCompress controls whether rotated log files are gzip-compressed.
	LogCompress = true
)
