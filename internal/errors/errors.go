// Package errors provides centralized error handling for xapian.
//
// This package defines sentinel errors used for programmatic error categorization
// throughout the application. All error types can be checked using errors.Is().
//
// IMPORTANT: This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package errors

import "errors"

// Sentinel errors for error categorization.
// These allow callers to check error types with errors.Is().
// All errors use lowercase descriptions per Go conventions.
var (
	// ErrDatabaseLocked indicates that another process already holds the
	// write lock on the database.
	ErrDatabaseLocked = errors.New("database already locked")

	// ErrLockUnsupported indicates that the platform or filesystem cannot
	// provide advisory locking (for example an NFS mount without lockd, or
	// an exhausted kernel lock table).
	ErrLockUnsupported = errors.New("file locking unsupported")

	// ErrLockFailed indicates that the write lock could not be acquired for
	// a reason other than contention or missing locking support.
	ErrLockFailed = errors.New("could not acquire database lock")

	// ErrDatabaseClosed indicates an operation on a database that has
	// already been closed.
	ErrDatabaseClosed = errors.New("database already closed")

	// ErrDatabaseNotFound indicates that the database directory does not
	// exist.
	ErrDatabaseNotFound = errors.New("database directory not found")

	// ErrConfigNil indicates that a nil config was passed to validation.
	ErrConfigNil = errors.New("config is nil")

	// ErrConfigInvalidLock indicates an invalid lock configuration value.
	ErrConfigInvalidLock = errors.New("invalid lock configuration")

	// ErrInvalidOutputFormat indicates an invalid output format was specified.
	ErrInvalidOutputFormat = errors.New("invalid output format")

	// ErrEmptyValue indicates that a required value was empty.
	ErrEmptyValue = errors.New("value cannot be empty")

	// ErrJSONErrorOutput is a marker indicating the error was already
	// reported as JSON on stdout; the CLI should not print it again.
	ErrJSONErrorOutput = errors.New("error already output as json")
)
