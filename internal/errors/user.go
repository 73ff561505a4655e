package errors

import "errors"

// ErrorInfo holds user-facing message and suggested action for an error.
type ErrorInfo struct {
	// Message is the user-friendly error description.
	Message string
	// Action is a suggested action to resolve the issue (empty if none).
	Action string
}

// errorEntry pairs a sentinel error with its user-facing info.
type errorEntry struct {
	err  error
	info ErrorInfo
}

// errorInfoEntries is the pre-built mapping of sentinel errors to their user-facing messages.
// This single source of truth ensures UserMessage and Actionable stay in sync.
// Using a slice (not a map) because errors.Is() requires proper error chain traversal.
//
//nolint:gochecknoglobals // Pre-built mapping for efficiency
var errorInfoEntries = []errorEntry{
	// ===================
	// Locking
	// ===================
	{
		err: ErrDatabaseLocked,
		info: ErrorInfo{
			Message: "The database is already locked for writing by another process.",
			Action:  "Close the other writer, or retry once it has finished.",
		},
	},
	{
		err: ErrLockUnsupported,
		info: ErrorInfo{
			Message: "The filesystem holding the database does not support file locking.",
			Action:  "Move the database to a local filesystem, or enable lockd on the NFS server.",
		},
	},
	{
		err: ErrLockFailed,
		info: ErrorInfo{
			Message: "The database write lock could not be acquired.",
			Action:  "Check the error details; a fresh attempt may succeed.",
		},
	},

	// ===================
	// Database lifecycle
	// ===================
	{
		err: ErrDatabaseClosed,
		info: ErrorInfo{
			Message: "The database has already been closed.",
			Action:  "Open the database again before using it.",
		},
	},
	{
		err: ErrDatabaseNotFound,
		info: ErrorInfo{
			Message: "The database directory does not exist.",
			Action:  "Check the path, or create the database directory first.",
		},
	},

	// ===================
	// Configuration & CLI
	// ===================
	{
		err: ErrConfigInvalidLock,
		info: ErrorInfo{
			Message: "The lock configuration is invalid.",
			Action:  "Fix the lock section of your config file (~/.xapian/config.yaml).",
		},
	},
	{
		err: ErrInvalidOutputFormat,
		info: ErrorInfo{
			Message: "The requested output format is not supported.",
			Action:  "Use --output text or --output json.",
		},
	},
}

// errorInfoMap provides O(1) lookup for direct sentinel error matches.
// Built once from errorInfoEntries during package initialization.
//
//nolint:gochecknoglobals // Pre-built mapping for O(1) lookup performance
var errorInfoMap = buildErrorInfoMap()

// buildErrorInfoMap creates a map from the errorInfoEntries slice.
// This is called once during package init for O(1) direct lookups.
func buildErrorInfoMap() map[error]ErrorInfo {
	m := make(map[error]ErrorInfo, len(errorInfoEntries))
	for _, entry := range errorInfoEntries {
		m[entry.err] = entry.info
	}
	return m
}

// getErrorInfo looks up the ErrorInfo for a given error.
// It first tries O(1) direct map lookup for unwrapped sentinel errors,
// then falls back to errors.Is() traversal for wrapped errors.
// Returns an ErrorInfo with the original error message if not found.
func getErrorInfo(err error) ErrorInfo {
	// Fast path: O(1) lookup for direct sentinel errors
	if info, ok := errorInfoMap[err]; ok {
		return info
	}

	// Slow path: errors.Is() for wrapped errors
	for _, entry := range errorInfoEntries {
		if errors.Is(err, entry.err) {
			return entry.info
		}
	}

	return ErrorInfo{Message: err.Error()}
}

// UserMessage returns a user-friendly message for common errors.
// This function maps sentinel errors to helpful, actionable messages
// that are suitable for display to end users.
//
// For unrecognized errors, it returns the error's original message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	return getErrorInfo(err).Message
}

// Actionable returns a user-friendly error message along with a suggested
// action the user can take to resolve or work around the issue.
//
// For errors that are not recoverable or have no clear action, the action
// string will be empty.
func Actionable(err error) (message, action string) {
	if err == nil {
		return "", ""
	}
	info := getErrorInfo(err)
	return info.Message, info.Action
}
