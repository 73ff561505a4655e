package lock

import (
	"fmt"

	"github.com/harsh9t/xapian/internal/errors"
)

// Outcome classifies the result of an Acquire attempt.
type Outcome int

// Acquire outcomes. The zero value is Success so that a Result built from a
// successful path needs no explicit outcome.
const (
	// Success means the write lock is now held by this handle.
	Success Outcome = iota

	// AlreadyHeld means another process holds the write lock.
	AlreadyHeld

	// Unsupported means the platform or filesystem cannot provide advisory
	// locking (kernel lock table exhausted, or a filesystem such as NFS
	// without lock support).
	Unsupported

	// Unknown covers every other failure: open, socketpair, spawn, or
	// handshake communication errors.
	Unknown
)

// String returns a short human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case AlreadyHeld:
		return "already held"
	case Unsupported:
		return "unsupported"
	case Unknown:
		return "unknown"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Result is the value returned by Acquire: an Outcome plus an optional
// explanation for non-success outcomes that are not self-explanatory.
type Result struct {
	// Outcome classifies what happened.
	Outcome Outcome

	// Explanation is extra human-readable detail for non-success outcomes.
	// It is empty when the outcome speaks for itself (AlreadyHeld usually
	// needs no elaboration).
	Explanation string
}

// Ok reports whether the acquire succeeded.
func (r Result) Ok() bool {
	return r.Outcome == Success
}

// Err converts the result to an error for callers that propagate failures
// through error chains. It returns nil for Success; otherwise the error
// wraps the matching sentinel from internal/errors, so callers can use
// errors.Is to distinguish contention from environmental problems.
func (r Result) Err() error {
	var sentinel error
	switch r.Outcome {
	case Success:
		return nil
	case AlreadyHeld:
		sentinel = errors.ErrDatabaseLocked
	case Unsupported:
		sentinel = errors.ErrLockUnsupported
	default:
		sentinel = errors.ErrLockFailed
	}
	if r.Explanation == "" {
		return sentinel
	}
	return fmt.Errorf("%w: %s", sentinel, r.Explanation)
}

// unknownResult builds an Unknown result with an explanation assembled from
// a message and the underlying OS error.
func unknownResult(msg string, err error) Result {
	return Result{Outcome: Unknown, Explanation: fmt.Sprintf("%s: %v", msg, err)}
}
