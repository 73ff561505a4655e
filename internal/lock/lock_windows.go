//go:build windows

package lock

import (
	"context"
	"errors"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/sys/windows"

	"github.com/harsh9t/xapian/internal/flock"
)

// lockState is the locked-state payload of a Handle on Windows: the open
// file whose handle carries the LockFileEx lock. A Windows lock belongs to
// the handle, not to the process's other opens, so no holder child is
// needed; closing the file on process exit (clean or not) frees the lock.
type lockState struct {
	file *os.File
}

// Locked reports whether this handle currently holds the write lock.
func (h *Handle) Locked() bool {
	return h.state.file != nil
}

// HolderPID returns 0 on Windows; there is no holder process.
func (h *Handle) HolderPID() int {
	return 0
}

// Acquire attempts to take the exclusive write lock on the target file.
// The context is used for logging only.
func (h *Handle) Acquire(ctx context.Context) Result {
	logger := zerolog.Ctx(ctx).With().
		Str("component", "lock").
		Str("path", h.path).
		Logger()

	if h.Locked() {
		return Result{Outcome: Unknown, Explanation: "lock already held by this handle"}
	}

	f, err := os.OpenFile(h.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o666) // #nosec G302,G304 -- lock target must be creatable by any cooperating writer
	if err != nil {
		return unknownResult("couldn't open lockfile", err)
	}

	if err := flock.Exclusive(f.Fd()); err != nil {
		_ = f.Close()
		if errors.Is(err, windows.ERROR_LOCK_VIOLATION) {
			return Result{Outcome: AlreadyHeld}
		}
		return unknownResult("couldn't lock file", err)
	}

	h.state.file = f
	logger.Debug().Msg("write lock acquired")
	return Result{Outcome: Success}
}

// Release drops the write lock. It is idempotent: releasing an unlocked
// handle is a no-op.
func (h *Handle) Release() {
	if !h.Locked() {
		return
	}
	_ = flock.Unlock(h.state.file.Fd())
	_ = h.state.file.Close()
	h.state.file = nil
}

// MaybeRunHolder is a no-op on Windows; the lock needs no holder process.
func MaybeRunHolder() {}
