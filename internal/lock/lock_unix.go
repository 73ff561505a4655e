//go:build unix

package lock

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"syscall"

	"github.com/rs/zerolog"
	"golang.org/x/sys/unix"

	"github.com/harsh9t/xapian/internal/constants"
)

// lockState is the locked-state payload of a Handle on Unix: the parent's
// end of the handshake socketpair and the holder child. Both are non-nil
// while locked and nil while unlocked; they change together.
type lockState struct {
	socket *os.File
	holder *exec.Cmd
}

// Locked reports whether this handle currently holds the write lock.
func (h *Handle) Locked() bool {
	return h.state.socket != nil
}

// HolderPID returns the pid of the holder child process, or 0 if the handle
// is not locked. Exposed for status displays and tests.
func (h *Handle) HolderPID() int {
	if !h.Locked() {
		return 0
	}
	return h.state.holder.Process.Pid
}

// Acquire attempts to take the exclusive write lock on the target file.
//
// It opens (creating or truncating) the target, spawns a holder child with
// the lock descriptor and one end of a private socketpair, and reads the
// holder's one-byte verdict. On Success the handle transitions to locked and
// stays so until Release. On any other outcome every resource acquired along
// the way is reclaimed before returning, including reaping the child.
//
// The context is used for logging only; an acquire attempt always runs to
// one of its defined outcomes and cannot be canceled midway.
func (h *Handle) Acquire(ctx context.Context) Result {
	logger := zerolog.Ctx(ctx).With().
		Str("component", "lock").
		Str("path", h.path).
		Logger()

	if h.Locked() {
		return Result{Outcome: Unknown, Explanation: "lock already held by this handle"}
	}

	lockFile, err := os.OpenFile(h.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o666) // #nosec G302,G304 -- lock target must be creatable by any cooperating writer
	if err != nil {
		return unknownResult("couldn't open lockfile", err)
	}

	parentEnd, childEnd, err := socketPair()
	if err != nil {
		_ = lockFile.Close()
		return unknownResult("couldn't create socketpair", err)
	}

	holder, err := h.spawnHolder(lockFile, childEnd)
	if err != nil {
		_ = lockFile.Close()
		_ = childEnd.Close()
		_ = parentEnd.Close()
		return unknownResult("couldn't spawn lock holder", err)
	}

	// The lock descriptor and the child end of the socketpair now belong
	// entirely to the holder.
	_ = lockFile.Close()
	_ = childEnd.Close()

	result := readHandshake(parentEnd)
	if result.Ok() {
		h.state.socket = parentEnd
		h.state.holder = holder
		logger.Debug().Int("holder_pid", holder.Process.Pid).Msg("write lock acquired")
		return result
	}

	_ = parentEnd.Close()
	_ = holder.Wait()
	logger.Debug().
		Stringer("outcome", result.Outcome).
		Str("explanation", result.Explanation).
		Msg("write lock not acquired")
	return result
}

// Release drops the write lock. It is idempotent: releasing an unlocked
// handle is a no-op. The holder is forced out of its blocking read with
// SIGHUP and then reaped, so no zombie is left behind. An error delivering
// the signal means the holder is already gone, in which case there is
// nothing left to wait for.
func (h *Handle) Release() {
	if !h.Locked() {
		return
	}
	_ = h.state.socket.Close()
	if err := h.state.holder.Process.Signal(unix.SIGHUP); err == nil {
		_ = h.state.holder.Wait()
	}
	h.state.socket = nil
	h.state.holder = nil
}

// socketPair creates the private bidirectional channel between the handle
// and the holder. Both ends are close-on-exec; the child end reaches the
// holder only by being wired to its stdin/stdout, so no other descendant of
// this process can inherit it.
func socketPair() (parentEnd, childEnd *os.File, err error) {
	fds, err := unix.Socketpair(unix.AF_UNIX, unix.SOCK_STREAM|unix.SOCK_CLOEXEC, 0)
	if err != nil {
		return nil, nil, err
	}
	parentEnd = os.NewFile(uintptr(fds[0]), "lock-holder-channel")
	childEnd = os.NewFile(uintptr(fds[1]), "lock-holder-channel")
	return parentEnd, childEnd, nil
}

// spawnHolder starts the holder child. The child sees the lock descriptor as
// fd 3 and the socketpair as its stdin and stdout; everything else the
// parent has open stays closed for it, and its working directory is "/" so
// it can never block unmounting of the filesystem the caller runs from.
func (h *Handle) spawnHolder(lockFile, childEnd *os.File) (*exec.Cmd, error) {
	exe := h.holderPath
	if exe == "" {
		var err error
		exe, err = os.Executable()
		if err != nil {
			return nil, err
		}
	}

	cmd := &exec.Cmd{
		Path: exe,
		// Inert placeholder argv: the child does nothing but hold the lock,
		// and process listings should say so.
		Args:       []string{constants.HolderProcessTitle},
		Env:        append(os.Environ(), constants.HolderEnvVar+"=1"),
		Stdin:      childEnd,
		Stdout:     childEnd,
		Dir:        "/",
		ExtraFiles: []*os.File{lockFile},
	}
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return cmd, nil
}

// readHandshake performs the parent's half of the handshake: a blocking read
// of exactly one status byte, retried only on signal interruption. EOF
// before any byte means the holder died without reporting; the cause is
// unknowable here, so it stays unclassified.
func readHandshake(socket *os.File) Result {
	var buf [1]byte
	for {
		n, err := socket.Read(buf[:])
		if n == 1 {
			return resultFromStatus(buf[0])
		}
		switch {
		case errors.Is(err, io.EOF):
			return Result{Outcome: Unknown, Explanation: "got EOF reading from lock holder"}
		case errors.Is(err, syscall.EINTR):
			continue
		default:
			return unknownResult("error reading from lock holder", err)
		}
	}
}
