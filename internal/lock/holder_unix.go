//go:build unix

package lock

import (
	"errors"
	"os"
	"syscall"

	"golang.org/x/sys/unix"

	"github.com/harsh9t/xapian/internal/constants"
	"github.com/harsh9t/xapian/internal/flock"
)

// Status bytes exchanged over the handshake channel. The holder writes
// exactly one of these before it either parks (success) or exits.
const (
	statusSuccess byte = iota
	statusAlreadyHeld
	statusUnsupported
)

// holderLockFd is where the parent plants the lock file descriptor in the
// child: the first (and only) entry of ExtraFiles lands after stderr.
const holderLockFd = 3

// resultFromStatus decodes a handshake byte into a Result.
func resultFromStatus(status byte) Result {
	switch status {
	case statusSuccess:
		return Result{Outcome: Success}
	case statusAlreadyHeld:
		return Result{Outcome: AlreadyHeld}
	case statusUnsupported:
		return Result{Outcome: Unsupported}
	default:
		return Result{Outcome: Unknown, Explanation: "unexpected status byte from lock holder"}
	}
}

// MaybeRunHolder dispatches to the holder protocol when the current process
// was spawned as a lock holder. It must be the first call in main; it never
// returns in the holder child and does nothing otherwise.
func MaybeRunHolder() {
	if os.Getenv(constants.HolderEnvVar) == "" {
		return
	}
	RunHolder()
}

// RunHolder executes the holder side of the protocol and never returns.
//
// The process must have been set up the way Acquire spawns it: the lock file
// descriptor at fd 3 and the handshake socket as stdin and stdout. It takes
// the record lock, reports the outcome as one status byte, and on success
// parks in a byte echo loop. Blocking on that read is the entire keep-alive
// mechanism: the process (and with it the kernel lock) survives until the
// socket reaches EOF or a termination signal arrives.
//
// It is exported for the standalone xapian-lockd helper binary; everything
// else should go through MaybeRunHolder.
func RunHolder() {
	lockFile := os.NewFile(holderLockFd, constants.LockFileName)

	status := statusSuccess
	for {
		err := flock.Exclusive(lockFile.Fd())
		if err == nil {
			break
		}
		if errors.Is(err, unix.EINTR) {
			continue
		}
		// Translate known errno values into a status byte. Anything else
		// exits unreported; the parent sees EOF and treats the lock as
		// failed.
		switch {
		case errors.Is(err, unix.EACCES) || errors.Is(err, unix.EAGAIN):
			status = statusAlreadyHeld
		case errors.Is(err, unix.ENOLCK):
			status = statusUnsupported
		default:
			os.Exit(0)
		}
		break
	}

	writeStatus(status)
	if status != statusSuccess {
		os.Exit(0)
	}

	echoUntilEOF()
	os.Exit(0)
}

// writeStatus tells the parent whether we got the lock, retrying only when
// interrupted by a signal. Any other write failure leaves nothing useful to
// do: exit, and the parent will read EOF and know the lock failed.
func writeStatus(status byte) {
	buf := [1]byte{status}
	for {
		_, err := os.Stdout.Write(buf[:])
		if err == nil {
			return
		}
		if !errors.Is(err, syscall.EINTR) {
			os.Exit(1)
		}
	}
}

// echoUntilEOF copies bytes from stdin back to stdout one at a time until
// the socket closes. No data is expected in practice; the read exists purely
// to block.
func echoUntilEOF() {
	var buf [1]byte
	for {
		n, err := os.Stdin.Read(buf[:])
		if n > 0 {
			_, _ = os.Stdout.Write(buf[:n])
		}
		if err != nil {
			if errors.Is(err, syscall.EINTR) {
				continue
			}
			return
		}
	}
}
