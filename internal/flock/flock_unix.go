//go:build unix

package flock

import (
	"io"

	"golang.org/x/sys/unix"
)

// Exclusive attempts to acquire an exclusive write lock on the first byte of
// the file without blocking. The returned error is the raw errno from
// fcntl(2): EACCES or EAGAIN when another process holds the lock, ENOLCK
// when the kernel lock table is full or the filesystem cannot lock.
//
// The call is not retried on EINTR; callers decide their own retry policy.
func Exclusive(fd uintptr) error {
	fl := unix.Flock_t{
		Type:   unix.F_WRLCK,
		Whence: io.SeekStart,
		Start:  0,
		Len:    1,
	}
	return unix.FcntlFlock(fd, unix.F_SETLK, &fl)
}

// Unlock releases the byte-range lock on the file descriptor.
//
// The write lock is normally released implicitly by holder process exit;
// Unlock exists for callers (and tests) that manage the descriptor directly.
func Unlock(fd uintptr) error {
	fl := unix.Flock_t{
		Type:   unix.F_UNLCK,
		Whence: io.SeekStart,
		Start:  0,
		Len:    1,
	}
	return unix.FcntlFlock(fd, unix.F_SETLK, &fl)
}

// Held reports whether some other process holds a lock that would block an
// exclusive lock on the first byte of the file. It never takes the lock.
func Held(fd uintptr) (bool, error) {
	fl := unix.Flock_t{
		Type:   unix.F_WRLCK,
		Whence: io.SeekStart,
		Start:  0,
		Len:    1,
	}
	if err := unix.FcntlFlock(fd, unix.F_GETLK, &fl); err != nil {
		return false, err
	}
	return fl.Type != unix.F_UNLCK, nil
}
