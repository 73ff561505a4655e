// Package flock provides the kernel-level advisory lock primitives used by
// the database write lock.
//
// On Unix systems the lock is a POSIX byte-range record lock (fcntl F_SETLK)
// over the first byte of the file. Record locks belong to the (process,
// inode) pair: they vanish if the owning process closes any other descriptor
// for the same file, which is why internal/lock holds them from a dedicated
// child process rather than calling this package directly from a long-lived
// caller. On Windows the lock is a non-blocking LockFileEx exclusive lock,
// which is tied to the handle and needs no such isolation.
//
// Errors are returned as raw errno values (unix.Errno on Unix) so that
// callers can map contention and unsupported-filesystem causes to their own
// taxonomy.
package flock
