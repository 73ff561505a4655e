// Package lock implements the exclusive, crash-safe write lock that guards a
// database directory against concurrent writers.
//
// On POSIX systems the kernel primitive is an fcntl record lock, and record
// locks have a famous trap: they belong to the (process, inode) pair, not to
// the open file description. If the owning process opens the lock file a
// second time anywhere in its lifetime and later closes that descriptor, the
// kernel silently drops the lock for the whole process. A long-lived server
// that opens many files can therefore never hold such a lock directly.
//
// This package sidesteps the trap by delegating the lock to a dedicated
// holder child process. The holder's only job is to take the record lock,
// report the outcome over a private socketpair as a single status byte, and
// then block echoing bytes on that socket until told to exit. The kernel
// releases the lock when the holder terminates, so the lock's lifetime is
// exactly the holder's lifetime, immune to descriptor churn in the parent.
// This also makes the lock crash-safe: if either side dies, the lock frees
// itself.
//
// Holder bootstrap: the holder child is a re-exec of the current binary (or
// of the executable configured with WithHolderExecutable). Binaries that use
// this package on Unix MUST call MaybeRunHolder at the very top of main, so
// that the re-exec'd child runs the holder protocol instead of the normal
// program:
//
//	func main() {
//	    lock.MaybeRunHolder()
//	    // ... normal startup ...
//	}
//
// On Windows the lock is a LockFileEx lock tied to the open handle, so no
// holder process is needed and MaybeRunHolder is a no-op.
//
// A Handle is not safe for concurrent use by multiple goroutines without
// external synchronization: Acquire and Release mutate its locked/unlocked
// state directly.
package lock
