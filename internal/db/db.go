// Package db provides the database open/close layer that consumes the write
// lock. A database is a directory; its lock target is the flintlock file
// inside that directory. Opening writable takes the exclusive write lock and
// holds it until Close, so at most one writer has the database open at a
// time. Read-only opens never touch the lock.
package db

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/harsh9t/xapian/internal/constants"
	"github.com/harsh9t/xapian/internal/errors"
	"github.com/harsh9t/xapian/internal/lock"
)

// Database is an open database directory. It is not safe for concurrent use
// by multiple goroutines without external synchronization.
type Database struct {
	dir      string
	writable bool
	lock     *lock.Handle
	closed   bool
}

// LockPath returns the write-lock target file for a database directory.
func LockPath(dir string) string {
	return filepath.Join(dir, constants.LockFileName)
}

// Open opens the database directory. When writable is true it acquires the
// exclusive write lock and fails with ErrDatabaseLocked (another writer),
// ErrLockUnsupported (filesystem cannot lock), or ErrLockFailed (anything
// else) when the lock cannot be taken.
//
// The context is used for logging only.
func Open(ctx context.Context, dir string, writable bool, opts ...lock.Option) (*Database, error) {
	logger := zerolog.Ctx(ctx).With().
		Str("component", "db").
		Str("dir", dir).
		Logger()

	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(errors.ErrDatabaseNotFound, "%s", dir)
		}
		return nil, errors.Wrap(err, "failed to stat database directory")
	}
	if !info.IsDir() {
		return nil, errors.Wrapf(errors.ErrDatabaseNotFound, "%s is not a directory", dir)
	}

	d := &Database{dir: dir, writable: writable}
	if !writable {
		logger.Debug().Msg("database opened read-only")
		return d, nil
	}

	d.lock = lock.New(LockPath(dir), opts...)
	if res := d.lock.Acquire(ctx); !res.Ok() {
		return nil, res.Err()
	}
	logger.Debug().Msg("database opened for writing")
	return d, nil
}

// Dir returns the database directory path.
func (d *Database) Dir() string {
	return d.dir
}

// Writable reports whether the database was opened for writing.
func (d *Database) Writable() bool {
	return d.writable && !d.closed
}

// Close releases the write lock if one is held. It is idempotent.
func (d *Database) Close() {
	if d.closed {
		return
	}
	if d.lock != nil {
		d.lock.Release()
	}
	d.closed = true
}
