//go:build unix

// Package main provides xapian-lockd, a minimal lock holder helper.
//
// The xapian binary normally re-executes itself to act as the lock holder
// child. Deployments that want a tiny, stable holder executable instead
// (for example to keep the process list readable, or when the main binary
// lives on a filesystem that may be replaced while locks are held) can set
// lock.holder_path to this binary.
//
// The binary is not meant to be run by hand: it expects the holder protocol
// environment and file descriptors prepared by the parent process.
package main

import (
	"github.com/harsh9t/xapian/internal/lock"
)

func main() {
	// Never returns: either takes the lock and blocks until the parent
	// closes the socket, or exits with the handshake already written.
	lock.RunHolder()
}
