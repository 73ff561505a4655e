//go:build windows

// Package main provides xapian-lockd, a minimal lock holder helper.
//
// Windows locking happens in-process via LockFileEx, so no holder process
// exists there. The binary still builds so cross-platform release tooling
// does not need per-OS package lists; running it just reports that.
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "xapian-lockd: not used on windows; locking is in-process")
	os.Exit(1)
}
