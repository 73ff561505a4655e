// Package main provides the entry point for the xapian CLI.
package main

import (
	"context"
	"os"

	"github.com/harsh9t/xapian/internal/cli"
	"github.com/harsh9t/xapian/internal/lock"
)

// Build information set via ldflags.
//
//nolint:gochecknoglobals // set at build time
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Must run before anything else: when this process was re-executed as a
	// lock holder it speaks the holder protocol on stdin/stdout and never
	// reaches the CLI.
	lock.MaybeRunHolder()

	ctx := context.Background()
	if err := cli.Execute(ctx, cli.BuildInfo{Version: version, Commit: commit, Date: date}); err != nil {
		os.Exit(1)
	}
}
