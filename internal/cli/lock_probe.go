// Package cli provides the command-line interface for xapian.
package cli

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/harsh9t/xapian/internal/config"
	"github.com/harsh9t/xapian/internal/db"
	"github.com/harsh9t/xapian/internal/errors"
	"github.com/harsh9t/xapian/internal/lock"
)

// probeResponse is the JSON response for the lock probe command.
type probeResponse struct {
	Database    string `json:"database"`
	LockPath    string `json:"lock_path"`
	Outcome     string `json:"outcome"`
	Free        bool   `json:"free"`
	Explanation string `json:"explanation,omitempty"`
	Attempts    int    `json:"attempts"`
}

// addLockProbeCmd adds the probe subcommand to the lock command.
func addLockProbeCmd(parent *cobra.Command) {
	var wait bool

	cmd := &cobra.Command{
		Use:   "probe <db-dir>",
		Short: "Check whether the database write lock is free",
		Long: `Attempt to take the write lock on a database directory and report the
outcome. A successful probe releases the lock again immediately, so probing
never blocks a real writer for longer than the attempt itself.

With --wait, a contended probe is retried at the configured probe interval
(lock.probe_interval) until the lock becomes free.

Examples:
  xapian lock probe /srv/search/db          # Report and exit
  xapian lock probe /srv/search/db --wait   # Block until the lock frees`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runLockProbe(cmd.Context(), cmd, os.Stdout, args[0], wait)
			// If JSON error was already output, silence cobra's error printing
			// but still return error for non-zero exit code
			if stderrors.Is(err, errors.ErrJSONErrorOutput) {
				cmd.SilenceErrors = true
			}
			return err
		},
	}

	cmd.Flags().BoolVarP(&wait, "wait", "w", false, "Retry until the lock becomes free")

	parent.AddCommand(cmd)
}

// runLockProbe executes the lock probe command.
func runLockProbe(ctx context.Context, cmd *cobra.Command, w io.Writer, dir string, wait bool) error {
	// Get output format from global flags
	output := cmd.Flag("output").Value.String()

	logger := Logger()
	ctx = logger.WithContext(ctx)

	cfg, err := config.Load(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	return probeUntilFree(ctx, w, dir, wait, output, cfg)
}

// probeUntilFree attempts the lock, retrying on contention when wait is set.
func probeUntilFree(ctx context.Context, w io.Writer, dir string, wait bool, output string, cfg *config.Config) error {
	target := db.LockPath(dir)
	opts := holderOptions(cfg)

	attempts := 0
	for {
		attempts++

		h := lock.New(target, opts...)
		res := h.Acquire(ctx)
		if res.Ok() {
			h.Release()
			return writeProbeResult(w, output, dir, target, res, attempts)
		}

		if wait && res.Outcome == lock.AlreadyHeld {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(cfg.Lock.ProbeInterval):
				continue
			}
		}

		if writeErr := writeProbeResult(w, output, dir, target, res, attempts); writeErr != nil {
			return writeErr
		}
		if output == OutputJSON {
			return errors.ErrJSONErrorOutput
		}
		return res.Err()
	}
}

// writeProbeResult reports a probe outcome in the requested format.
func writeProbeResult(w io.Writer, output, dir, target string, res lock.Result, attempts int) error {
	if output == OutputJSON {
		return json.NewEncoder(w).Encode(probeResponse{
			Database:    dir,
			LockPath:    target,
			Outcome:     res.Outcome.String(),
			Free:        res.Ok(),
			Explanation: res.Explanation,
			Attempts:    attempts,
		})
	}

	switch res.Outcome {
	case lock.Success:
		_, _ = fmt.Fprintf(w, "%s %s\n", styleFree.Render("free"), styleDim.Render(dir))
	case lock.AlreadyHeld:
		_, _ = fmt.Fprintf(w, "%s %s\n", styleHeld.Render("locked"), styleDim.Render(dir))
	default:
		msg, action := errors.Actionable(res.Err())
		_, _ = fmt.Fprintf(w, "%s %s\n", styleError.Render("error:"), msg)
		if action != "" {
			_, _ = fmt.Fprintf(w, "  %s\n", styleDim.Render(action))
		}
	}
	return nil
}
