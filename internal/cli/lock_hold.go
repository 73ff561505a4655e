// Package cli provides the command-line interface for xapian.
package cli

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/harsh9t/xapian/internal/config"
	"github.com/harsh9t/xapian/internal/db"
	"github.com/harsh9t/xapian/internal/errors"
	"github.com/harsh9t/xapian/internal/lock"
	"github.com/harsh9t/xapian/internal/signal"
)

// holdEvent is one JSON line emitted by the lock hold command.
type holdEvent struct {
	Event       string `json:"event"`
	Database    string `json:"database"`
	LockPath    string `json:"lock_path"`
	HolderPID   int    `json:"holder_pid,omitempty"`
	Outcome     string `json:"outcome,omitempty"`
	Explanation string `json:"explanation,omitempty"`
}

// addLockHoldCmd adds the hold subcommand to the lock command.
func addLockHoldCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "hold <db-dir>",
		Short: "Hold the database write lock until interrupted",
		Long: `Take the write lock on a database directory and keep it until the
process receives SIGINT or SIGTERM, then release it. Useful to fence off
all writers while running maintenance against the database files.

Examples:
  xapian lock hold /srv/search/db   # Ctrl+C releases the lock`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runLockHold(cmd.Context(), cmd, os.Stdout, args[0])
			// If JSON error was already output, silence cobra's error printing
			// but still return error for non-zero exit code
			if stderrors.Is(err, errors.ErrJSONErrorOutput) {
				cmd.SilenceErrors = true
			}
			return err
		},
	}

	parent.AddCommand(cmd)
}

// runLockHold executes the lock hold command.
func runLockHold(ctx context.Context, cmd *cobra.Command, w io.Writer, dir string) error {
	output := cmd.Flag("output").Value.String()

	logger := Logger()
	ctx = logger.WithContext(ctx)

	cfg, err := config.Load(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	target := db.LockPath(dir)
	h := lock.New(target, holderOptions(cfg)...)

	res := h.Acquire(ctx)
	if !res.Ok() {
		if writeErr := writeHoldEvent(w, output, "failed", dir, target, h, res); writeErr != nil {
			return writeErr
		}
		if output == OutputJSON {
			return errors.ErrJSONErrorOutput
		}
		return res.Err()
	}
	// Release on every exit path, including panics below.
	defer h.Release()

	if err := writeHoldEvent(w, output, "held", dir, target, h, res); err != nil {
		return err
	}

	handler := signal.NewHandler(ctx)
	defer handler.Stop()

	select {
	case <-handler.Interrupted():
	case <-ctx.Done():
	}

	h.Release()
	logger.Info().Str("database", dir).Msg("write lock released")
	return writeHoldEvent(w, output, "released", dir, target, h, res)
}

// writeHoldEvent reports a hold lifecycle event in the requested format.
func writeHoldEvent(w io.Writer, output, event, dir, target string, h *lock.Handle, res lock.Result) error {
	if output == OutputJSON {
		return json.NewEncoder(w).Encode(holdEvent{
			Event:       event,
			Database:    dir,
			LockPath:    target,
			HolderPID:   h.HolderPID(),
			Outcome:     res.Outcome.String(),
			Explanation: res.Explanation,
		})
	}

	switch event {
	case "held":
		_, _ = fmt.Fprintf(w, "%s %s\n", styleFree.Render("write lock held"), styleDim.Render(dir))
		if pid := h.HolderPID(); pid > 0 {
			_, _ = fmt.Fprintf(w, "  %s\n", styleDim.Render(fmt.Sprintf("holder pid %d, Ctrl+C to release", pid)))
		}
	case "released":
		_, _ = fmt.Fprintf(w, "%s %s\n", styleFree.Render("write lock released"), styleDim.Render(dir))
	default:
		msg, action := errors.Actionable(res.Err())
		_, _ = fmt.Fprintf(w, "%s %s\n", styleError.Render("error:"), msg)
		if action != "" {
			_, _ = fmt.Fprintf(w, "  %s\n", styleDim.Render(action))
		}
	}
	return nil
}
