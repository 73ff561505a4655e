// Package cli provides the command-line interface for xapian.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/harsh9t/xapian/internal/config"
	"github.com/harsh9t/xapian/internal/lock"
)

// AddLockCommand adds the lock command group to the root command.
func AddLockCommand(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "lock",
		Short: "Inspect and control the database write lock",
		Long: `Operate on the exclusive write lock that guards a database directory.

The lock lives in the flintlock file inside the database directory. It is
held by a dedicated holder process whose lifetime equals the lock's held
duration, so a crashed writer can never leave the database locked.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	addLockProbeCmd(cmd)
	addLockHoldCmd(cmd)

	parent.AddCommand(cmd)
}

// holderOptions converts the lock configuration into Handle options.
func holderOptions(cfg *config.Config) []lock.Option {
	if cfg.Lock.HolderPath == "" {
		return nil
	}
	return []lock.Option{lock.WithHolderExecutable(cfg.Lock.HolderPath)}
}
