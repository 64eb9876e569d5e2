// Package backup provides CLI commands for managing settings backups.
package backup

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/emucfg/cmd/emucfg/commands/flags"
	"github.com/thoreinstein/emucfg/internal/backup"
	"github.com/thoreinstein/emucfg/internal/logging"
)

var (
	green = color.New(color.FgGreen).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
	gray  = color.New(color.FgHiBlack).SprintFunc()
)

// Cmd is the root backup command.
var Cmd = &cobra.Command{
	Use:   "backup",
	Short: "Manage settings backups",
	Long: `Manage backups of the settings file.

emucfg backs up the settings file before destructive commands such as reset
and restore. This command group lists, creates, restores and prunes those
backups.

Backups are stored under $XDG_DATA_HOME/emucfg/backups/.`,
	Example: `  # List backups
  emucfg backup list

  # Restore the most recent backup
  emucfg backup restore

  # Restore a specific backup
  emucfg backup restore 20260123T100712

  # Keep only the 3 most recent
  emucfg backup prune --keep 3`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

// newManager returns a backup manager configured from the launch options.
func newManager(cmd *cobra.Command) *backup.Manager {
	return backup.NewManager(
		backup.WithRetentionCount(flags.Options().BackupRetention),
		backup.WithLogger(logging.FromContext(cmd.Context())),
	)
}
