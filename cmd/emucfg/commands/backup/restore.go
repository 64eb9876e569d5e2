package backup

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/emucfg/cmd/emucfg/commands/flags"
	"github.com/thoreinstein/emucfg/internal/backup"
	"github.com/thoreinstein/emucfg/internal/errors"
)

func init() {
	Cmd.AddCommand(restoreCmd)
}

var restoreCmd = &cobra.Command{
	Use:   "restore [backup-id]",
	Short: "Restore the settings file from a backup",
	Long: `Restore the settings file from a backup.

If no backup ID is provided, restores the most recent backup. The current
settings file is backed up first, so a restore can itself be undone.`,
	Example: `  # Restore the most recent backup
  emucfg backup restore

  # Restore a specific backup
  emucfg backup restore 20260123T100712`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRestore(newManager(cmd), args, cmd.OutOrStdout())
	},
}

func runRestore(mgr *backup.Manager, args []string, w io.Writer) error {
	o := flags.Options()
	if o.NoSaveSettings || o.DesignMode {
		return errors.NewUserError(errors.ErrSaveDisabled, "Remove --no-save-settings / --design-mode to restore")
	}

	// Pick the backup before taking a new one of the current file.
	var backupID string
	if len(args) > 0 {
		backupID = args[0]
	} else {
		manifests, err := mgr.List()
		if err != nil {
			if errors.Is(err, backup.ErrNoBackupsFound) {
				return errors.NewUserError(err, "Run: emucfg backup create")
			}
			return errors.Wrap(err, "listing backups")
		}
		backupID = manifests[0].ID
		fmt.Fprintf(w, "Using most recent backup: %s\n", backupID)
	}

	if _, err := mgr.Get(backupID); err != nil {
		return errors.NewUserError(err, "Run: emucfg backup list")
	}

	if err := mgr.EnsureBackedUp(o.SettingsFile); err != nil {
		return errors.NewSystemError(err, "The settings file was not changed")
	}

	manifest, err := mgr.Restore(backupID)
	if err != nil {
		return errors.Wrap(err, "restoring backup")
	}

	fmt.Fprintf(w, "%s Restored %s from backup %s\n", green("✓"), manifest.SourcePath, backupID)
	return nil
}
