package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/emucfg/cmd/emucfg/commands/flags"
	"github.com/thoreinstein/emucfg/internal/backup"
	"github.com/thoreinstein/emucfg/internal/config"
	"github.com/thoreinstein/emucfg/internal/errors"
	"github.com/thoreinstein/emucfg/internal/logging"
)

func init() {
	rootCmd.AddCommand(resetCmd)
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Replace the settings file with defaults",
	Long: `Back up the current settings file, then replace it with a fresh
default configuration. The next start runs first-run initialization again.

Restore the previous file with: emucfg backup restore`,
	Args: cobra.NoArgs,
	RunE: runReset,
}

func runReset(cmd *cobra.Command, _ []string) error {
	o := flags.Options()
	if o.NoSaveSettings || o.DesignMode {
		return errors.NewUserError(errors.ErrSaveDisabled, "Remove --no-save-settings / --design-mode to reset")
	}

	logger := logging.FromContext(cmd.Context())
	mgr := backup.NewManager(
		backup.WithRetentionCount(o.BackupRetention),
		backup.WithLogger(logger),
	)
	if err := mgr.EnsureBackedUp(o.SettingsFile); err != nil {
		return errors.NewSystemError(err, "The settings file was not changed")
	}

	cfg := config.New(o.SettingsFile, config.WithLogger(logger))
	written, err := cfg.Serialize(o.SettingsFile)
	if err != nil {
		return errors.NewSystemError(err, "Check permissions on the settings directory")
	}

	w := cmd.OutOrStdout()
	if written {
		fmt.Fprintf(w, "%s Settings reset to defaults: %s\n", okMark, o.SettingsFile)
	}
	return nil
}
