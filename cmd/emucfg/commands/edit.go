package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/emucfg/cmd/emucfg/commands/flags"
	"github.com/thoreinstein/emucfg/internal/backup"
	"github.com/thoreinstein/emucfg/internal/config"
	"github.com/thoreinstein/emucfg/internal/doctor"
	"github.com/thoreinstein/emucfg/internal/editor"
	"github.com/thoreinstein/emucfg/internal/errors"
	"github.com/thoreinstein/emucfg/internal/logging"
)

// openEditor opens a file in the user's editor. Tests replace it.
var openEditor = editor.Open

func init() {
	rootCmd.AddCommand(editCmd)
}

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit the settings file in $EDITOR",
	Long: `Back up the settings file and open it in $EDITOR (or $VISUAL). When the
file does not exist yet it is created with defaults first.

After the editor exits the file is checked the way startup reads it, and
any section that would fall back to defaults is reported.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runEdit(cmd, cmd.OutOrStdout())
	},
}

func runEdit(cmd *cobra.Command, w io.Writer) error {
	o := flags.Options()
	if o.NoSaveSettings || o.DesignMode {
		return errors.NewUserError(errors.ErrSaveDisabled, "Remove --no-save-settings / --design-mode to edit")
	}
	logger := logging.FromContext(cmd.Context())

	if _, err := os.Stat(o.SettingsFile); errors.Is(err, os.ErrNotExist) {
		cfg := config.New(o.SettingsFile, config.WithLogger(logger))
		if _, err := cfg.Serialize(o.SettingsFile); err != nil {
			return errors.NewSystemError(err, "Check permissions on the settings directory")
		}
	} else {
		mgr := backup.NewManager(
			backup.WithRetentionCount(o.BackupRetention),
			backup.WithLogger(logger),
		)
		if err := mgr.EnsureBackedUp(o.SettingsFile); err != nil {
			return errors.NewSystemError(err, "The settings file was not opened")
		}
	}

	if err := openEditor(o.SettingsFile); err != nil {
		return errors.NewUserError(err, "Set $EDITOR to your editor")
	}

	result := doctor.NewSettingsCheck(o.SettingsFile, nil).Run()
	switch result.Status {
	case doctor.SeverityPass, doctor.SeverityInfo:
		fmt.Fprintf(w, "%s %s\n", okMark, result.Message)
	default:
		fmt.Fprintf(w, "%s %s\n", statusIcon(result.Status), result.Message)
		if result.FixHint != "" {
			fmt.Fprintf(w, "  hint: %s\n", result.FixHint)
		}
		fmt.Fprintln(w, faint("Undo with: emucfg backup restore"))
	}
	return nil
}
