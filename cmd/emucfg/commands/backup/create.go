package backup

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/emucfg/cmd/emucfg/commands/flags"
	"github.com/thoreinstein/emucfg/internal/backup"
	"github.com/thoreinstein/emucfg/internal/errors"
)

func init() {
	Cmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Back up the settings file now",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		path := flags.Options().SettingsFile
		manifest, err := newManager(cmd).Backup(path)
		if err != nil {
			if errors.Is(err, backup.ErrNothingToBackUp) {
				return errors.NewUserError(err, "Run: emucfg start")
			}
			return errors.NewSystemError(err, "")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s Created backup %s\n", green("✓"), manifest.ID)
		return nil
	},
}
