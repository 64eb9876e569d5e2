package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/emucfg/cmd/emucfg/commands/flags"
	"github.com/thoreinstein/emucfg/internal/paths"
)

var pathAll bool

func init() {
	pathCmd.Flags().BoolVar(&pathAll, "all", false, "also print the options file and backup locations")
	rootCmd.AddCommand(pathCmd)
}

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the settings file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		w := cmd.OutOrStdout()
		if !pathAll {
			fmt.Fprintln(w, flags.Options().SettingsFile)
			return nil
		}
		fmt.Fprintf(w, "settings: %s\n", flags.Options().SettingsFile)
		fmt.Fprintf(w, "options:  %s\n", filepath.Join(paths.AppConfigDir(), paths.AppName+".yaml"))
		fmt.Fprintf(w, "backups:  %s\n", paths.BackupDir())
		return nil
	},
}
