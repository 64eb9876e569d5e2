package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(cleanupCmd)
}

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Remove settings this version no longer understands",
	Long: `Remove obsolete entries from the settings file, such as shortcut
bindings for actions that no longer exist, and save the result.

Running it twice removes nothing the second time.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg := loadSettings(cmd)
		removed := cfg.RemoveObsoleteConfig()
		cfg.Save()

		w := cmd.OutOrStdout()
		if removed == 0 {
			fmt.Fprintln(w, "No obsolete settings found")
			return nil
		}
		fmt.Fprintf(w, "%s Removed %d obsolete setting(s)\n", okMark, removed)
		printSaveNote(w)
		return nil
	},
}
