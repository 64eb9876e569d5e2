package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/emucfg/cmd"
	"github.com/thoreinstein/emucfg/internal/config"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version information",
	Long:  `Print the version, commit, and build date of emucfg, and the settings schema version it writes.`,
	Run: func(c *cobra.Command, _ []string) {
		w := c.OutOrStdout()
		fmt.Fprintf(w, "emucfg version %s\n", cmd.Version)
		fmt.Fprintf(w, "  commit:   %s\n", cmd.Commit)
		fmt.Fprintf(w, "  built:    %s\n", cmd.Date)
		fmt.Fprintf(w, "  go:       %s\n", runtime.Version())
		fmt.Fprintf(w, "  settings: %s\n", config.Version)
	},
}
