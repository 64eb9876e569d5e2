package backup

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/emucfg/cmd/emucfg/commands/flags"
	"github.com/thoreinstein/emucfg/internal/backup"
	"github.com/thoreinstein/emucfg/internal/errors"
)

var pruneKeep int

func init() {
	pruneCmd.Flags().IntVar(&pruneKeep, "keep", -1,
		"number of backups to retain (default: the backup_retention option)")
	Cmd.AddCommand(pruneCmd)
}

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove old backups",
	Long: `Remove backups beyond the retention count, oldest first.

Without --keep, the backup_retention option (default 5) is used.`,
	Example: `  # Keep the configured number of backups
  emucfg backup prune

  # Remove all backups
  emucfg backup prune --keep 0`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		keep := pruneKeep
		if !cmd.Flags().Changed("keep") {
			keep = flags.Options().BackupRetention
		}
		return runPrune(newManager(cmd), keep, cmd.OutOrStdout())
	},
}

func runPrune(mgr *backup.Manager, keep int, w io.Writer) error {
	if keep < 0 {
		return errors.NewUserError(errors.New("--keep must be non-negative"), "")
	}

	removed, err := mgr.Prune(keep)
	if err != nil {
		return errors.Wrap(err, "pruning backups")
	}

	if removed == 0 {
		fmt.Fprintln(w, "No backups to prune")
		return nil
	}
	fmt.Fprintf(w, "%s Removed %d old backup(s)\n", green("✓"), removed)
	return nil
}
