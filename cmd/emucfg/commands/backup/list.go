package backup

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/emucfg/internal/backup"
	"github.com/thoreinstein/emucfg/internal/errors"
)

var listJSON bool

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	Cmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available backups",
	Long: `List all settings backups with the most recent first.`,
	Example: `  # List all backups
  emucfg backup list

  # Output as JSON
  emucfg backup list --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runList(newManager(cmd), cmd.OutOrStdout())
	},
}

// infoOutput represents a single backup in JSON output.
type infoOutput struct {
	ID          string    `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	SourcePath  string    `json:"source_path"`
	Size        int64     `json:"size"`
	ToolVersion string    `json:"tool_version"`
}

func runList(mgr *backup.Manager, w io.Writer) error {
	manifests, err := mgr.List()
	if err != nil && !errors.Is(err, backup.ErrNoBackupsFound) {
		return errors.Wrap(err, "listing backups")
	}

	if listJSON {
		out := make([]infoOutput, 0, len(manifests))
		for _, m := range manifests {
			out = append(out, infoOutput{
				ID:          m.ID,
				CreatedAt:   m.CreatedAt,
				SourcePath:  m.SourcePath,
				Size:        m.Size,
				ToolVersion: m.ToolVersion,
			})
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	if len(manifests) == 0 {
		fmt.Fprintln(w, "No backups found")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, bold("ID")+"\t"+bold("CREATED")+"\t"+bold("SIZE")+"\t"+bold("SOURCE"))
	for _, m := range manifests {
		fmt.Fprintf(tw, "%s\t%s\t%d B\t%s\n",
			m.ID, m.CreatedAt.Local().Format(time.DateTime), m.Size, gray(m.SourcePath))
	}
	return tw.Flush()
}
