package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/emucfg/internal/config"
	"github.com/thoreinstein/emucfg/internal/viewmodel"
)

var recentPatch string

func init() {
	recentAddCmd.Flags().StringVar(&recentPatch, "patch", "", "patch file applied to the ROM")

	recentCmd.AddCommand(recentAddCmd, recentListCmd, recentClearCmd)
	rootCmd.AddCommand(recentCmd)
}

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Manage the recent games list",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

var recentAddCmd = &cobra.Command{
	Use:   "add <rom-file>",
	Short: "Record a loaded game",
	Long: fmt.Sprintf(`Move the game to the top of the recent list, adding it if new.
The list keeps the %d most recent entries.`, config.MaxRecentFiles),
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rom, err := filepath.Abs(args[0])
		if err != nil {
			return err
		}
		patch := recentPatch
		if patch != "" {
			if patch, err = filepath.Abs(patch); err != nil {
				return err
			}
		}

		ed := viewmodel.NewSectionEditor(loadSettings(cmd), config.RecentFilesSection)
		ed.Entity().AddRecentFile(rom, patch)
		if err := ed.Commit(nil); err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%s Added %s\n", okMark, rom)
		printSaveNote(w)
		return nil
	},
}

var recentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent games, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		w := cmd.OutOrStdout()
		items := loadSettings(cmd).RecentFiles.Items
		if len(items) == 0 {
			fmt.Fprintln(w, "No recent games")
			return nil
		}
		for i, item := range items {
			if item.PatchFile != "" {
				fmt.Fprintf(w, "%2d. %s %s\n", i+1, item.RomFile, faint("+ "+item.PatchFile))
				continue
			}
			fmt.Fprintf(w, "%2d. %s\n", i+1, item.RomFile)
		}
		return nil
	},
}

var recentClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the recent games list",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ed := viewmodel.NewSectionEditor(loadSettings(cmd), config.RecentFilesSection)
		ed.Entity().Clear()
		if err := ed.Commit(nil); err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%s Recent games cleared\n", okMark)
		printSaveNote(w)
		return nil
	},
}
