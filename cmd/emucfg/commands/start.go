package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/emucfg/internal/config"
	"github.com/thoreinstein/emucfg/internal/errors"
)

var startStrict bool

func init() {
	startCmd.Flags().BoolVar(&startStrict, "strict", false, "exit non-zero if any section fails to apply")
	rootCmd.AddCommand(startCmd)
}

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Run the frontend startup sequence",
	Long: `Run the same sequence the frontend runs at launch:

  1. load the settings file (damaged sections fall back to defaults)
  2. remove obsolete settings
  3. initialize first-run defaults
  4. apply every section to the headless engine
  5. save on exit (skipped when nothing changed)

A section that fails to apply is reported and the remaining sections are
still applied.`,
	Example: `  # Start with two audio devices available
  emucfg start --audio-devices Speakers,Headphones

  # Fail if any section is rejected
  emucfg start --strict`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runStart(cmd, cmd.OutOrStdout())
	},
}

func runStart(cmd *cobra.Command, w io.Writer) error {
	cfg := loadSettings(cmd)
	defer cfg.Close()

	removed := cfg.RemoveObsoleteConfig()
	firstRun := cfg.FirstRun
	cfg.InitializeDefaults()

	core := newEngine(cmd)
	applyErr := cfg.ApplyConfig(core)

	failed := map[string]error{}
	var ae *config.ApplyError
	if errors.As(applyErr, &ae) {
		for _, f := range ae.Failures {
			failed[f.Section] = f.Err
		}
	}

	if quiet {
		return startResult(applyErr)
	}

	fmt.Fprintf(w, "Settings: %s\n", cfg.Path())
	if firstRun {
		fmt.Fprintf(w, "First run: installed %s key mappings\n", cfg.DefaultKeyMappings)
	}
	if removed > 0 {
		fmt.Fprintf(w, "Removed %d obsolete setting(s)\n", removed)
	}
	for _, key := range config.ApplyOrder() {
		if err, ok := failed[key]; ok {
			fmt.Fprintf(w, "  %s %-12s %v\n", failMark, key, err)
			continue
		}
		fmt.Fprintf(w, "  %s %s\n", okMark, key)
	}
	if note := saveNote(); note != "" {
		fmt.Fprintln(w, faint(note))
	}

	return startResult(applyErr)
}

func startResult(applyErr error) error {
	if applyErr != nil && startStrict {
		return errors.NewSystemError(applyErr, "Run with -v for details")
	}
	return nil
}
