// Package commands implements the CLI commands for emucfg.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/thoreinstein/emucfg/cmd"
	"github.com/thoreinstein/emucfg/cmd/emucfg/commands/backup"
	"github.com/thoreinstein/emucfg/cmd/emucfg/commands/flags"
	"github.com/thoreinstein/emucfg/internal/errors"
	"github.com/thoreinstein/emucfg/internal/logging"
	"github.com/thoreinstein/emucfg/internal/options"
)

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// optionsFile holds the path passed to --options.
var optionsFile string

func init() {
	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	pf.BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	pf.StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	pf.StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")
	pf.StringVar(&optionsFile, "options", "",
		"options file (default: emucfg.yaml in the config directory)")

	pf.String("config", "", "settings file path")
	pf.Bool("no-save-settings", false, "never write the settings file")
	pf.Bool("design-mode", false, "preview mode: skip device probing and saving")
	pf.StringSlice("audio-devices", nil, "audio output devices reported by the engine")
	pf.Int("backup-retention", options.DefaultBackupRetention, "number of settings backups to keep")

	rootCmd.AddCommand(backup.Cmd)

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("emucfg version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

var rootCmd = &cobra.Command{
	Use:   "emucfg",
	Short: "Manage emulator frontend settings",
	Long: `emucfg loads, repairs, edits and applies the settings of the emulator
frontend.

Settings live in a single JSON file. Sections that are missing or damaged
fall back to their defaults without affecting the rest of the file.
Unchanged settings are never rewritten.`,
	Example: `  # Run the startup sequence against the headless engine
  emucfg start

  # Print the audio section as YAML
  emucfg show audio --format yaml

  # Pick an audio device
  emucfg audio device --interactive --audio-devices Speakers,Headphones

  See Also: emucfg show, emucfg backup`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		// Initialize logging first
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return resolveOptions(cmd)
	},
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// setupLogging installs the process logger described by the verbosity,
// --log-format and --log-file flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.New("cannot use --quiet and --verbose together"), "Pass only one of -q or -v")
	}

	format, err := logging.ParseFormat(logFormat)
	if err != nil {
		return errors.NewUserError(err, "Use --log-format text or --log-format json")
	}

	cfg := logging.Config{
		Level:  logging.LevelFromVerbosity(logging.Verbosity(verbosity, os.LookupEnv)),
		Format: format,
		Output: cmd.ErrOrStderr(),
	}
	if quiet {
		cfg.Level = slog.LevelError
	}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(err, "failed to open log file")
		}
		cfg.File = f
	}

	logger := logging.New(cfg)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// resolveOptions merges defaults, the options file, environment and flags.
func resolveOptions(cmd *cobra.Command) error {
	v := viper.New()
	options.Init(v)
	if err := options.BindFlags(v, cmd.Flags()); err != nil {
		return errors.NewSystemError(err, "")
	}

	opts, err := options.Load(v, optionsFile)
	if err != nil {
		return errors.NewUserError(err, "Check the options file and EMUCFG_* environment variables")
	}
	flags.SetOptions(opts)

	logging.FromContext(cmd.Context()).Debug("options resolved",
		"settings", opts.SettingsFile,
		"no_save", opts.NoSaveSettings,
		"design_mode", opts.DesignMode,
		"devices", len(opts.AudioDevices))
	return nil
}

// Execute runs the root command.
func Execute() error {
	return errors.Wrap(rootCmd.Execute(), "executing root command")
}
