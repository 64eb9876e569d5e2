package commands

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/emucfg/cmd/emucfg/commands/flags"
	"github.com/thoreinstein/emucfg/internal/config"
	"github.com/thoreinstein/emucfg/internal/engine"
	"github.com/thoreinstein/emucfg/internal/errors"
	"github.com/thoreinstein/emucfg/internal/logging"
)

// Status markers for terminal output. fatih/color disables them when
// stdout is not a terminal.
var (
	okMark   = color.New(color.FgGreen).Sprint("✓")
	failMark = color.New(color.FgRed).Sprint("✗")
	warn     = color.New(color.FgYellow).SprintFunc()
	faint    = color.New(color.Faint).SprintFunc()
)

// loadSettings loads the settings file named by the resolved options.
func loadSettings(cmd *cobra.Command, extra ...config.Option) *config.Configuration {
	o := flags.Options()
	opts := []config.Option{
		config.WithLogger(logging.FromContext(cmd.Context())),
		config.WithSaveDisabled(o.NoSaveSettings),
		config.WithDesignMode(o.DesignMode),
	}
	return config.Load(o.SettingsFile, append(opts, extra...)...)
}

// newEngine returns the headless core configured from the options.
func newEngine(cmd *cobra.Command) *engine.Loopback {
	return engine.New(
		engine.WithLogger(logging.FromContext(cmd.Context())),
		engine.WithAudioDevices(flags.Options().AudioDevices...),
	)
}

// saveNote explains why a command's changes were not written, or returns "".
func saveNote() string {
	o := flags.Options()
	switch {
	case o.DesignMode:
		return "design mode: settings not saved"
	case o.NoSaveSettings:
		return "saving disabled: settings not saved"
	}
	return ""
}

// printSaveNote follows a success line with saveNote, when there is one.
func printSaveNote(w io.Writer) {
	if note := saveNote(); note != "" {
		fmt.Fprintln(w, warn(note))
	}
}

// committer is an editing session.
type committer interface {
	Commit(core config.Core) error
}

// commitEdit commits session against core. Sections the engine rejects
// are logged; the edit itself is already saved at that point.
func commitEdit(cmd *cobra.Command, session committer, core config.Core) error {
	err := session.Commit(core)
	var applyErr *config.ApplyError
	if errors.As(err, &applyErr) {
		logging.FromContext(cmd.Context()).Warn("engine rejected sections", "sections", applyErr.Sections(), "error", err)
		return nil
	}
	return err
}
