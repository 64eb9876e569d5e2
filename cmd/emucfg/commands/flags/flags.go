// Package flags provides shared launch option accessors for CLI commands.
// This package exists to avoid import cycles between the root command
// and noun subpackages (backup).
package flags

import (
	"github.com/thoreinstein/emucfg/internal/options"
	"github.com/thoreinstein/emucfg/internal/paths"
)

// resolved holds the options resolved by the root command.
var resolved *options.Options

// Options returns the launch options resolved for this invocation. Before
// the root command has resolved them it returns the built-in defaults.
func Options() *options.Options {
	if resolved == nil {
		return &options.Options{
			SettingsFile:    paths.SettingsFile(),
			BackupRetention: options.DefaultBackupRetention,
		}
	}
	return resolved
}

// SetOptions sets the resolved options.
// This is used by the root command after flag parsing, and by tests.
func SetOptions(o *options.Options) {
	resolved = o
}
