package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/emucfg/cmd/emucfg/commands/flags"
	"github.com/thoreinstein/emucfg/internal/config"
	"github.com/thoreinstein/emucfg/internal/logging"
	"github.com/thoreinstein/emucfg/internal/options"
	"github.com/thoreinstein/emucfg/internal/paths"
)

// testEnv is a settings file and backup directory private to one test.
type testEnv struct {
	opts *options.Options
	out  *bytes.Buffer
	cmd  *cobra.Command
}

// newTestEnv resolves launch options against a temp dir. mutate may adjust
// them before they are installed.
func newTestEnv(t *testing.T, mutate func(*options.Options)) *testEnv {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(paths.ConfigDirEnv, dir)
	t.Setenv(paths.BackupDirEnv, filepath.Join(dir, "backups"))

	o := &options.Options{
		SettingsFile:    filepath.Join(dir, paths.SettingsFileName),
		BackupRetention: options.DefaultBackupRetention,
	}
	if mutate != nil {
		mutate(o)
	}
	flags.SetOptions(o)
	t.Cleanup(func() { flags.SetOptions(nil) })

	out := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetContext(logging.NewContext(t.Context(), logging.ForTest(t)))
	cmd.SetOut(out)
	return &testEnv{opts: o, out: out, cmd: cmd}
}

// write stores content as the settings file.
func (e *testEnv) write(t *testing.T, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(e.opts.SettingsFile, []byte(content), 0o600))
}

// read returns the settings file, or "" when it does not exist.
func (e *testEnv) read(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(e.opts.SettingsFile)
	if os.IsNotExist(err) {
		return ""
	}
	require.NoError(t, err)
	return string(data)
}

// load reads the settings file the way the commands do.
func (e *testEnv) load(t *testing.T) *config.Configuration {
	t.Helper()
	return config.Load(e.opts.SettingsFile, config.WithLogger(logging.ForTest(t)))
}
