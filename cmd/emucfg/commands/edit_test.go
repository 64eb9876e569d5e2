package commands

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/emucfg/internal/backup"
	"github.com/thoreinstein/emucfg/internal/errors"
	"github.com/thoreinstein/emucfg/internal/options"
)

// stubEditor replaces the editor with fn for one test.
func stubEditor(t *testing.T, fn func(path string) error) {
	t.Helper()
	orig := openEditor
	openEditor = fn
	t.Cleanup(func() { openEditor = orig })
}

func TestEdit_CreatesMissingFile(t *testing.T) {
	env := newTestEnv(t, nil)
	var opened string
	stubEditor(t, func(path string) error {
		opened = path
		return nil
	})

	require.NoError(t, runEdit(env.cmd, env.out))
	assert.Equal(t, env.opts.SettingsFile, opened)
	assert.NotEmpty(t, env.read(t))
	assert.Contains(t, env.out.String(), "settings decode cleanly")
}

func TestEdit_BacksUpAndReportsDamage(t *testing.T) {
	env := newTestEnv(t, nil)
	env.write(t, `{"audio": {"masterVolume": 10}}`)
	stubEditor(t, func(path string) error {
		return os.WriteFile(path, []byte(`{"audio": "oops"}`), 0o600)
	})

	require.NoError(t, runEdit(env.cmd, env.out))
	assert.Contains(t, env.out.String(), "audio")
	assert.Contains(t, env.out.String(), "emucfg backup restore")

	manifests, err := backup.NewManager().List()
	require.NoError(t, err)
	require.Len(t, manifests, 1)
}

func TestEdit_Errors(t *testing.T) {
	t.Run("saving disabled", func(t *testing.T) {
		env := newTestEnv(t, func(o *options.Options) { o.DesignMode = true })
		stubEditor(t, func(string) error {
			t.Fatal("editor must not open")
			return nil
		})
		assert.ErrorIs(t, runEdit(env.cmd, env.out), errors.ErrSaveDisabled)
	})

	t.Run("editor fails", func(t *testing.T) {
		env := newTestEnv(t, nil)
		stubEditor(t, func(string) error { return errors.New("exit status 1") })

		err := runEdit(env.cmd, env.out)
		var exitErr *errors.ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Contains(t, exitErr.Suggestion, "$EDITOR")
	})
}
