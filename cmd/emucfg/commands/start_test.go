package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/emucfg/internal/config"
	"github.com/thoreinstein/emucfg/internal/errors"
	"github.com/thoreinstein/emucfg/internal/options"
)

func TestStart_FirstRun(t *testing.T) {
	env := newTestEnv(t, nil)

	require.NoError(t, runStart(env.cmd, env.out))

	out := env.out.String()
	assert.Contains(t, out, "First run: installed Xbox, ArrowKeys key mappings")
	for _, key := range config.ApplyOrder() {
		assert.Contains(t, out, key)
	}
	assert.NotContains(t, out, "✗")

	cfg := env.load(t)
	assert.False(t, cfg.FirstRun)
	assert.NotEmpty(t, cfg.Preferences.ShortcutKeys)
	assert.True(t, cfg.Snes.Port1.HasMappings(), "first run fills the controller mappings")
}

func TestStart_SecondRunLeavesFileUntouched(t *testing.T) {
	env := newTestEnv(t, nil)
	require.NoError(t, runStart(env.cmd, env.out))
	first := env.read(t)

	env.out.Reset()
	require.NoError(t, runStart(env.cmd, env.out))
	assert.NotContains(t, env.out.String(), "First run")
	assert.Equal(t, first, env.read(t))
}

func TestStart_RemovesObsoleteShortcuts(t *testing.T) {
	env := newTestEnv(t, nil)
	env.write(t, `{"firstRun":false,"preferences":{"shortcutKeys":[{"shortcut":-1},{"shortcut":100000}]}}`)

	require.NoError(t, runStart(env.cmd, env.out))
	assert.Contains(t, env.out.String(), "Removed 2 obsolete setting(s)")

	for _, sk := range env.load(t).Preferences.ShortcutKeys {
		assert.True(t, sk.Shortcut.IsValid())
	}
}

func TestStart_FailingSection(t *testing.T) {
	settings := `{"firstRun":false,"audio":{"audioDevice":"Gone"}}`

	t.Run("reported, not fatal", func(t *testing.T) {
		env := newTestEnv(t, func(o *options.Options) { o.AudioDevices = []string{"Speakers"} })
		env.write(t, settings)

		require.NoError(t, runStart(env.cmd, env.out))
		assert.Contains(t, env.out.String(), "✗")
		assert.Contains(t, env.out.String(), "debug", "sections after the failure still apply")
	})

	t.Run("strict", func(t *testing.T) {
		env := newTestEnv(t, func(o *options.Options) { o.AudioDevices = []string{"Speakers"} })
		env.write(t, settings)
		startStrict = true
		t.Cleanup(func() { startStrict = false })

		err := runStart(env.cmd, env.out)
		var exitErr *errors.ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, errors.ExitSystem, exitErr.Code)
		assert.ErrorIs(t, err, errors.ErrUnknownDevice)
	})
}

func TestStart_SaveDisabled(t *testing.T) {
	for _, tt := range []struct {
		name   string
		mutate func(*options.Options)
		note   string
	}{
		{"no-save-settings", func(o *options.Options) { o.NoSaveSettings = true }, "saving disabled"},
		{"design-mode", func(o *options.Options) { o.DesignMode = true }, "design mode"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, tt.mutate)
			require.NoError(t, runStart(env.cmd, env.out))
			assert.Contains(t, env.out.String(), tt.note)
			assert.Empty(t, env.read(t), "settings file must not be written")
		})
	}
}
