package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/emucfg/internal/cli/prompt"
	"github.com/thoreinstein/emucfg/internal/errors"
	"github.com/thoreinstein/emucfg/internal/options"
)

func withDevices(devices ...string) func(*options.Options) {
	return func(o *options.Options) { o.AudioDevices = devices }
}

// stubSelect replaces the device picker for one test.
func stubSelect(t *testing.T, fn func(current string, devices []string) (string, error)) {
	t.Helper()
	orig := selectDevice
	selectDevice = fn
	t.Cleanup(func() { selectDevice = orig })
}

func TestAudioDevices(t *testing.T) {
	t.Run("marks the selected device", func(t *testing.T) {
		env := newTestEnv(t, withDevices("Speakers", "Headphones"))
		env.write(t, `{"audio":{"audioDevice":"Headphones"}}`)

		require.NoError(t, runAudioDevices(env.cmd, env.out))
		assert.Contains(t, env.out.String(), "Speakers")
		assert.Contains(t, env.out.String(), "✓ Headphones")
	})

	t.Run("none reported", func(t *testing.T) {
		env := newTestEnv(t, nil)
		require.NoError(t, runAudioDevices(env.cmd, env.out))
		assert.Contains(t, env.out.String(), "No audio devices reported")
	})

	t.Run("design mode does not probe", func(t *testing.T) {
		env := newTestEnv(t, func(o *options.Options) {
			o.AudioDevices = []string{"Speakers"}
			o.DesignMode = true
		})

		require.NoError(t, runAudioDevices(env.cmd, env.out))
		assert.Contains(t, env.out.String(), "No audio devices reported")
		assert.NotContains(t, env.out.String(), "Speakers")
	})

	t.Run("listing does not save the repaired device", func(t *testing.T) {
		env := newTestEnv(t, withDevices("Speakers"))
		env.write(t, `{"audio":{"audioDevice":"Gone"}}`)

		require.NoError(t, runAudioDevices(env.cmd, env.out))
		assert.Equal(t, "Gone", env.load(t).Audio.AudioDevice)
	})
}

func TestAudioDevice_ByName(t *testing.T) {
	env := newTestEnv(t, withDevices("Speakers", "Headphones"))

	require.NoError(t, runAudioDevice(env.cmd, []string{"Headphones"}, env.out))
	assert.Contains(t, env.out.String(), "Audio device: Headphones")
	assert.Equal(t, "Headphones", env.load(t).Audio.AudioDevice)
}

func TestAudioDevice_Unknown(t *testing.T) {
	env := newTestEnv(t, withDevices("Speakers"))

	err := runAudioDevice(env.cmd, []string{"Nope"}, env.out)
	assert.ErrorIs(t, err, errors.ErrUnknownDevice)
	assert.Empty(t, env.read(t), "a failed edit is not saved")
}

func TestAudioDevice_Picker(t *testing.T) {
	t.Run("selection is committed", func(t *testing.T) {
		env := newTestEnv(t, withDevices("Speakers", "Headphones"))
		var gotCurrent string
		stubSelect(t, func(current string, devices []string) (string, error) {
			gotCurrent = current
			assert.Equal(t, []string{"Speakers", "Headphones"}, devices)
			return "Headphones", nil
		})

		require.NoError(t, runAudioDevice(env.cmd, nil, env.out))
		assert.Equal(t, "Speakers", gotCurrent, "the stale default is repaired before picking")
		assert.Equal(t, "Headphones", env.load(t).Audio.AudioDevice)
	})

	t.Run("cancel", func(t *testing.T) {
		env := newTestEnv(t, withDevices("Speakers"))
		stubSelect(t, func(string, []string) (string, error) {
			return "", prompt.ErrSelectionCancelled
		})

		require.NoError(t, runAudioDevice(env.cmd, nil, env.out))
		assert.Empty(t, env.read(t))
	})

	t.Run("no devices", func(t *testing.T) {
		env := newTestEnv(t, nil)
		stubSelect(t, func(string, []string) (string, error) {
			return "", prompt.ErrNoDevices
		})

		err := runAudioDevice(env.cmd, nil, env.out)
		var exitErr *errors.ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Contains(t, exitErr.Suggestion, "--audio-devices")
	})
}

func TestAudioVolume(t *testing.T) {
	t.Run("sets and saves", func(t *testing.T) {
		env := newTestEnv(t, nil)
		require.NoError(t, runAudioVolume(env.cmd, []string{"35"}, env.out))
		assert.Contains(t, env.out.String(), "Master volume: 35")
		assert.Equal(t, uint32(35), env.load(t).Audio.MasterVolume)
	})

	for _, arg := range []string{"101", "-1", "loud"} {
		t.Run("rejects "+arg, func(t *testing.T) {
			env := newTestEnv(t, nil)
			err := runAudioVolume(env.cmd, []string{arg}, env.out)
			var exitErr *errors.ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Empty(t, env.read(t))
		})
	}

	t.Run("design mode keeps the file untouched", func(t *testing.T) {
		env := newTestEnv(t, func(o *options.Options) { o.DesignMode = true })
		require.NoError(t, runAudioVolume(env.cmd, []string{"10"}, env.out))
		assert.Empty(t, env.read(t))
	})
}
