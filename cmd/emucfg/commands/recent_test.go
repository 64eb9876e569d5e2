package commands

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/emucfg/internal/options"
)

func TestRecent(t *testing.T) {
	env := newTestEnv(t, nil)
	dir := t.TempDir()
	mario := filepath.Join(dir, "mario.sfc")
	zelda := filepath.Join(dir, "zelda.sfc")

	require.NoError(t, recentAddCmd.RunE(env.cmd, []string{mario}))
	require.NoError(t, recentAddCmd.RunE(env.cmd, []string{zelda}))
	require.NoError(t, recentAddCmd.RunE(env.cmd, []string{mario}))

	items := env.load(t).RecentFiles.Items
	require.Len(t, items, 2)
	assert.Equal(t, mario, items[0].RomFile, "re-adding moves the entry to the front")
	assert.Equal(t, zelda, items[1].RomFile)

	env.out.Reset()
	require.NoError(t, recentListCmd.RunE(env.cmd, nil))
	assert.Contains(t, env.out.String(), " 1. "+mario)
	assert.Contains(t, env.out.String(), " 2. "+zelda)

	env.out.Reset()
	require.NoError(t, recentClearCmd.RunE(env.cmd, nil))
	assert.Empty(t, env.load(t).RecentFiles.Items)

	env.out.Reset()
	require.NoError(t, recentListCmd.RunE(env.cmd, nil))
	assert.Contains(t, env.out.String(), "No recent games")
}

func TestRecentAdd_Patch(t *testing.T) {
	env := newTestEnv(t, nil)
	dir := t.TempDir()
	rom := filepath.Join(dir, "game.nes")
	patch := filepath.Join(dir, "fix.ips")

	recentPatch = patch
	t.Cleanup(func() { recentPatch = "" })

	require.NoError(t, recentAddCmd.RunE(env.cmd, []string{rom}))
	items := env.load(t).RecentFiles.Items
	require.Len(t, items, 1)
	assert.Equal(t, patch, items[0].PatchFile)
}

func TestRecent_SaveDisabledIsReported(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*options.Options)
		note   string
	}{
		{"no-save-settings", func(o *options.Options) { o.NoSaveSettings = true }, "saving disabled: settings not saved"},
		{"design mode", func(o *options.Options) { o.DesignMode = true }, "design mode: settings not saved"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, tt.mutate)
			rom := filepath.Join(t.TempDir(), "mario.sfc")

			require.NoError(t, recentAddCmd.RunE(env.cmd, []string{rom}))
			assert.Contains(t, env.out.String(), "Added "+rom)
			assert.Contains(t, env.out.String(), tt.note)

			env.out.Reset()
			require.NoError(t, recentClearCmd.RunE(env.cmd, nil))
			assert.Contains(t, env.out.String(), "Recent games cleared")
			assert.Contains(t, env.out.String(), tt.note)

			assert.Empty(t, env.read(t), "nothing was written")
		})
	}
}

func TestRecentAdd_SavedHasNoNote(t *testing.T) {
	env := newTestEnv(t, nil)

	require.NoError(t, recentAddCmd.RunE(env.cmd, []string{filepath.Join(t.TempDir(), "zelda.sfc")}))

	assert.NotContains(t, env.out.String(), "not saved")
}
