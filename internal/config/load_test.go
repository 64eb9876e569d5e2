package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/emucfg/internal/errors"
	"github.com/thoreinstein/emucfg/internal/logging"
	"github.com/thoreinstein/emucfg/internal/store"
)

const testPath = "/settings/settings.json"

// assertSameSettings compares two aggregates by their on-disk form.
func assertSameSettings(t *testing.T, want, got *Configuration) {
	t.Helper()
	w, err := want.Marshal()
	require.NoError(t, err)
	g, err := got.Marshal()
	require.NoError(t, err)
	assert.JSONEq(t, string(w), string(g))
}

func TestLoad_DefaultFallback(t *testing.T) {
	tests := []struct {
		name string
		seed func(m *store.Memory)
	}{
		{"missing file", func(*store.Memory) {}},
		{"empty file", func(m *store.Memory) { m.Put(testPath, nil) }},
		{"whitespace", func(m *store.Memory) { m.Put(testPath, []byte("  \n\t")) }},
		{"invalid json", func(m *store.Memory) { m.Put(testPath, []byte(`{"audio": {`)) }},
		{"not an object", func(m *store.Memory) { m.Put(testPath, []byte(`[1, 2, 3]`)) }},
		{"read error", func(m *store.Memory) { m.FailReads(errors.New("permission denied")) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem := store.NewMemory()
			tt.seed(mem)

			c := Load(testPath, WithStore(mem), WithLogger(logging.ForTest(t)))

			require.NotNil(t, c)
			assertSameSettings(t, New(testPath), c)
			assert.True(t, c.FirstRun)
			assert.Equal(t, KeyMappingXbox|KeyMappingArrowKeys, c.DefaultKeyMappings)
			assert.Empty(t, c.fileData)
		})
	}
}

func TestLoad_PartialSectionFallsBack(t *testing.T) {
	mem := store.NewMemory()
	mem.Put(testPath, []byte(`{
  "audio": {"masterVolume": 35, "audioDevice": "USB Headset"},
  "video": "not an object",
  "nes": null,
  "firstRun": false,
  "defaultKeyMappings": "Ps4, WasdKeys"
}`))

	c := Load(testPath, WithStore(mem), WithLogger(logging.ForTest(t)))

	assert.Equal(t, uint32(35), c.Audio.MasterVolume)
	assert.Equal(t, "USB Headset", c.Audio.AudioDevice)
	// Keys absent from a present section keep their defaults.
	assert.Equal(t, uint32(48000), c.Audio.SampleRate)

	assert.Equal(t, NewVideoConfig(), c.Video)
	assert.Equal(t, NewNesConfig(), c.Nes)
	assert.Equal(t, NewSnesConfig(), c.Snes)
	assert.False(t, c.FirstRun)
	assert.Equal(t, KeyMappingPs4|KeyMappingWasdKeys, c.DefaultKeyMappings)
}

func TestLoad_InvalidScalarKeepsDefault(t *testing.T) {
	mem := store.NewMemory()
	mem.Put(testPath, []byte(`{"firstRun": "yes", "defaultKeyMappings": "Gamecube"}`))

	c := Load(testPath, WithStore(mem))

	assert.True(t, c.FirstRun)
	assert.Equal(t, KeyMappingXbox|KeyMappingArrowKeys, c.DefaultKeyMappings)
}

func TestLoad_NumericKeyMappings(t *testing.T) {
	mem := store.NewMemory()
	mem.Put(testPath, []byte(`{"defaultKeyMappings": 6}`))

	c := Load(testPath, WithStore(mem))

	assert.Equal(t, KeyMappingPs4|KeyMappingWasdKeys, c.DefaultKeyMappings)
}

func TestLoad_RecordsFileData(t *testing.T) {
	mem := store.NewMemory()
	text := `{"audio": {"masterVolume": 10}}`
	mem.Put(testPath, []byte(text))

	c := Load(testPath, WithStore(mem))

	assert.Equal(t, text, c.fileData)
	assert.Equal(t, testPath, c.Path())
}

func TestLoad_FileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"netplay": {"port": 9000}}`), 0o600))

	c := Load(path)

	assert.Equal(t, uint16(9000), c.Netplay.Port)
	assert.Equal(t, NewAudioConfig(), c.Audio)
}

func TestRoundTrip(t *testing.T) {
	mem := store.NewMemory()
	c := New(testPath, WithStore(mem))
	c.RemoveObsoleteConfig()
	c.InitializeDefaults()
	c.Audio.MasterVolume = 42
	c.Audio.AudioDevice = "Speakers"
	c.Video.Brightness = 0.25
	c.RecentFiles.AddRecentFile("/roms/zelda.sfc", "")
	c.MainWindow.Window.Width = 1280
	c.Save()
	require.Equal(t, 1, mem.Writes())

	loaded := Load(testPath, WithStore(mem))

	assertSameSettings(t, c, loaded)
	assert.False(t, loaded.FirstRun)
	assert.True(t, loaded.Snes.Port1.HasMappings())
	assert.Len(t, loaded.Preferences.ShortcutKeys, int(LastValidShortcut))
}

func TestSectionKeys(t *testing.T) {
	keys := SectionKeys()

	assert.Len(t, keys, 19)
	assert.Equal(t, "video", keys[0])
	assert.Contains(t, keys, "pcEngine")
	assert.True(t, HasSection("hdPackBuilder"))
	assert.False(t, HasSection("firstRun"))
}

func TestSectionValue(t *testing.T) {
	c := New(testPath)

	v, err := c.SectionValue("audio")
	require.NoError(t, err)
	assert.Same(t, c.Audio, v)

	_, err = c.SectionValue("gamecube")
	assert.ErrorIs(t, err, errors.ErrUnknownSection)
}

func TestInspect(t *testing.T) {
	t.Run("reports ignored fields", func(t *testing.T) {
		cfg, issues, err := Inspect([]byte(`{"audio": [], "firstRun": "yes", "nes": {"region": "Pal"}}`))
		require.NoError(t, err)
		require.Len(t, issues, 2)

		var fields []string
		for _, issue := range issues {
			fields = append(fields, issue.Field)
			assert.Error(t, issue.Err)
		}
		assert.ElementsMatch(t, []string{"audio", "firstRun"}, fields)
		assert.Equal(t, NewAudioConfig(), cfg.Audio)
		assert.Equal(t, RegionPal, cfg.Nes.Region)
	})

	t.Run("clean document", func(t *testing.T) {
		data, err := New(testPath).Marshal()
		require.NoError(t, err)
		_, issues, err := Inspect(data)
		require.NoError(t, err)
		assert.Empty(t, issues)
	})

	t.Run("whole document rejected", func(t *testing.T) {
		_, _, err := Inspect([]byte(`[1, 2]`))
		assert.ErrorIs(t, err, errors.ErrInvalidConfig)
	})
}
