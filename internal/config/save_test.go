package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/emucfg/internal/errors"
	"github.com/thoreinstein/emucfg/internal/logging"
	"github.com/thoreinstein/emucfg/internal/store"
)

func TestSave_NoOpWhenUnchanged(t *testing.T) {
	mem := store.NewMemory()
	c := New(testPath, WithStore(mem))

	c.Save()
	c.Save()
	c.Close()

	assert.Equal(t, 1, mem.Writes())
}

func TestSave_NoOpAfterLoad(t *testing.T) {
	mem := store.NewMemory()
	New(testPath, WithStore(mem)).Save()
	require.Equal(t, 1, mem.Writes())

	c := Load(testPath, WithStore(mem))
	c.Save()

	assert.Equal(t, 1, mem.Writes())
}

func TestSave_WritesAfterChange(t *testing.T) {
	mem := store.NewMemory()
	c := New(testPath, WithStore(mem))
	c.Save()

	c.Audio.MasterVolume = 5
	c.Save()

	assert.Equal(t, 2, mem.Writes())
	data, ok := mem.Get(testPath)
	require.True(t, ok)
	assert.Contains(t, string(data), `"masterVolume": 5`)
}

func TestSave_Disabled(t *testing.T) {
	mem := store.NewMemory()
	c := New(testPath, WithStore(mem), WithSaveDisabled(true))
	c.Audio.MasterVolume = 1

	c.Save()
	c.Close()

	assert.Zero(t, mem.Writes())
	_, ok := mem.Get(testPath)
	assert.False(t, ok)
}

func TestSave_DesignMode(t *testing.T) {
	mem := store.NewMemory()
	c := New(testPath, WithStore(mem), WithDesignMode(true))

	c.Save()
	written, err := c.Serialize(testPath)

	require.NoError(t, err)
	assert.False(t, written)
	assert.Zero(t, mem.Writes())
	assert.True(t, c.DesignMode())
}

func TestSave_WriteFailureIsSwallowed(t *testing.T) {
	mem := store.NewMemory()
	mem.FailWrites(errors.New("settings file is locked"))
	c := New(testPath, WithStore(mem), WithLogger(logging.ForTest(t)))

	assert.NotPanics(t, c.Save)
	assert.Empty(t, c.fileData)

	// The snapshot was not updated, so the next save retries.
	mem.FailWrites(nil)
	c.Save()
	assert.Equal(t, 1, mem.Writes())
}

func TestSerialize_ReportsWriteError(t *testing.T) {
	mem := store.NewMemory()
	mem.FailWrites(errors.New("disk full"))
	c := New(testPath, WithStore(mem))

	written, err := c.Serialize(testPath)

	require.Error(t, err)
	assert.False(t, written)
	assert.Contains(t, err.Error(), "disk full")
}

func TestMarshal_Format(t *testing.T) {
	c := New(testPath)

	data, err := c.Marshal()

	require.NoError(t, err)
	assert.True(t, bytes.HasSuffix(data, []byte("}\n")))
	assert.True(t, bytes.HasPrefix(data, []byte("{\n  \"version\": \""+Version+"\"")))
	assert.Contains(t, string(data), `"defaultKeyMappings": "Xbox, ArrowKeys"`)
	assert.NotContains(t, string(data), "fileData")
}

func TestSave_FileStoreCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "emucfg", "settings.json")
	c := New(path)

	c.Save()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, c.fileData, string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
