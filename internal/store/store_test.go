package store

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/emucfg/internal/errors"
)

func TestFileStore_WriteCreatesParent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "emucfg", "settings.json")
	s := NewFileStore()

	require.NoError(t, s.WriteAll(path, []byte("{}\n")))

	got, err := s.ReadAll(path)
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(got))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStore_ReadMissing(t *testing.T) {
	s := NewFileStore()
	_, err := s.ReadAll(filepath.Join(t.TempDir(), "settings.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist), "want fs.ErrNotExist, got %v", err)
}

func TestFileStore_WriteIntoReadOnlyDir(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores directory permissions")
	}
	dir := t.TempDir()
	require.NoError(t, os.Chmod(dir, 0o500))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o700) })

	err := NewFileStore().WriteAll(filepath.Join(dir, "settings.json"), []byte("{}"))
	assert.Error(t, err)
}

func TestMemory(t *testing.T) {
	m := NewMemory()

	_, err := m.ReadAll("a")
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	require.NoError(t, m.WriteAll("a", []byte("one")))
	got, err := m.ReadAll("a")
	require.NoError(t, err)
	assert.Equal(t, "one", string(got))
	assert.Equal(t, 1, m.Writes())
	assert.Equal(t, 2, m.Reads())

	m.Put("b", []byte("seeded"))
	assert.Equal(t, 1, m.Writes(), "Put must not count as a write")

	locked := errors.New("file is locked")
	m.FailWrites(locked)
	assert.ErrorIs(t, m.WriteAll("a", []byte("two")), locked)
	assert.Equal(t, 1, m.Writes())
	data, _ := m.Get("a")
	assert.Equal(t, "one", string(data))

	m.FailWrites(nil)
	require.NoError(t, m.WriteAll("a", []byte("two")))
	assert.Equal(t, 2, m.Writes())
	assert.Len(t, m.Snapshot(), 2)
}
