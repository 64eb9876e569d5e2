package backup

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/emucfg/internal/errors"
	"github.com/thoreinstein/emucfg/internal/logging"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestBackup_Collision(t *testing.T) {
	src := writeSettings(t, `{"version": "0.4.0"}`)
	clock := fixedClock(time.Date(2026, 1, 23, 10, 7, 12, 0, time.UTC))
	m := NewManager(WithBackupDir(t.TempDir()), WithClock(clock))

	// Two backups in the same second.
	manifest1, err := m.Backup(src)
	if err != nil {
		t.Fatalf("First backup failed: %v", err)
	}
	manifest2, err := m.Backup(src)
	if err != nil {
		t.Fatalf("Second backup failed: %v", err)
	}

	if manifest1.ID == manifest2.ID {
		t.Errorf("Backup IDs collided: %s", manifest1.ID)
	}
	assert.Equal(t, "20260123T100712", manifest1.ID)
	assert.Equal(t, "20260123T100712-1", manifest2.ID)

	list, err := m.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, manifest2.ID, list[0].ID, "newest first")
}

func TestBackup_Restore(t *testing.T) {
	src := writeSettings(t, `{"audio": {"masterVolume": 20}}`)
	m := NewManager(WithBackupDir(t.TempDir()), WithLogger(logging.ForTest(t)))

	manifest, err := m.Backup(src)
	require.NoError(t, err)
	assert.Equal(t, src, manifest.SourcePath)
	assert.Equal(t, "settings.json", manifest.FileName)
	assert.Equal(t, os.FileMode(0o600), manifest.Mode)

	require.NoError(t, os.WriteFile(src, []byte(`{}`), 0o600))

	restored, err := m.Restore(manifest.ID)
	require.NoError(t, err)
	assert.Equal(t, manifest.SHA256Hash, restored.SHA256Hash)

	data, err := os.ReadFile(src)
	require.NoError(t, err)
	assert.Equal(t, `{"audio": {"masterVolume": 20}}`, string(data))
}

func TestRestore_Corrupted(t *testing.T) {
	src := writeSettings(t, `{"a": 1}`)
	dir := t.TempDir()
	m := NewManager(WithBackupDir(dir))
	manifest, err := m.Backup(src)
	require.NoError(t, err)

	copyPath := filepath.Join(dir, manifest.ID, manifest.FileName)
	require.NoError(t, os.WriteFile(copyPath, []byte(`{"a": 2}`), 0o600))

	_, err = m.Verify(manifest.ID)
	assert.ErrorIs(t, err, ErrBackupCorrupted)
	assert.Contains(t, errors.Hints(err), "Pick an older backup from: emucfg backup list")

	_, err = m.Restore(manifest.ID)
	assert.ErrorIs(t, err, ErrBackupCorrupted)

	data, err := os.ReadFile(src)
	require.NoError(t, err)
	assert.Equal(t, `{"a": 1}`, string(data), "a corrupted backup is never written back")
}

func TestVerify(t *testing.T) {
	src := writeSettings(t, `{"a": 1}`)
	m := NewManager(WithBackupDir(t.TempDir()))
	manifest, err := m.Backup(src)
	require.NoError(t, err)

	got, err := m.Verify(manifest.ID)
	require.NoError(t, err)
	assert.Equal(t, manifest.SHA256Hash, got.SHA256Hash)
}

func TestBackup_MissingSource(t *testing.T) {
	m := NewManager(WithBackupDir(t.TempDir()))

	_, err := m.Backup(filepath.Join(t.TempDir(), "missing.json"))

	assert.ErrorIs(t, err, ErrNothingToBackUp)
}

func TestList_Empty(t *testing.T) {
	m := NewManager(WithBackupDir(filepath.Join(t.TempDir(), "none")))

	_, err := m.List()

	assert.ErrorIs(t, err, ErrNoBackupsFound)
}

func TestGet_RejectsTraversal(t *testing.T) {
	m := NewManager(WithBackupDir(t.TempDir()))

	for _, id := range []string{"", ".", "..", "../etc", `a\b`} {
		_, err := m.Get(id)
		assert.Error(t, err, id)
	}
}

func TestPrune(t *testing.T) {
	src := writeSettings(t, `{}`)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tick := 0
	clock := func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}
	m := NewManager(WithBackupDir(t.TempDir()), WithClock(clock), WithRetentionCount(0))

	for range 4 {
		_, err := m.Backup(src)
		require.NoError(t, err)
	}

	removed, err := m.Prune(1)
	require.NoError(t, err)
	assert.Equal(t, 3, removed)

	list, err := m.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "20260301T120400", list[0].ID)

	_, err = m.Prune(-1)
	assert.Error(t, err)
}

func TestBackup_AppliesRetention(t *testing.T) {
	src := writeSettings(t, `{}`)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tick := 0
	clock := func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}
	m := NewManager(WithBackupDir(t.TempDir()), WithClock(clock), WithRetentionCount(2))

	for range 5 {
		_, err := m.Backup(src)
		require.NoError(t, err)
	}

	list, err := m.List()
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestEnsureBackedUp_Once(t *testing.T) {
	src := writeSettings(t, `{}`)
	m := NewManager(WithBackupDir(t.TempDir()))

	require.NoError(t, m.EnsureBackedUp(src))
	require.NoError(t, m.EnsureBackedUp(src))

	list, err := m.List()
	require.NoError(t, err)
	assert.Len(t, list, 1)

	m.ResetBackupState()
	require.NoError(t, m.EnsureBackedUp(src))
	list, err = m.List()
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestEnsureBackedUp_MissingFileIsNotAnError(t *testing.T) {
	m := NewManager(WithBackupDir(t.TempDir()))
	path := filepath.Join(t.TempDir(), "settings.json")

	require.NoError(t, m.EnsureBackedUp(path))

	// Created later, the file is backed up on the next call.
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o600))
	require.NoError(t, m.EnsureBackedUp(path))
	list, err := m.List()
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
