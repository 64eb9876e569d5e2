package backup

import (
	"sync"

	"github.com/thoreinstein/emucfg/internal/errors"
)

// EnsureBackedUp backs up the settings file at path before a destructive
// change. Only one backup per path is taken for the lifetime of the
// Manager, however often it is called.
//
// Returns nil if:
//   - A backup was just created successfully
//   - A backup was already created by this Manager (no-op)
//   - The file does not exist (nothing to back up)
//
// A failed or skipped backup is not remembered, so a later call retries.
func (m *Manager) EnsureBackedUp(path string) error {
	m.mu.Lock()
	once, exists := m.once[path]
	if !exists {
		once = &sync.Once{}
		m.once[path] = once
	}
	m.mu.Unlock()

	var backupErr error
	once.Do(func() {
		_, backupErr = m.Backup(path)
		if backupErr != nil {
			m.mu.Lock()
			delete(m.once, path)
			m.mu.Unlock()
		}
	})

	if backupErr != nil && !errors.Is(backupErr, ErrNothingToBackUp) {
		return errors.Wrapf(backupErr, "backing up %s", path)
	}
	return nil
}

// ResetBackupState forgets which paths were backed up.
func (m *Manager) ResetBackupState() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.once = make(map[string]*sync.Once)
}
