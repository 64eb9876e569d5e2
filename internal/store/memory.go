package store

import (
	"io/fs"
	"maps"
	"sync"

	"github.com/thoreinstein/emucfg/internal/errors"
)

// Memory is an in-process Store. It counts writes and can be told to fail,
// which is how lock contention from a second instance is simulated.
type Memory struct {
	mu       sync.Mutex
	files    map[string][]byte
	writes   int
	reads    int
	writeErr error
	readErr  error
}

// NewMemory returns an empty Memory store.
func NewMemory() *Memory {
	return &Memory{files: make(map[string][]byte)}
}

// ReadAll implements Store.
func (m *Memory) ReadAll(path string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.reads++
	if m.readErr != nil {
		return nil, m.readErr
	}
	data, ok := m.files[path]
	if !ok {
		return nil, errors.Wrapf(fs.ErrNotExist, "reading %s", path)
	}
	return append([]byte(nil), data...), nil
}

// WriteAll implements Store.
func (m *Memory) WriteAll(path string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.writeErr != nil {
		return m.writeErr
	}
	m.writes++
	m.files[path] = append([]byte(nil), data...)
	return nil
}

// Put seeds path with data without counting a write.
func (m *Memory) Put(path string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[path] = append([]byte(nil), data...)
}

// Get returns the stored contents of path.
func (m *Memory) Get(path string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.files[path]
	return data, ok
}

// Writes returns the number of successful WriteAll calls.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

// Reads returns the number of ReadAll calls.
func (m *Memory) Reads() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reads
}

// FailWrites makes every following WriteAll return err. Pass nil to recover.
func (m *Memory) FailWrites(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writeErr = err
}

// FailReads makes every following ReadAll return err. Pass nil to recover.
func (m *Memory) FailReads(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.readErr = err
}

// Snapshot returns a copy of every stored file.
func (m *Memory) Snapshot() map[string][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return maps.Clone(m.files)
}
