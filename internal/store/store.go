// Package store provides the persistence primitive behind the settings file:
// read the whole file, or replace it atomically.
package store

import (
	"os"
	"path/filepath"

	"github.com/thoreinstein/emucfg/internal/errors"
	"github.com/thoreinstein/emucfg/internal/paths"
	"github.com/thoreinstein/emucfg/pkg/fileutil"
)

// Store reads and writes whole settings documents.
type Store interface {
	// ReadAll returns the full contents of path.
	ReadAll(path string) ([]byte, error)
	// WriteAll atomically replaces the contents of path.
	WriteAll(path string, data []byte) error
}

// FileStore is the on-disk Store.
type FileStore struct {
	perm os.FileMode
}

// NewFileStore returns a FileStore writing files with mode 0600.
func NewFileStore() *FileStore {
	return &FileStore{perm: fileutil.DefaultFilePerm}
}

// ReadAll implements Store.
func (s *FileStore) ReadAll(path string) ([]byte, error) {
	data, err := fileutil.ReadFileWithLimit(path, 0)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return data, nil
}

// WriteAll implements Store. The parent directory is created if needed.
func (s *FileStore) WriteAll(path string, data []byte) error {
	if err := paths.EnsureDir(filepath.Dir(path), 0); err != nil {
		return errors.Wrap(err, "creating settings directory")
	}
	if err := fileutil.AtomicWriteFile(path, data, s.perm); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	return nil
}
