// Package fileutil holds the file primitives the settings and backup
// stores share: atomic replacement, the on-disk JSON encoding and capped
// reads.
package fileutil

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/thoreinstein/emucfg/internal/errors"
)

// DefaultFilePerm is the mode of settings files, backup copies and
// manifests. Settings can hold file paths the user would rather keep private.
const DefaultFilePerm = 0o600

// AtomicWriteFile replaces path with data. The bytes go to a hidden temp
// file next to path (".<name>.*.tmp"), which is synced and renamed over the
// target, so a crash leaves either the old file or the new one. The parent
// directory must exist.
func AtomicWriteFile(path string, data []byte, perm os.FileMode) error {
	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+name+".*.tmp")
	if err != nil {
		return errors.Wrapf(err, "creating temp file for %s", name)
	}
	tmpName := tmp.Name()
	renamed := false
	defer func() {
		if !renamed {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return errors.Wrapf(err, "writing %s", tmpName)
	}
	if err := tmp.Chmod(perm); err != nil {
		return errors.Wrapf(err, "setting mode on %s", tmpName)
	}
	if err := tmp.Sync(); err != nil {
		return errors.Wrapf(err, "syncing %s", tmpName)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "closing %s", tmpName)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return errors.Wrapf(err, "replacing %s", path)
	}
	renamed = true

	syncDir(dir)
	return nil
}

// syncDir flushes the directory entry of a rename. Not every platform can
// open a directory for sync; failures are ignored.
func syncDir(dir string) {
	d, err := os.Open(dir)
	if err != nil {
		return
	}
	_ = d.Sync()
	_ = d.Close()
}

// MarshalJSON is the on-disk encoding: 2-space indent, a trailing newline,
// and no HTML escaping so paths and key names stay readable.
func MarshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, errors.Wrap(err, "marshaling JSON")
	}
	return buf.Bytes(), nil
}

// AtomicWriteJSON writes v with MarshalJSON to path with DefaultFilePerm.
func AtomicWriteJSON(path string, v any) error {
	data, err := MarshalJSON(v)
	if err != nil {
		return err
	}
	return AtomicWriteFile(path, data, DefaultFilePerm)
}
