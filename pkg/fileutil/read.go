package fileutil

import (
	"io"
	"os"

	"github.com/thoreinstein/emucfg/internal/errors"
)

// MaxFileSize is the default read cap (4MB). Settings files carrying long
// recent-file and shortcut lists stay far below it.
const MaxFileSize = 4 * 1024 * 1024

// ErrFileTooLarge indicates that a file exceeded the read limit.
var ErrFileTooLarge = errors.New("file exceeds maximum size")

// ReadFileWithLimit reads a file up to limit bytes. A limit <= 0 uses
// MaxFileSize. Missing files keep os.ErrNotExist in the error chain.
func ReadFileWithLimit(path string, limit int64) ([]byte, error) {
	if limit <= 0 {
		limit = MaxFileSize
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening file")
	}
	defer f.Close()

	// Fail fast when the size is already known to be over the limit
	if info, err := f.Stat(); err == nil && info.Size() > limit {
		return nil, errors.Wrapf(ErrFileTooLarge, "%d > %d bytes", info.Size(), limit)
	}

	data, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return nil, errors.Wrap(err, "reading file")
	}

	if int64(len(data)) > limit {
		return nil, errors.Wrapf(ErrFileTooLarge, "more than %d bytes", limit)
	}

	return data, nil
}
