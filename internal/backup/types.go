package backup

import (
	"io/fs"
	"time"

	"github.com/thoreinstein/emucfg/internal/errors"
)

// Manifest format version for forward compatibility.
const ManifestVersion = 1

// DefaultRetentionCount is the default number of settings backups to keep.
const DefaultRetentionCount = 5

const manifestName = "manifest.json"

// Sentinel errors for backup operations.
var (
	// ErrNoBackupsFound indicates no backups exist.
	ErrNoBackupsFound = errors.New("no backups found")

	// ErrBackupCorrupted indicates the stored copy no longer matches the
	// hash recorded in its manifest.
	ErrBackupCorrupted = errors.New("backup corrupted")

	// ErrNothingToBackUp indicates the settings file does not exist yet.
	ErrNothingToBackUp = errors.New("nothing to back up")
)

// Manifest describes one backup. It is stored as manifest.json next to
// the copied settings file.
type Manifest struct {
	// Version is the manifest format version.
	Version int `json:"version"`

	// CreatedAt is when the backup was taken.
	CreatedAt time.Time `json:"created_at"`

	// SourcePath is where the settings file lived.
	SourcePath string `json:"source_path"`

	// FileName is the name of the copy inside the backup directory.
	FileName string `json:"file_name"`

	// SHA256Hash is the hex-encoded hash of the copied contents.
	SHA256Hash string `json:"sha256_hash"`

	// Size is the copied length in bytes.
	Size int64 `json:"size"`

	// Mode is the source file's permission bits.
	Mode fs.FileMode `json:"mode"`

	// ToolVersion is the emucfg version that took the backup.
	ToolVersion string `json:"tool_version"`

	// ID is the backup directory name, e.g. 20260123T100712.
	// It is populated when loading and not stored in JSON.
	ID string `json:"-"`
}
