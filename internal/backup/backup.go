package backup

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/thoreinstein/emucfg/internal/errors"
	"github.com/thoreinstein/emucfg/internal/logging"
	"github.com/thoreinstein/emucfg/internal/paths"
	"github.com/thoreinstein/emucfg/pkg/fileutil"
)

// Version is set at build time via ldflags.
var Version = "dev"

const idLayout = "20060102T150405"

// Manager creates, restores and prunes settings file backups.
type Manager struct {
	rootDir        string
	retentionCount int
	now            func() time.Time
	logger         *slog.Logger

	mu   sync.Mutex
	once map[string]*sync.Once
}

// Option configures a Manager.
type Option func(*Manager)

// WithBackupDir sets the root backup directory.
func WithBackupDir(dir string) Option {
	return func(m *Manager) {
		m.rootDir = dir
	}
}

// WithRetentionCount sets how many backups Backup keeps. Zero keeps all.
func WithRetentionCount(n int) Option {
	return func(m *Manager) {
		if n >= 0 {
			m.retentionCount = n
		}
	}
}

// WithClock overrides the time source used for backup IDs.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewManager creates a new backup Manager with the given options.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		rootDir:        paths.BackupDir(),
		retentionCount: DefaultRetentionCount,
		now:            time.Now,
		logger:         logging.NewDiscard(),
		once:           make(map[string]*sync.Once),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Dir returns the root backup directory.
func (m *Manager) Dir() string {
	return m.rootDir
}

// Backup copies the settings file at path into a new timestamped backup
// and prunes backups beyond the retention count.
func (m *Manager) Backup(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(ErrNothingToBackUp, "%s does not exist", path)
		}
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, "stat %s", path)
	}

	createdAt := m.now().UTC()
	id, err := m.reserveID(createdAt)
	if err != nil {
		return nil, err
	}
	dir := m.backupPath(id)

	manifest := &Manifest{
		Version:     ManifestVersion,
		CreatedAt:   createdAt,
		SourcePath:  path,
		FileName:    filepath.Base(path),
		SHA256Hash:  hashBytes(data),
		Size:        int64(len(data)),
		Mode:        info.Mode().Perm(),
		ToolVersion: Version,
		ID:          id,
	}

	if err := fileutil.AtomicWriteFile(filepath.Join(dir, manifest.FileName), data, fileutil.DefaultFilePerm); err != nil {
		os.RemoveAll(dir)
		return nil, errors.Wrap(err, "copying settings file")
	}
	if err := fileutil.AtomicWriteJSON(filepath.Join(dir, manifestName), manifest); err != nil {
		os.RemoveAll(dir)
		return nil, errors.Wrap(err, "writing manifest")
	}
	m.logger.Info("settings backed up", "id", id, "path", path)

	if m.retentionCount > 0 {
		if _, err := m.Prune(m.retentionCount); err != nil {
			m.logger.Warn("pruning backups failed", "error", err)
		}
	}
	return manifest, nil
}

// reserveID creates the backup directory for t and returns its name.
// Backups taken within the same second get a numeric suffix.
func (m *Manager) reserveID(t time.Time) (string, error) {
	if err := paths.EnsureDir(m.rootDir, 0); err != nil {
		return "", errors.Wrap(err, "creating backup directory")
	}
	base := t.Format(idLayout)
	for i := 0; ; i++ {
		id := base
		if i > 0 {
			id = base + "-" + strconv.Itoa(i)
		}
		err := os.Mkdir(m.backupPath(id), paths.DefaultDirPerm)
		if err == nil {
			return id, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return "", errors.Wrap(err, "creating backup directory")
		}
	}
}

// Restore writes the backed up settings file back to its source path,
// after verifying its hash.
func (m *Manager) Restore(backupID string) (*Manifest, error) {
	manifest, data, err := m.verified(backupID)
	if err != nil {
		return nil, err
	}

	if err := paths.EnsureDir(filepath.Dir(manifest.SourcePath), 0); err != nil {
		return nil, errors.Wrapf(err, "creating directory for %s", manifest.SourcePath)
	}
	mode := manifest.Mode
	if mode == 0 {
		mode = fileutil.DefaultFilePerm
	}
	if err := fileutil.AtomicWriteFile(manifest.SourcePath, data, mode); err != nil {
		return nil, errors.Wrapf(err, "restoring %s", manifest.SourcePath)
	}
	m.logger.Info("settings restored", "id", backupID, "path", manifest.SourcePath)
	return manifest, nil
}

// Verify checks that the stored copy of a backup still matches the hash
// recorded in its manifest.
func (m *Manager) Verify(backupID string) (*Manifest, error) {
	manifest, _, err := m.verified(backupID)
	return manifest, err
}

func (m *Manager) verified(backupID string) (*Manifest, []byte, error) {
	manifest, err := m.Get(backupID)
	if err != nil {
		return nil, nil, err
	}

	data, err := os.ReadFile(filepath.Join(m.backupPath(backupID), manifest.FileName))
	if err != nil {
		return nil, nil, errors.Wrapf(err, "reading backup %s", backupID)
	}
	if hashBytes(data) != manifest.SHA256Hash {
		return nil, nil, errors.WithHint(errors.Wrapf(ErrBackupCorrupted, "backup %s hash mismatch", backupID),
			"Pick an older backup from: emucfg backup list")
	}
	return manifest, data, nil
}

// List returns all backups, newest first.
func (m *Manager) List() ([]Manifest, error) {
	entries, err := os.ReadDir(m.rootDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNoBackupsFound
		}
		return nil, errors.Wrap(err, "reading backup directory")
	}

	manifests := make([]Manifest, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		manifest, err := m.Get(entry.Name())
		if err != nil {
			m.logger.Debug("skipping invalid backup", "id", entry.Name(), "error", err)
			continue
		}
		manifests = append(manifests, *manifest)
	}

	if len(manifests) == 0 {
		return nil, ErrNoBackupsFound
	}

	slices.SortFunc(manifests, func(a, b Manifest) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return compareIDs(b.ID, a.ID)
	})
	return manifests, nil
}

// compareIDs orders IDs sharing a timestamp by their numeric suffix.
func compareIDs(a, b string) int {
	sa, sb := idSuffix(a), idSuffix(b)
	if sa != sb {
		return sa - sb
	}
	return strings.Compare(a, b)
}

func idSuffix(id string) int {
	_, suffix, ok := strings.Cut(id, "-")
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(suffix)
	if err != nil {
		return 0
	}
	return n
}

// Prune removes backups beyond the keep most recent ones and returns how
// many were removed.
func (m *Manager) Prune(keep int) (int, error) {
	if keep < 0 {
		return 0, errors.New("keep must be non-negative")
	}

	manifests, err := m.List()
	if err != nil {
		if errors.Is(err, ErrNoBackupsFound) {
			return 0, nil
		}
		return 0, err
	}

	removed := 0
	for i := keep; i < len(manifests); i++ {
		if err := os.RemoveAll(m.backupPath(manifests[i].ID)); err != nil {
			return removed, errors.Wrapf(err, "removing backup %s", manifests[i].ID)
		}
		removed++
	}
	if removed > 0 {
		m.logger.Debug("backups pruned", "removed", removed, "kept", keep)
	}
	return removed, nil
}

// Get returns the manifest for a specific backup.
func (m *Manager) Get(backupID string) (*Manifest, error) {
	if backupID == "" || strings.ContainsAny(backupID, `/\`) || backupID == "." || backupID == ".." {
		return nil, errors.Newf("invalid backup ID %q", backupID)
	}

	data, err := os.ReadFile(filepath.Join(m.backupPath(backupID), manifestName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(ErrNoBackupsFound, "backup %s not found", backupID)
		}
		return nil, errors.Wrap(err, "reading manifest")
	}

	var manifest Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, errors.Wrap(err, "parsing manifest")
	}

	manifest.ID = backupID
	return &manifest, nil
}

func (m *Manager) backupPath(backupID string) string {
	return filepath.Join(m.rootDir, backupID)
}

func hashBytes(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
