package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
)

// AppName names the per-user directories emucfg owns.
const AppName = "emucfg"

// SettingsFileName is the name of the persisted configuration aggregate.
const SettingsFileName = "settings.json"

// ConfigDirEnv overrides the application config directory when set.
const ConfigDirEnv = "EMUCFG_CONFIG_DIR"

// BackupDirEnv overrides the backup directory when set.
const BackupDirEnv = "EMUCFG_BACKUP_DIR"

// Sentinel errors for path resolution.
var (
	// ErrHomeDirNotFound indicates the user's home directory could not be determined.
	ErrHomeDirNotFound = errors.New("home directory not found")
)

// DefaultDirPerm is the default permission for newly created directories (private).
const DefaultDirPerm = 0o700

// EnsureDir creates the directory and any necessary parents with specified permissions.
// If perm is 0, DefaultDirPerm (0700) is used.
// This function is idempotent; it returns nil if the directory already exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// Home returns the user's home directory, or an empty string if it cannot
// be determined. Use ResolveHome for proper error handling.
func Home() string {
	h, _ := ResolveHome()
	return h
}

// ResolveHome returns the user's home directory.
// Returns ErrHomeDirNotFound if the directory cannot be determined.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(ErrHomeDirNotFound, err.Error())
	}
	return home, nil
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// DataHome returns the XDG data home directory.
// On Linux: ~/.local/share
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func DataHome() string {
	return xdg.DataHome
}

// AppConfigDir returns the directory holding the settings file.
// Returns $EMUCFG_CONFIG_DIR when set, otherwise <ConfigHome>/emucfg.
func AppConfigDir() string {
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		return dir
	}
	return filepath.Join(ConfigHome(), AppName)
}

// SettingsFile returns the default location of the persisted settings.
// Returns: <AppConfigDir>/settings.json
func SettingsFile() string {
	return filepath.Join(AppConfigDir(), SettingsFileName)
}

// BackupDir returns the root directory for settings snapshots.
// Returns $EMUCFG_BACKUP_DIR when set, otherwise <DataHome>/emucfg/backups.
func BackupDir() string {
	if dir := os.Getenv(BackupDirEnv); dir != "" {
		return dir
	}
	return filepath.Join(DataHome(), AppName, "backups")
}
