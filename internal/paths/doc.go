// Package paths resolves the per-user locations emucfg reads and writes.
//
// The package wraps github.com/adrg/xdg for cross-platform XDG Base Directory
// Specification compliance. On Linux and macOS, paths follow XDG conventions
// (~/.config, ~/.local/share).
//
//	paths.SettingsFile() // ~/.config/emucfg/settings.json
//	paths.BackupDir()    // ~/.local/share/emucfg/backups
//
// Set EMUCFG_CONFIG_DIR to relocate the settings file and EMUCFG_BACKUP_DIR
// to relocate backups. Tests and portable installs use both to keep away
// from the user's real settings.
package paths
