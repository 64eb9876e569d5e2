// Package backup keeps timestamped copies of the settings file.
//
// Each backup is a directory under the backup root holding the copied
// settings file and a manifest.json with its SHA256 hash:
//
//	$XDG_DATA_HOME/emucfg/backups/
//	└── {timestamp}/
//	    ├── manifest.json
//	    └── settings.json
//
// [Manager.Backup] takes a copy and prunes old ones beyond the retention
// count. [Manager.Restore] verifies the hash before writing the copy back,
// returning [ErrBackupCorrupted] on mismatch. [Manager.EnsureBackedUp] is
// the hook destructive commands call first; it backs up each path at most
// once per Manager.
package backup
