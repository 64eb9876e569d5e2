// Package errors holds the error conventions of emucfg: the domain
// sentinels, the exit codes of the binary, and thin re-exports of
// github.com/cockroachdb/errors.
//
// Commands return an [ExitError] to pick the exit code and a suggestion.
// Deeper packages attach advice with [WithHint] instead, and the binary
// prints both:
//
//	err := errors.WithHint(errors.Wrapf(backup.ErrBackupCorrupted, "backup %s", id),
//		"Pick an older backup from: emucfg backup list")
//	return errors.NewUserError(err, "")
//
//	// main
//	for _, h := range errors.Hints(err) { ... }
//	os.Exit(errors.ExitCode(err))
//
// Load and save failures inside internal/config are logged and absorbed,
// never returned through here.
package errors
