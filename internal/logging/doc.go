// Package logging builds the slog loggers emucfg runs with.
//
// A single [Config] describes the process logger: the level derived from -v
// (or EMUCFG_DEBUG), the --log-format of the terminal stream, and an optional
// --log-file that receives a JSON copy of the same records.
//
//	format, err := logging.ParseFormat(flagValue)
//	logger := logging.New(logging.Config{
//		Level:  logging.LevelFromVerbosity(logging.Verbosity(v, os.LookupEnv)),
//		Format: format,
//		Output: os.Stderr,
//		File:   logFile,
//	})
//
// The text encoding prints [LevelTrace] as TRACE, flattens groups into
// dotted keys and colors output only on a terminal without NO_COLOR.
//
// Loggers travel through cobra commands on the context:
//
//	ctx = logging.NewContext(ctx, logger)
//	logging.FromContext(ctx).Debug("applying", "section", "audio")
//
// Library packages default to [NewDiscard]; tests inject [ForTest].
package logging
