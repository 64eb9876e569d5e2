// Package config holds the emulator frontend's configuration aggregate.
//
// A [Configuration] owns one value per settings section (video, audio,
// input, per-console emulation, preferences, recent files, window state,
// ...) plus a little top-level metadata: the schema version, the first-run
// flag and the default key mapping selection.
//
// # File Format
//
// Settings persist as UTF-8 JSON keyed by section name:
//
//	{
//	  "version": "0.4.0",
//	  "video": { ... },
//	  "audio": { "audioDevice": "Speakers", "masterVolume": 80, ... },
//	  ...
//	  "firstRun": false,
//	  "defaultKeyMappings": "Xbox, ArrowKeys"
//	}
//
// # Loading
//
// [Load] never fails. A missing, empty or malformed file yields a fully
// defaulted aggregate. Inside a valid document every section is decoded on
// its own, so one damaged section falls back to its defaults while the rest
// is kept:
//
//	cfg := config.Load(paths.SettingsFile(), config.WithLogger(logger))
//	cfg.RemoveObsoleteConfig()
//	cfg.InitializeDefaults()
//	_ = cfg.ApplyConfig(core)
//	defer cfg.Close()
//
// # Saving
//
// [Configuration.Save] is best effort. It does nothing when saving is
// disabled or in design mode, skips the write when the serialized text
// matches what was last read or written, and logs (rather than returns)
// write failures such as a file held open by another instance.
//
// # Applying
//
// [Configuration.ApplyConfig] pushes every live section into a [Core] in a
// fixed order. Each section is applied in isolation: a failing or panicking
// subsystem is reported in the returned [ApplyError] and does not stop the
// sections after it.
package config
