// Package options resolves the launch options of emucfg using Viper.
//
// Options come from, in increasing precedence: built-in defaults, the
// optional emucfg.yaml file in the application config directory,
// EMUCFG_* environment variables, and command-line flags.
package options

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/thoreinstein/emucfg/internal/errors"
	"github.com/thoreinstein/emucfg/internal/paths"
)

// EnvPrefix is prepended to every environment variable, e.g.
// EMUCFG_NO_SAVE_SETTINGS.
const EnvPrefix = "EMUCFG"

// Option keys.
const (
	KeySettingsFile    = "settings_file"
	KeyNoSaveSettings  = "no_save_settings"
	KeyDesignMode      = "design_mode"
	KeyAudioDevices    = "audio_devices"
	KeyBackupRetention = "backup_retention"
)

// DefaultBackupRetention is how many settings backups are kept.
const DefaultBackupRetention = 5

// Options are the resolved launch options.
type Options struct {
	SettingsFile    string   `mapstructure:"settings_file" yaml:"settings_file"`
	NoSaveSettings  bool     `mapstructure:"no_save_settings" yaml:"no_save_settings"`
	DesignMode      bool     `mapstructure:"design_mode" yaml:"design_mode"`
	AudioDevices    []string `mapstructure:"audio_devices" yaml:"audio_devices"`
	BackupRetention int      `mapstructure:"backup_retention" yaml:"backup_retention"`
}

// flagKeys maps command-line flag names to option keys.
var flagKeys = map[string]string{
	"config":           KeySettingsFile,
	"no-save-settings": KeyNoSaveSettings,
	"design-mode":      KeyDesignMode,
	"audio-devices":    KeyAudioDevices,
	"backup-retention": KeyBackupRetention,
}

// Init registers config file search paths, environment binding and
// defaults on v. Call it once before Load.
func Init(v *viper.Viper) {
	v.SetConfigName(paths.AppName)
	v.SetConfigType("yaml")
	v.AddConfigPath(paths.AppConfigDir())

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault(KeySettingsFile, paths.SettingsFile())
	v.SetDefault(KeyNoSaveSettings, false)
	v.SetDefault(KeyDesignMode, false)
	v.SetDefault(KeyAudioDevices, []string{})
	v.SetDefault(KeyBackupRetention, DefaultBackupRetention)
}

// BindFlags binds every known flag present in flags to its option key.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return errors.Wrapf(err, "binding flag --%s", name)
		}
	}
	return nil
}

// Load reads the options file and returns the resolved options.
// If path is provided, that file must exist. If path is empty, a missing
// file in the default location is not an error.
func Load(v *viper.Viper, path string) (*Options, error) {
	if path != "" {
		v.SetConfigFile(path)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "reading options file")
		}
		if path != "" {
			return nil, errors.WithHint(errors.Wrapf(err, "options file not found at %s", path),
				"Drop --options to use the default location")
		}
	}

	var opts Options
	if err := v.Unmarshal(&opts); err != nil {
		return nil, errors.Wrap(err, "unmarshaling options")
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &opts, nil
}

// Validate checks the resolved options.
func (o *Options) Validate() error {
	if o.SettingsFile == "" {
		return errors.Wrap(errors.ErrInvalidConfig, "settings file path is empty")
	}
	if o.BackupRetention < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "backup retention %d is negative", o.BackupRetention)
	}
	return nil
}
