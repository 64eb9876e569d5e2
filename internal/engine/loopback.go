package engine

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/thoreinstein/emucfg/internal/config"
	"github.com/thoreinstein/emucfg/internal/errors"
	"github.com/thoreinstein/emucfg/internal/logging"
)

// Loopback is an in-process core that keeps what it is given.
type Loopback struct {
	mu       sync.Mutex
	logger   *slog.Logger
	devices  []string
	applied  map[string]any
	calls    []string
	failures map[string]error
}

// Option configures a Loopback.
type Option func(*Loopback)

// WithLogger sets the logger. Defaults to discarding.
func WithLogger(l *slog.Logger) Option {
	return func(lb *Loopback) {
		if l != nil {
			lb.logger = l
		}
	}
}

// WithAudioDevices sets the devices GetAudioDevices reports.
func WithAudioDevices(devices ...string) Option {
	return func(lb *Loopback) {
		lb.devices = slices.Clone(devices)
	}
}

// WithFailure makes the setter for section return err.
func WithFailure(section string, err error) Option {
	return func(lb *Loopback) {
		lb.failures[section] = err
	}
}

// New returns a Loopback core.
func New(opts ...Option) *Loopback {
	lb := &Loopback{
		logger:   logging.NewDiscard(),
		applied:  make(map[string]any),
		failures: make(map[string]error),
	}
	for _, opt := range opts {
		opt(lb)
	}
	return lb
}

var _ config.Core = (*Loopback)(nil)

func (lb *Loopback) set(section string, v any) error {
	lb.mu.Lock()
	defer lb.mu.Unlock()

	lb.calls = append(lb.calls, section)
	if err := lb.failures[section]; err != nil {
		return err
	}
	lb.applied[section] = v
	lb.logger.Debug("core updated", "section", section)
	lb.logger.Log(context.Background(), logging.LevelTrace, "core values", "section", section, "value", v)
	return nil
}

// SetVideoConfig implements config.Core.
func (lb *Loopback) SetVideoConfig(v config.VideoConfig) error { return lb.set("video", v) }

// SetAudioConfig implements config.Core. A device name the host does not
// report is rejected.
func (lb *Loopback) SetAudioConfig(v config.AudioConfig) error {
	devices := lb.GetAudioDevices()
	if v.AudioDevice != "" && len(devices) > 0 && !slices.Contains(devices, v.AudioDevice) {
		lb.mu.Lock()
		lb.calls = append(lb.calls, "audio")
		lb.mu.Unlock()
		return errors.Wrapf(errors.ErrUnknownDevice, "opening audio device %q", v.AudioDevice)
	}
	return lb.set("audio", v)
}

// SetInputConfig implements config.Core.
func (lb *Loopback) SetInputConfig(v config.InputConfig) error { return lb.set("input", v) }

// SetEmulationConfig implements config.Core.
func (lb *Loopback) SetEmulationConfig(v config.EmulationConfig) error {
	return lb.set("emulation", v)
}

// SetSnesConfig implements config.Core.
func (lb *Loopback) SetSnesConfig(v config.SnesConfig) error { return lb.set("snes", v) }

// SetNesConfig implements config.Core.
func (lb *Loopback) SetNesConfig(v config.NesConfig) error { return lb.set("nes", v) }

// SetGameboyConfig implements config.Core.
func (lb *Loopback) SetGameboyConfig(v config.GameboyConfig) error { return lb.set("gameboy", v) }

// SetPcEngineConfig implements config.Core.
func (lb *Loopback) SetPcEngineConfig(v config.PcEngineConfig) error {
	return lb.set("pcEngine", v)
}

// SetPreferences implements config.Core.
func (lb *Loopback) SetPreferences(v config.PreferencesConfig) error {
	return lb.set("preferences", v)
}

// SetAudioPlayerConfig implements config.Core.
func (lb *Loopback) SetAudioPlayerConfig(v config.AudioPlayerConfig) error {
	return lb.set("audioPlayer", v)
}

// SetDebugConfig implements config.Core.
func (lb *Loopback) SetDebugConfig(v config.DebugConfig) error { return lb.set("debug", v) }

// GetAudioDevices reports the configured output devices.
func (lb *Loopback) GetAudioDevices() []string {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	return slices.Clone(lb.devices)
}

// Applied returns the last value accepted for section.
func (lb *Loopback) Applied(section string) (any, bool) {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	v, ok := lb.applied[section]
	return v, ok
}

// Audio returns the last accepted audio configuration.
func (lb *Loopback) Audio() (config.AudioConfig, bool) {
	v, ok := lb.Applied("audio")
	if !ok {
		return config.AudioConfig{}, false
	}
	audio, ok := v.(config.AudioConfig)
	return audio, ok
}

// Calls returns every section setter invoked, in call order, including
// failed ones.
func (lb *Loopback) Calls() []string {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	return slices.Clone(lb.calls)
}

// Reset forgets everything applied so far.
func (lb *Loopback) Reset() {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	lb.calls = nil
	clear(lb.applied)
}
