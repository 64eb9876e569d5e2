package config

// Core is the live emulation runtime that sections push their values into.
// Every setter receives a copy the core may keep.
type Core interface {
	SetVideoConfig(VideoConfig) error
	SetAudioConfig(AudioConfig) error
	SetInputConfig(InputConfig) error
	SetEmulationConfig(EmulationConfig) error
	SetSnesConfig(SnesConfig) error
	SetNesConfig(NesConfig) error
	SetGameboyConfig(GameboyConfig) error
	SetPcEngineConfig(PcEngineConfig) error
	SetPreferences(PreferencesConfig) error
	SetAudioPlayerConfig(AudioPlayerConfig) error
	SetDebugConfig(DebugConfig) error
}

// Applier is implemented by sections that have a live subsystem.
type Applier interface {
	ApplyConfig(core Core) error
}

// Cloner is implemented by every section; Clone returns a deep copy with an
// independent lifetime.
type Cloner[T any] interface {
	Clone() T
}
