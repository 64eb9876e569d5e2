package config

import "slices"

// Supported output sample rates in Hz.
var SampleRates = []uint32{11025, 22050, 44100, 48000, 96000}

// AudioConfig configures the audio engine.
type AudioConfig struct {
	AudioDevice              string `json:"audioDevice"`
	EnableAudio              bool   `json:"enableAudio"`
	DisableDynamicSampleRate bool   `json:"disableDynamicSampleRate"`
	MasterVolume             uint32 `json:"masterVolume"`
	SampleRate               uint32 `json:"sampleRate"`
	AudioLatency             uint32 `json:"audioLatency"`

	MuteSoundInBackground    bool   `json:"muteSoundInBackground"`
	ReduceSoundInBackground  bool   `json:"reduceSoundInBackground"`
	ReduceSoundInFastForward bool   `json:"reduceSoundInFastForward"`
	VolumeReduction          uint32 `json:"volumeReduction"`

	EnableReverb   bool   `json:"enableReverb"`
	ReverbDelay    uint32 `json:"reverbDelay"`
	ReverbStrength uint32 `json:"reverbStrength"`

	EnableCrossFeed bool   `json:"enableCrossFeed"`
	CrossFeedRatio  uint32 `json:"crossFeedRatio"`
}

// NewAudioConfig returns the audio defaults.
func NewAudioConfig() *AudioConfig {
	return &AudioConfig{
		EnableAudio:     true,
		MasterVolume:    100,
		SampleRate:      48000,
		AudioLatency:    60,
		VolumeReduction: 75,
		ReverbDelay:     1,
		ReverbStrength:  1,
		CrossFeedRatio:  0,
	}
}

// Clone implements Cloner.
func (c *AudioConfig) Clone() *AudioConfig {
	clone := *c
	return &clone
}

// normalized returns a copy with every value inside the engine's range.
func (c *AudioConfig) normalized() AudioConfig {
	n := *c
	n.MasterVolume = min(n.MasterVolume, 100)
	n.VolumeReduction = min(n.VolumeReduction, 100)
	n.AudioLatency = max(15, min(n.AudioLatency, 300))
	n.ReverbDelay = max(1, min(n.ReverbDelay, 30))
	n.ReverbStrength = max(1, min(n.ReverbStrength, 10))
	n.CrossFeedRatio = min(n.CrossFeedRatio, 100)
	if !slices.Contains(SampleRates, n.SampleRate) {
		n.SampleRate = 48000
	}
	return n
}

// ApplyConfig implements Applier.
func (c *AudioConfig) ApplyConfig(core Core) error {
	return core.SetAudioConfig(c.normalized())
}
