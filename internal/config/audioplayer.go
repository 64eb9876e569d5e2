package config

// AudioPlayerConfig configures the music player used for NSF/SPC/GBS files.
type AudioPlayerConfig struct {
	Volume  uint32 `json:"volume"`
	Repeat  bool   `json:"repeat"`
	Shuffle bool   `json:"shuffle"`
}

// NewAudioPlayerConfig returns the audio player defaults.
func NewAudioPlayerConfig() *AudioPlayerConfig {
	return &AudioPlayerConfig{Volume: 100}
}

// Clone implements Cloner.
func (c *AudioPlayerConfig) Clone() *AudioPlayerConfig {
	clone := *c
	return &clone
}

// ApplyConfig implements Applier.
func (c *AudioPlayerConfig) ApplyConfig(core Core) error {
	n := *c
	n.Volume = min(n.Volume, 100)
	return core.SetAudioPlayerConfig(n)
}
