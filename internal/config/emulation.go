package config

// Speed limits in percent. Zero means unthrottled.
const maxEmulationSpeed = 5000

// EmulationConfig holds console-independent emulation settings.
type EmulationConfig struct {
	EmulationSpeed uint32 `json:"emulationSpeed"`
	TurboSpeed     uint32 `json:"turboSpeed"`
	RewindSpeed    uint32 `json:"rewindSpeed"`
	RunAheadFrames uint32 `json:"runAheadFrames"`

	EnableRewind       bool   `json:"enableRewind"`
	RewindBufferSize   uint32 `json:"rewindBufferSize"`
	AllowBackgroundRun bool   `json:"allowBackgroundRun"`
}

// NewEmulationConfig returns the emulation defaults.
func NewEmulationConfig() *EmulationConfig {
	return &EmulationConfig{
		EmulationSpeed:   100,
		TurboSpeed:       300,
		RewindSpeed:      100,
		EnableRewind:     true,
		RewindBufferSize: 300,
	}
}

// Clone implements Cloner.
func (c *EmulationConfig) Clone() *EmulationConfig {
	clone := *c
	return &clone
}

// ApplyConfig implements Applier.
func (c *EmulationConfig) ApplyConfig(core Core) error {
	n := *c
	n.EmulationSpeed = min(n.EmulationSpeed, maxEmulationSpeed)
	n.TurboSpeed = min(n.TurboSpeed, maxEmulationSpeed)
	n.RewindSpeed = min(n.RewindSpeed, maxEmulationSpeed)
	n.RunAheadFrames = min(n.RunAheadFrames, 10)
	return core.SetEmulationConfig(n)
}
