package config

// ConsoleRegion forces a timing region or lets the core detect it.
type ConsoleRegion string

// Regions.
const (
	RegionAuto  ConsoleRegion = "Auto"
	RegionNtsc  ConsoleRegion = "Ntsc"
	RegionPal   ConsoleRegion = "Pal"
	RegionDendy ConsoleRegion = "Dendy"
)

// OverscanDimensions crops pixels from each edge of the picture.
type OverscanDimensions struct {
	Left   uint32 `json:"left"`
	Right  uint32 `json:"right"`
	Top    uint32 `json:"top"`
	Bottom uint32 `json:"bottom"`
}

func (o OverscanDimensions) clamped(limit uint32) OverscanDimensions {
	return OverscanDimensions{
		Left:   min(o.Left, limit),
		Right:  min(o.Right, limit),
		Top:    min(o.Top, limit),
		Bottom: min(o.Bottom, limit),
	}
}

// SnesConfig holds Super Nintendo emulation settings.
type SnesConfig struct {
	Port1 ControllerConfig `json:"port1"`
	Port2 ControllerConfig `json:"port2"`

	Region                   ConsoleRegion `json:"region"`
	EnableRandomPowerOnState bool          `json:"enableRandomPowerOnState"`
	AllowInvalidInput        bool          `json:"allowInvalidInput"`

	PpuExtraScanlinesBeforeNmi uint32 `json:"ppuExtraScanlinesBeforeNmi"`
	PpuExtraScanlinesAfterNmi  uint32 `json:"ppuExtraScanlinesAfterNmi"`
	GsuClockSpeed              uint32 `json:"gsuClockSpeed"`

	Overscan OverscanDimensions `json:"overscan"`
}

var snesButtons = buttonSet{xy: true, shoulders: true, turbo: true}

// NewSnesConfig returns the SNES defaults.
func NewSnesConfig() *SnesConfig {
	return &SnesConfig{
		Port1:         newController(ControllerSnes),
		Port2:         newController(ControllerNone),
		Region:        RegionAuto,
		GsuClockSpeed: 100,
		Overscan:      OverscanDimensions{Top: 7, Bottom: 8},
	}
}

// Clone implements Cloner.
func (c *SnesConfig) Clone() *SnesConfig {
	clone := *c
	return &clone
}

// InitializeDefaults installs the selected key presets on port 1.
func (c *SnesConfig) InitializeDefaults(mappings DefaultKeyMappingType) {
	c.Port1.initDefaults(mappings, ControllerSnes, snesButtons)
}

// ApplyConfig implements Applier.
func (c *SnesConfig) ApplyConfig(core Core) error {
	n := *c
	n.PpuExtraScanlinesBeforeNmi = min(n.PpuExtraScanlinesBeforeNmi, 1000)
	n.PpuExtraScanlinesAfterNmi = min(n.PpuExtraScanlinesAfterNmi, 1000)
	n.GsuClockSpeed = max(100, min(n.GsuClockSpeed, 1000))
	n.Overscan = n.Overscan.clamped(100)
	return core.SetSnesConfig(n)
}

// NesConfig holds NES/Famicom emulation settings.
type NesConfig struct {
	Port1 ControllerConfig `json:"port1"`
	Port2 ControllerConfig `json:"port2"`

	Region                      ConsoleRegion `json:"region"`
	RemoveSpriteLimit           bool          `json:"removeSpriteLimit"`
	EnableOamDecay              bool          `json:"enableOamDecay"`
	EnablePpu2000ScrollGlitch   bool          `json:"enablePpu2000ScrollGlitch"`
	RandomizeMapperPowerOnState bool          `json:"randomizeMapperPowerOnState"`

	// Which console of a VS dual-system arcade board drives the audio and
	// video outputs: "Main", "Sub" or "Both".
	VsDualAudioOutput string `json:"vsDualAudioOutput"`
	VsDualVideoOutput string `json:"vsDualVideoOutput"`

	Overscan OverscanDimensions `json:"overscan"`
}

var nesButtons = buttonSet{turbo: true}

// NewNesConfig returns the NES defaults.
func NewNesConfig() *NesConfig {
	return &NesConfig{
		Port1:             newController(ControllerNes),
		Port2:             newController(ControllerNone),
		Region:            RegionAuto,
		VsDualAudioOutput: "Both",
		VsDualVideoOutput: "Both",
		Overscan:          OverscanDimensions{Top: 8, Bottom: 8},
	}
}

// Clone implements Cloner.
func (c *NesConfig) Clone() *NesConfig {
	clone := *c
	return &clone
}

// InitializeDefaults installs the selected key presets on port 1.
func (c *NesConfig) InitializeDefaults(mappings DefaultKeyMappingType) {
	c.Port1.initDefaults(mappings, ControllerNes, nesButtons)
}

// ApplyConfig implements Applier.
func (c *NesConfig) ApplyConfig(core Core) error {
	n := *c
	n.Overscan = n.Overscan.clamped(100)
	return core.SetNesConfig(n)
}

// GameboyModel selects the emulated handheld revision.
type GameboyModel string

// Game Boy models.
const (
	GameboyModelAuto         GameboyModel = "AutoFavorGbc"
	GameboyModelGameboy      GameboyModel = "Gameboy"
	GameboyModelColor        GameboyModel = "GameboyColor"
	GameboyModelSuperGameboy GameboyModel = "SuperGameboy"
)

// GameboyConfig holds Game Boy / Game Boy Color settings.
type GameboyConfig struct {
	Port1 ControllerConfig `json:"port1"`

	Model           GameboyModel `json:"model"`
	UseSgb2         bool         `json:"useSgb2"`
	BlendFrames     bool         `json:"blendFrames"`
	GbcAdjustColors bool         `json:"gbcAdjustColors"`
}

var gameboyButtons = buttonSet{turbo: true}

// NewGameboyConfig returns the Game Boy defaults.
func NewGameboyConfig() *GameboyConfig {
	return &GameboyConfig{
		Port1:           newController(ControllerGameboy),
		Model:           GameboyModelAuto,
		UseSgb2:         true,
		BlendFrames:     true,
		GbcAdjustColors: true,
	}
}

// Clone implements Cloner.
func (c *GameboyConfig) Clone() *GameboyConfig {
	clone := *c
	return &clone
}

// InitializeDefaults installs the selected key presets on port 1.
func (c *GameboyConfig) InitializeDefaults(mappings DefaultKeyMappingType) {
	c.Port1.initDefaults(mappings, ControllerGameboy, gameboyButtons)
}

// ApplyConfig implements Applier.
func (c *GameboyConfig) ApplyConfig(core Core) error {
	return core.SetGameboyConfig(*c)
}

// PceConsoleType selects between the Japanese and North American console.
type PceConsoleType string

// PC Engine console types.
const (
	PceConsoleAuto       PceConsoleType = "Auto"
	PceConsolePcEngine   PceConsoleType = "PcEngine"
	PceConsoleTurboGrafx PceConsoleType = "TurboGrafx"
)

// PcEngineConfig holds PC Engine / TurboGrafx-16 settings.
type PcEngineConfig struct {
	Port1 ControllerConfig `json:"port1"`
	Port2 ControllerConfig `json:"port2"`

	ConsoleType           PceConsoleType `json:"consoleType"`
	RemoveSpriteLimit     bool           `json:"removeSpriteLimit"`
	DisableSprites        bool           `json:"disableSprites"`
	DisableBackground     bool           `json:"disableBackground"`
	EnableCdRomForHuCards bool           `json:"enableCdRomForHuCards"`

	Overscan OverscanDimensions `json:"overscan"`
}

var pceButtons = buttonSet{turbo: true}

// NewPcEngineConfig returns the PC Engine defaults.
func NewPcEngineConfig() *PcEngineConfig {
	return &PcEngineConfig{
		Port1:       newController(ControllerPce),
		Port2:       newController(ControllerNone),
		ConsoleType: PceConsoleAuto,
		Overscan:    OverscanDimensions{Top: 2, Bottom: 2},
	}
}

// Clone implements Cloner.
func (c *PcEngineConfig) Clone() *PcEngineConfig {
	clone := *c
	return &clone
}

// InitializeDefaults installs the selected key presets on port 1.
func (c *PcEngineConfig) InitializeDefaults(mappings DefaultKeyMappingType) {
	c.Port1.initDefaults(mappings, ControllerPce, pceButtons)
}

// ApplyConfig implements Applier.
func (c *PcEngineConfig) ApplyConfig(core Core) error {
	n := *c
	n.Overscan = n.Overscan.clamped(100)
	return core.SetPcEngineConfig(n)
}
