package config

// ControllerType names the device plugged into a console port.
type ControllerType string

// Controller types.
const (
	ControllerNone      ControllerType = "None"
	ControllerSnes      ControllerType = "SnesController"
	ControllerSnesMouse ControllerType = "SnesMouse"
	ControllerNes       ControllerType = "NesController"
	ControllerZapper    ControllerType = "NesZapper"
	ControllerGameboy   ControllerType = "GameboyController"
	ControllerPce       ControllerType = "PceController"
	ControllerPceAvenue ControllerType = "PceAvenuePad6"
)

// ControllerConfig is one console port: the device type and up to four
// alternative key mapping sets that are all active at once.
type ControllerConfig struct {
	Type        ControllerType `json:"type"`
	KeyMappings [4]KeyMapping  `json:"keyMappings"`
	TurboSpeed  uint32         `json:"turboSpeed"`
}

func newController(t ControllerType) ControllerConfig {
	return ControllerConfig{Type: t, TurboSpeed: 2}
}

// initDefaults replaces the port's mappings with the selected presets.
func (p *ControllerConfig) initDefaults(selected DefaultKeyMappingType, defaultType ControllerType, buttons buttonSet) {
	p.Type = defaultType
	p.KeyMappings = presetMappings(selected, buttons)
}

// HasMappings reports whether at least one mapping set binds a key.
func (p ControllerConfig) HasMappings() bool {
	for _, m := range p.KeyMappings {
		if !m.IsEmpty() {
			return true
		}
	}
	return false
}
