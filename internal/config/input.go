package config

// InputDisplayPosition is the corner the input overlay is drawn in.
type InputDisplayPosition string

// Overlay positions.
const (
	InputDisplayTopLeft     InputDisplayPosition = "TopLeft"
	InputDisplayTopRight    InputDisplayPosition = "TopRight"
	InputDisplayBottomLeft  InputDisplayPosition = "BottomLeft"
	InputDisplayBottomRight InputDisplayPosition = "BottomRight"
)

// InputConfig configures the shared input mapper.
type InputConfig struct {
	ControllerDeadzoneSize  uint32 `json:"controllerDeadzoneSize"`
	MouseSensitivity        uint32 `json:"mouseSensitivity"`
	HidePointerForLightGuns bool   `json:"hidePointerForLightGuns"`

	DisplayInputPort1        bool                 `json:"displayInputPort1"`
	DisplayInputPort2        bool                 `json:"displayInputPort2"`
	DisplayInputPosition     InputDisplayPosition `json:"displayInputPosition"`
	DisplayInputHorizontally bool                 `json:"displayInputHorizontally"`
}

// NewInputConfig returns the input defaults.
func NewInputConfig() *InputConfig {
	return &InputConfig{
		ControllerDeadzoneSize:   2,
		MouseSensitivity:         1,
		DisplayInputPosition:     InputDisplayBottomRight,
		DisplayInputHorizontally: true,
	}
}

// Clone implements Cloner.
func (c *InputConfig) Clone() *InputConfig {
	clone := *c
	return &clone
}

// ApplyConfig implements Applier.
func (c *InputConfig) ApplyConfig(core Core) error {
	n := *c
	n.ControllerDeadzoneSize = min(n.ControllerDeadzoneSize, 4)
	n.MouseSensitivity = min(n.MouseSensitivity, 9)
	return core.SetInputConfig(n)
}
