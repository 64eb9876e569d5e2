package config

// VideoFilterType names a post-processing filter.
type VideoFilterType string

// Video filters understood by the renderer.
const (
	VideoFilterNone      VideoFilterType = "None"
	VideoFilterNtsc      VideoFilterType = "NtscBlargg"
	VideoFilterHq2x      VideoFilterType = "HQ2x"
	VideoFilterScale2x   VideoFilterType = "Scale2x"
	VideoFilterXbrz2x    VideoFilterType = "xBRZ2x"
	VideoFilterPrescale2 VideoFilterType = "Prescale2x"
)

// VideoAspectRatio selects how the picture is stretched.
type VideoAspectRatio string

// Aspect ratio modes.
const (
	AspectNoStretching VideoAspectRatio = "NoStretching"
	AspectAuto         VideoAspectRatio = "Auto"
	AspectNTSC         VideoAspectRatio = "NTSC"
	AspectPAL          VideoAspectRatio = "PAL"
	AspectStandard     VideoAspectRatio = "Standard"
	AspectWidescreen   VideoAspectRatio = "Widescreen"
	AspectCustom       VideoAspectRatio = "Custom"
)

// VideoConfig configures the video renderer.
type VideoConfig struct {
	VideoFilter       VideoFilterType  `json:"videoFilter"`
	AspectRatio       VideoAspectRatio `json:"aspectRatio"`
	CustomAspectRatio float64          `json:"customAspectRatio"`

	Brightness float64 `json:"brightness"`
	Contrast   float64 `json:"contrast"`
	Hue        float64 `json:"hue"`
	Saturation float64 `json:"saturation"`

	ScanlineIntensity        uint32 `json:"scanlineIntensity"`
	UseBilinearInterpolation bool   `json:"useBilinearInterpolation"`
	VerticalSync             bool   `json:"verticalSync"`
	IntegerFpsMode           bool   `json:"integerFpsMode"`

	FullscreenForceIntegerScale    bool   `json:"fullscreenForceIntegerScale"`
	UseExclusiveFullscreen         bool   `json:"useExclusiveFullscreen"`
	ExclusiveFullscreenRefreshRate uint32 `json:"exclusiveFullscreenRefreshRate"`
}

// NewVideoConfig returns the video defaults.
func NewVideoConfig() *VideoConfig {
	return &VideoConfig{
		VideoFilter:                    VideoFilterNone,
		AspectRatio:                    AspectNoStretching,
		CustomAspectRatio:              1.0,
		ExclusiveFullscreenRefreshRate: 60,
	}
}

// Clone implements Cloner.
func (c *VideoConfig) Clone() *VideoConfig {
	clone := *c
	return &clone
}

func clampUnit(v float64) float64 {
	return max(-1, min(v, 1))
}

func (c *VideoConfig) normalized() VideoConfig {
	n := *c
	n.Brightness = clampUnit(n.Brightness)
	n.Contrast = clampUnit(n.Contrast)
	n.Hue = clampUnit(n.Hue)
	n.Saturation = clampUnit(n.Saturation)
	n.ScanlineIntensity = min(n.ScanlineIntensity, 100)
	if n.CustomAspectRatio < 0.1 || n.CustomAspectRatio > 5 {
		n.CustomAspectRatio = 1.0
	}
	if n.VideoFilter == "" {
		n.VideoFilter = VideoFilterNone
	}
	if n.AspectRatio == "" {
		n.AspectRatio = AspectNoStretching
	}
	return n
}

// ApplyConfig implements Applier.
func (c *VideoConfig) ApplyConfig(core Core) error {
	return core.SetVideoConfig(c.normalized())
}
