package config

// DebugConfig holds debugger options the core consults while running.
type DebugConfig struct {
	BreakOnBrk               bool `json:"breakOnBrk"`
	BreakOnUnofficialOpcodes bool `json:"breakOnUnofficialOpcodes"`
	BreakOnUninitMemoryRead  bool `json:"breakOnUninitMemoryRead"`
	BreakOnOpen              bool `json:"breakOnOpen"`

	EnableTraceLogger   bool   `json:"enableTraceLogger"`
	TraceLogLineLimit   uint32 `json:"traceLogLineLimit"`
	ShowSelectionLength bool   `json:"showSelectionLength"`

	// Console-specific overlays used by the event viewer.
	PceShowSpriteLimitBoundaries bool `json:"pceShowSpriteLimitBoundaries"`
	NesShowPpuRegisterWrites     bool `json:"nesShowPpuRegisterWrites"`
}

// NewDebugConfig returns the debugger defaults.
func NewDebugConfig() *DebugConfig {
	return &DebugConfig{
		BreakOnOpen:       true,
		TraceLogLineLimit: 30000,
	}
}

// Clone implements Cloner.
func (c *DebugConfig) Clone() *DebugConfig {
	clone := *c
	return &clone
}

// ApplyConfig implements Applier.
func (c *DebugConfig) ApplyConfig(core Core) error {
	n := *c
	n.TraceLogLineLimit = max(100, min(n.TraceLogLineLimit, 1_000_000))
	return core.SetDebugConfig(n)
}
