package config

// WindowState is a window's last position and size. Zero values mean
// "let the window manager decide".
type WindowState struct {
	X         int  `json:"x"`
	Y         int  `json:"y"`
	Width     int  `json:"width"`
	Height    int  `json:"height"`
	Maximized bool `json:"maximized"`
}

// MainWindowConfig remembers the main window placement.
type MainWindowConfig struct {
	Window WindowState `json:"window"`
}

// NewMainWindowConfig returns the main window defaults.
func NewMainWindowConfig() *MainWindowConfig {
	return &MainWindowConfig{}
}

// Clone implements Cloner.
func (c *MainWindowConfig) Clone() *MainWindowConfig {
	clone := *c
	return &clone
}

// CheatWindowConfig holds cheat list options.
type CheatWindowConfig struct {
	Window           WindowState `json:"window"`
	DisableAllCheats bool        `json:"disableAllCheats"`
}

// NewCheatWindowConfig returns the cheat window defaults.
func NewCheatWindowConfig() *CheatWindowConfig {
	return &CheatWindowConfig{}
}

// Clone implements Cloner.
func (c *CheatWindowConfig) Clone() *CheatWindowConfig {
	clone := *c
	return &clone
}

// NetplayConfig holds the last used netplay host and client settings.
type NetplayConfig struct {
	Host       string `json:"host"`
	Port       uint16 `json:"port"`
	Password   string `json:"password"`
	ServerPort uint16 `json:"serverPort"`
}

// NewNetplayConfig returns the netplay defaults.
func NewNetplayConfig() *NetplayConfig {
	return &NetplayConfig{Host: "localhost", Port: 8888, ServerPort: 8888}
}

// Clone implements Cloner.
func (c *NetplayConfig) Clone() *NetplayConfig {
	clone := *c
	return &clone
}

// HistoryViewerConfig holds the rewind history viewer options.
type HistoryViewerConfig struct {
	Window WindowState `json:"window"`
	Volume uint32      `json:"volume"`
}

// NewHistoryViewerConfig returns the history viewer defaults.
func NewHistoryViewerConfig() *HistoryViewerConfig {
	return &HistoryViewerConfig{Volume: 25}
}

// Clone implements Cloner.
func (c *HistoryViewerConfig) Clone() *HistoryViewerConfig {
	clone := *c
	return &clone
}
