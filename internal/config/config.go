package config

import (
	"log/slog"

	"github.com/thoreinstein/emucfg/internal/logging"
	"github.com/thoreinstein/emucfg/internal/store"
)

// Version is written into every saved settings file.
const Version = "0.4.0"

// Configuration is the process-wide settings aggregate.
//
// Sections are replaced wholesale (see [Section.Set]) rather than mutated
// field by field from outside the package. Access is expected to be
// serialized by the owner; Configuration does no locking.
type Configuration struct {
	Version string `json:"version"`

	Video         *VideoConfig         `json:"video"`
	Audio         *AudioConfig         `json:"audio"`
	Input         *InputConfig         `json:"input"`
	Emulation     *EmulationConfig     `json:"emulation"`
	Snes          *SnesConfig          `json:"snes"`
	Nes           *NesConfig           `json:"nes"`
	Gameboy       *GameboyConfig       `json:"gameboy"`
	PcEngine      *PcEngineConfig      `json:"pcEngine"`
	Preferences   *PreferencesConfig   `json:"preferences"`
	AudioPlayer   *AudioPlayerConfig   `json:"audioPlayer"`
	Debug         *DebugConfig         `json:"debug"`
	RecentFiles   *RecentItems         `json:"recentFiles"`
	VideoRecord   *VideoRecordConfig   `json:"videoRecord"`
	MovieRecord   *MovieRecordConfig   `json:"movieRecord"`
	HdPackBuilder *HdPackBuilderConfig `json:"hdPackBuilder"`
	Cheats        *CheatWindowConfig   `json:"cheats"`
	Netplay       *NetplayConfig       `json:"netplay"`
	HistoryViewer *HistoryViewerConfig `json:"historyViewer"`
	MainWindow    *MainWindowConfig    `json:"mainWindow"`

	FirstRun           bool                  `json:"firstRun"`
	DefaultKeyMappings DefaultKeyMappingType `json:"defaultKeyMappings"`

	// fileData is the exact text last read from or written to disk.
	fileData string
	env      env
}

// env carries the process-local collaborators. It is never serialized.
type env struct {
	path         string
	store        store.Store
	logger       *slog.Logger
	saveDisabled bool
	designMode   bool
}

// Option configures how a Configuration persists itself.
type Option func(*env)

// WithStore sets the Store used by Load and Save. Defaults to the file system.
func WithStore(s store.Store) Option {
	return func(e *env) {
		if s != nil {
			e.store = s
		}
	}
}

// WithLogger sets the logger for load, save and apply diagnostics.
// Defaults to a discarding logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *env) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithSaveDisabled turns Save into a no-op, as the --no-save-settings
// launch option does.
func WithSaveDisabled(disabled bool) Option {
	return func(e *env) {
		e.saveDisabled = disabled
	}
}

// WithDesignMode marks a non-interactive preview context. Nothing is
// written to disk in design mode.
func WithDesignMode(design bool) Option {
	return func(e *env) {
		e.designMode = design
	}
}

func newEnv(path string, opts []Option) env {
	e := env{
		path:   path,
		store:  store.NewFileStore(),
		logger: logging.NewDiscard(),
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// New returns an aggregate holding constructor defaults for every section,
// bound to the settings file at path.
func New(path string, opts ...Option) *Configuration {
	c := defaults()
	c.env = newEnv(path, opts)
	return c
}

func defaults() *Configuration {
	return &Configuration{
		Version:            Version,
		Video:              NewVideoConfig(),
		Audio:              NewAudioConfig(),
		Input:              NewInputConfig(),
		Emulation:          NewEmulationConfig(),
		Snes:               NewSnesConfig(),
		Nes:                NewNesConfig(),
		Gameboy:            NewGameboyConfig(),
		PcEngine:           NewPcEngineConfig(),
		Preferences:        NewPreferencesConfig(),
		AudioPlayer:        NewAudioPlayerConfig(),
		Debug:              NewDebugConfig(),
		RecentFiles:        NewRecentItems(),
		VideoRecord:        NewVideoRecordConfig(),
		MovieRecord:        NewMovieRecordConfig(),
		HdPackBuilder:      NewHdPackBuilderConfig(),
		Cheats:             NewCheatWindowConfig(),
		Netplay:            NewNetplayConfig(),
		HistoryViewer:      NewHistoryViewerConfig(),
		MainWindow:         NewMainWindowConfig(),
		FirstRun:           true,
		DefaultKeyMappings: KeyMappingXbox | KeyMappingArrowKeys,
	}
}

// Path returns the settings file this aggregate loads from and saves to.
func (c *Configuration) Path() string {
	return c.env.path
}

// DesignMode reports whether the aggregate was created for a preview
// context.
func (c *Configuration) DesignMode() bool {
	return c.env.designMode
}

// Logger returns the aggregate's diagnostic logger.
func (c *Configuration) Logger() *slog.Logger {
	return c.env.logger
}
