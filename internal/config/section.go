package config

import (
	"encoding/json"

	"github.com/thoreinstein/emucfg/internal/errors"
)

// Section names one settings section of the aggregate: its JSON key, its
// constructor, and how to read or replace it.
type Section[T any] struct {
	Key string
	New func() T
	Get func(*Configuration) T
	Set func(*Configuration, T)
}

// sectionCodec is the type-erased view of a Section used by the loader.
type sectionCodec interface {
	key() string
	decode(c *Configuration, raw []byte) error
	value(c *Configuration) any
}

func (s Section[T]) key() string { return s.Key }

// decode unmarshals raw over a fresh default so keys missing from the
// document keep their constructor values.
func (s Section[T]) decode(c *Configuration, raw []byte) error {
	v := s.New()
	if err := json.Unmarshal(raw, v); err != nil {
		return errors.Wrapf(err, "decoding section %q", s.Key)
	}
	s.Set(c, v)
	return nil
}

func (s Section[T]) value(c *Configuration) any { return s.Get(c) }

// Section accessors, one per Configuration field.
var (
	VideoSection = Section[*VideoConfig]{
		Key: "video", New: NewVideoConfig,
		Get: func(c *Configuration) *VideoConfig { return c.Video },
		Set: func(c *Configuration, v *VideoConfig) { c.Video = v },
	}
	AudioSection = Section[*AudioConfig]{
		Key: "audio", New: NewAudioConfig,
		Get: func(c *Configuration) *AudioConfig { return c.Audio },
		Set: func(c *Configuration, v *AudioConfig) { c.Audio = v },
	}
	InputSection = Section[*InputConfig]{
		Key: "input", New: NewInputConfig,
		Get: func(c *Configuration) *InputConfig { return c.Input },
		Set: func(c *Configuration, v *InputConfig) { c.Input = v },
	}
	EmulationSection = Section[*EmulationConfig]{
		Key: "emulation", New: NewEmulationConfig,
		Get: func(c *Configuration) *EmulationConfig { return c.Emulation },
		Set: func(c *Configuration, v *EmulationConfig) { c.Emulation = v },
	}
	SnesSection = Section[*SnesConfig]{
		Key: "snes", New: NewSnesConfig,
		Get: func(c *Configuration) *SnesConfig { return c.Snes },
		Set: func(c *Configuration, v *SnesConfig) { c.Snes = v },
	}
	NesSection = Section[*NesConfig]{
		Key: "nes", New: NewNesConfig,
		Get: func(c *Configuration) *NesConfig { return c.Nes },
		Set: func(c *Configuration, v *NesConfig) { c.Nes = v },
	}
	GameboySection = Section[*GameboyConfig]{
		Key: "gameboy", New: NewGameboyConfig,
		Get: func(c *Configuration) *GameboyConfig { return c.Gameboy },
		Set: func(c *Configuration, v *GameboyConfig) { c.Gameboy = v },
	}
	PcEngineSection = Section[*PcEngineConfig]{
		Key: "pcEngine", New: NewPcEngineConfig,
		Get: func(c *Configuration) *PcEngineConfig { return c.PcEngine },
		Set: func(c *Configuration, v *PcEngineConfig) { c.PcEngine = v },
	}
	PreferencesSection = Section[*PreferencesConfig]{
		Key: "preferences", New: NewPreferencesConfig,
		Get: func(c *Configuration) *PreferencesConfig { return c.Preferences },
		Set: func(c *Configuration, v *PreferencesConfig) { c.Preferences = v },
	}
	AudioPlayerSection = Section[*AudioPlayerConfig]{
		Key: "audioPlayer", New: NewAudioPlayerConfig,
		Get: func(c *Configuration) *AudioPlayerConfig { return c.AudioPlayer },
		Set: func(c *Configuration, v *AudioPlayerConfig) { c.AudioPlayer = v },
	}
	DebugSection = Section[*DebugConfig]{
		Key: "debug", New: NewDebugConfig,
		Get: func(c *Configuration) *DebugConfig { return c.Debug },
		Set: func(c *Configuration, v *DebugConfig) { c.Debug = v },
	}
	RecentFilesSection = Section[*RecentItems]{
		Key: "recentFiles", New: NewRecentItems,
		Get: func(c *Configuration) *RecentItems { return c.RecentFiles },
		Set: func(c *Configuration, v *RecentItems) { c.RecentFiles = v },
	}
	VideoRecordSection = Section[*VideoRecordConfig]{
		Key: "videoRecord", New: NewVideoRecordConfig,
		Get: func(c *Configuration) *VideoRecordConfig { return c.VideoRecord },
		Set: func(c *Configuration, v *VideoRecordConfig) { c.VideoRecord = v },
	}
	MovieRecordSection = Section[*MovieRecordConfig]{
		Key: "movieRecord", New: NewMovieRecordConfig,
		Get: func(c *Configuration) *MovieRecordConfig { return c.MovieRecord },
		Set: func(c *Configuration, v *MovieRecordConfig) { c.MovieRecord = v },
	}
	HdPackBuilderSection = Section[*HdPackBuilderConfig]{
		Key: "hdPackBuilder", New: NewHdPackBuilderConfig,
		Get: func(c *Configuration) *HdPackBuilderConfig { return c.HdPackBuilder },
		Set: func(c *Configuration, v *HdPackBuilderConfig) { c.HdPackBuilder = v },
	}
	CheatsSection = Section[*CheatWindowConfig]{
		Key: "cheats", New: NewCheatWindowConfig,
		Get: func(c *Configuration) *CheatWindowConfig { return c.Cheats },
		Set: func(c *Configuration, v *CheatWindowConfig) { c.Cheats = v },
	}
	NetplaySection = Section[*NetplayConfig]{
		Key: "netplay", New: NewNetplayConfig,
		Get: func(c *Configuration) *NetplayConfig { return c.Netplay },
		Set: func(c *Configuration, v *NetplayConfig) { c.Netplay = v },
	}
	HistoryViewerSection = Section[*HistoryViewerConfig]{
		Key: "historyViewer", New: NewHistoryViewerConfig,
		Get: func(c *Configuration) *HistoryViewerConfig { return c.HistoryViewer },
		Set: func(c *Configuration, v *HistoryViewerConfig) { c.HistoryViewer = v },
	}
	MainWindowSection = Section[*MainWindowConfig]{
		Key: "mainWindow", New: NewMainWindowConfig,
		Get: func(c *Configuration) *MainWindowConfig { return c.MainWindow },
		Set: func(c *Configuration, v *MainWindowConfig) { c.MainWindow = v },
	}
)

// sections lists every section in file order.
var sections = []sectionCodec{
	VideoSection, AudioSection, InputSection, EmulationSection,
	SnesSection, NesSection, GameboySection, PcEngineSection,
	PreferencesSection, AudioPlayerSection, DebugSection,
	RecentFilesSection, VideoRecordSection, MovieRecordSection,
	HdPackBuilderSection, CheatsSection, NetplaySection,
	HistoryViewerSection, MainWindowSection,
}

// SectionKeys returns the JSON key of every section in file order.
func SectionKeys() []string {
	keys := make([]string, len(sections))
	for i, s := range sections {
		keys[i] = s.key()
	}
	return keys
}

// HasSection reports whether key names a section of the aggregate.
func HasSection(key string) bool {
	for _, s := range sections {
		if s.key() == key {
			return true
		}
	}
	return false
}

// SectionValue returns the live value of the section named key.
func (c *Configuration) SectionValue(key string) (any, error) {
	for _, s := range sections {
		if s.key() == key {
			return s.value(c), nil
		}
	}
	return nil, errors.Wrapf(errors.ErrUnknownSection, "%q", key)
}
