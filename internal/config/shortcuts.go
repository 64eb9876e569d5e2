package config

import "strconv"

// EmulatorShortcut identifies a bindable frontend action.
//
// Values are persisted as integers. Actions removed in later versions leave
// their numbers behind in old settings files; RemoveObsoleteConfig drops
// anything at or beyond LastValidShortcut.
type EmulatorShortcut int

// Bindable actions.
const (
	ShortcutFastForward EmulatorShortcut = iota
	ShortcutRewind
	ShortcutRewindTenSecs
	ShortcutRewindOneMin
	ShortcutIncreaseSpeed
	ShortcutDecreaseSpeed
	ShortcutMaxSpeed
	ShortcutPause
	ShortcutReset
	ShortcutPowerCycle
	ShortcutPowerOff
	ShortcutExit
	ShortcutTakeScreenshot
	ShortcutToggleFullscreen
	ShortcutToggleFps
	ShortcutToggleAudio
	ShortcutToggleBackground
	ShortcutToggleSprites
	ShortcutRunSingleFrame
	ShortcutSaveStateSlot1
	ShortcutSaveStateSlot2
	ShortcutSaveStateSlot3
	ShortcutLoadStateSlot1
	ShortcutLoadStateSlot2
	ShortcutLoadStateSlot3
	ShortcutSaveStateToFile
	ShortcutLoadStateFromFile
	ShortcutOpenFile
	ShortcutLoadLastSession

	// LastValidShortcut bounds the valid range; it is not an action.
	LastValidShortcut
)

var shortcutNames = [...]string{
	"FastForward", "Rewind", "RewindTenSecs", "RewindOneMin",
	"IncreaseSpeed", "DecreaseSpeed", "MaxSpeed",
	"Pause", "Reset", "PowerCycle", "PowerOff", "Exit",
	"TakeScreenshot", "ToggleFullscreen", "ToggleFps", "ToggleAudio",
	"ToggleBackground", "ToggleSprites", "RunSingleFrame",
	"SaveStateSlot1", "SaveStateSlot2", "SaveStateSlot3",
	"LoadStateSlot1", "LoadStateSlot2", "LoadStateSlot3",
	"SaveStateToFile", "LoadStateFromFile", "OpenFile", "LoadLastSession",
}

// IsValid reports whether s names a current action.
func (s EmulatorShortcut) IsValid() bool {
	return s >= 0 && s < LastValidShortcut
}

func (s EmulatorShortcut) String() string {
	if s.IsValid() {
		return shortcutNames[s]
	}
	return "EmulatorShortcut(" + strconv.Itoa(int(s)) + ")"
}

// KeyCombination is up to three keys held together.
type KeyCombination struct {
	Key1 string `json:"key1,omitempty"`
	Key2 string `json:"key2,omitempty"`
	Key3 string `json:"key3,omitempty"`
}

// IsEmpty reports whether no key is set.
func (k KeyCombination) IsEmpty() bool {
	return k == KeyCombination{}
}

// ShortcutKeyInfo binds an action to a primary and an alternate combination.
type ShortcutKeyInfo struct {
	Shortcut        EmulatorShortcut `json:"shortcut"`
	KeyCombination  KeyCombination   `json:"keyCombination"`
	KeyCombination2 KeyCombination   `json:"keyCombination2"`
}

var defaultShortcutKeys = map[EmulatorShortcut]KeyCombination{
	ShortcutFastForward:       {Key1: "Tab"},
	ShortcutRewind:            {Key1: "Backspace"},
	ShortcutIncreaseSpeed:     {Key1: "="},
	ShortcutDecreaseSpeed:     {Key1: "-"},
	ShortcutPause:             {Key1: "Esc"},
	ShortcutReset:             {Key1: "Ctrl", Key2: "R"},
	ShortcutPowerCycle:        {Key1: "Ctrl", Key2: "T"},
	ShortcutExit:              {Key1: "Alt", Key2: "F4"},
	ShortcutTakeScreenshot:    {Key1: "F12"},
	ShortcutToggleFullscreen:  {Key1: "F11"},
	ShortcutSaveStateSlot1:    {Key1: "Shift", Key2: "F1"},
	ShortcutSaveStateSlot2:    {Key1: "Shift", Key2: "F2"},
	ShortcutSaveStateSlot3:    {Key1: "Shift", Key2: "F3"},
	ShortcutLoadStateSlot1:    {Key1: "F1"},
	ShortcutLoadStateSlot2:    {Key1: "F2"},
	ShortcutLoadStateSlot3:    {Key1: "F3"},
	ShortcutSaveStateToFile:   {Key1: "Ctrl", Key2: "S"},
	ShortcutLoadStateFromFile: {Key1: "Ctrl", Key2: "L"},
	ShortcutOpenFile:          {Key1: "Ctrl", Key2: "O"},
}

// DefaultShortcutKey returns the factory binding for s, which may be empty.
func DefaultShortcutKey(s EmulatorShortcut) KeyCombination {
	return defaultShortcutKeys[s]
}
