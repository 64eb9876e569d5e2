package config

import "slices"

// Theme is the UI color scheme.
type Theme string

// Themes.
const (
	ThemeLight Theme = "Light"
	ThemeDark  Theme = "Dark"
)

// PreferencesConfig holds frontend behavior and the shortcut bindings.
type PreferencesConfig struct {
	Theme                        Theme `json:"theme"`
	SingleInstance               bool  `json:"singleInstance"`
	AutomaticallyCheckForUpdates bool  `json:"automaticallyCheckForUpdates"`
	ConfirmExitResetPower        bool  `json:"confirmExitResetPower"`

	PauseWhenInBackground     bool `json:"pauseWhenInBackground"`
	PauseWhenInMenusAndConfig bool `json:"pauseWhenInMenusAndConfig"`
	AllowBackgroundInput      bool `json:"allowBackgroundInput"`

	ShowFps          bool `json:"showFps"`
	ShowFrameCounter bool `json:"showFrameCounter"`
	ShowGameTimer    bool `json:"showGameTimer"`
	DisableOsd       bool `json:"disableOsd"`

	OverrideGameFolder      bool   `json:"overrideGameFolder"`
	GameFolder              string `json:"gameFolder"`
	OverrideSaveStateFolder bool   `json:"overrideSaveStateFolder"`
	SaveStateFolder         string `json:"saveStateFolder"`

	ShortcutKeys []ShortcutKeyInfo `json:"shortcutKeys"`
}

// NewPreferencesConfig returns the preference defaults. The shortcut list
// starts empty and is filled by InitializeDefaultShortcuts.
func NewPreferencesConfig() *PreferencesConfig {
	return &PreferencesConfig{
		Theme:                        ThemeLight,
		SingleInstance:               true,
		AutomaticallyCheckForUpdates: true,
		ConfirmExitResetPower:        true,
		PauseWhenInMenusAndConfig:    true,
		ShortcutKeys:                 []ShortcutKeyInfo{},
	}
}

// Clone implements Cloner.
func (c *PreferencesConfig) Clone() *PreferencesConfig {
	clone := *c
	clone.ShortcutKeys = slices.Clone(c.ShortcutKeys)
	if clone.ShortcutKeys == nil {
		clone.ShortcutKeys = []ShortcutKeyInfo{}
	}
	return &clone
}

// InitializeDefaultShortcuts adds the factory binding for every valid
// action that has no entry yet. Existing entries, including deliberately
// cleared ones, are left alone, so repeated calls change nothing.
func (c *PreferencesConfig) InitializeDefaultShortcuts() int {
	present := make(map[EmulatorShortcut]bool, len(c.ShortcutKeys))
	for _, info := range c.ShortcutKeys {
		present[info.Shortcut] = true
	}

	added := 0
	for s := EmulatorShortcut(0); s < LastValidShortcut; s++ {
		if present[s] {
			continue
		}
		c.ShortcutKeys = append(c.ShortcutKeys, ShortcutKeyInfo{
			Shortcut:       s,
			KeyCombination: DefaultShortcutKey(s),
		})
		added++
	}
	return added
}

// RemoveObsoleteShortcuts deletes entries whose action is outside the
// valid range and returns how many were removed.
func (c *PreferencesConfig) RemoveObsoleteShortcuts() int {
	removed := 0
	// Reverse order keeps the remaining indexes stable while deleting.
	for i := len(c.ShortcutKeys) - 1; i >= 0; i-- {
		if !c.ShortcutKeys[i].Shortcut.IsValid() {
			c.ShortcutKeys = slices.Delete(c.ShortcutKeys, i, i+1)
			removed++
		}
	}
	return removed
}

// Shortcut returns the binding for s, if any.
func (c *PreferencesConfig) Shortcut(s EmulatorShortcut) (ShortcutKeyInfo, bool) {
	for _, info := range c.ShortcutKeys {
		if info.Shortcut == s {
			return info, true
		}
	}
	return ShortcutKeyInfo{}, false
}

// ApplyConfig implements Applier. Only valid bindings reach the core.
func (c *PreferencesConfig) ApplyConfig(core Core) error {
	n := *c.Clone()
	n.ShortcutKeys = slices.DeleteFunc(n.ShortcutKeys, func(info ShortcutKeyInfo) bool {
		return !info.Shortcut.IsValid()
	})
	if n.Theme != ThemeDark {
		n.Theme = ThemeLight
	}
	return core.SetPreferences(n)
}
