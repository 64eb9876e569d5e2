package config

import "slices"

// MaxRecentFiles caps the recent-files list.
const MaxRecentFiles = 10

// RecentItem is a game that was loaded, optionally with a patch applied.
type RecentItem struct {
	RomFile   string `json:"romFile"`
	PatchFile string `json:"patchFile,omitempty"`
}

// RecentItems is the most-recently-used list, newest first.
type RecentItems struct {
	Items []RecentItem `json:"items"`
}

// NewRecentItems returns an empty list.
func NewRecentItems() *RecentItems {
	return &RecentItems{Items: []RecentItem{}}
}

// Clone implements Cloner.
func (r *RecentItems) Clone() *RecentItems {
	items := slices.Clone(r.Items)
	if items == nil {
		items = []RecentItem{}
	}
	return &RecentItems{Items: items}
}

// AddRecentFile moves the entry to the front, inserting it if new, and
// trims the list to MaxRecentFiles.
func (r *RecentItems) AddRecentFile(romFile, patchFile string) {
	item := RecentItem{RomFile: romFile, PatchFile: patchFile}
	r.Items = slices.DeleteFunc(r.Items, func(existing RecentItem) bool {
		return existing == item
	})
	r.Items = slices.Insert(r.Items, 0, item)
	if len(r.Items) > MaxRecentFiles {
		r.Items = r.Items[:MaxRecentFiles]
	}
}

// Clear empties the list.
func (r *RecentItems) Clear() {
	r.Items = []RecentItem{}
}
