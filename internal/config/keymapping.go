package config

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/thoreinstein/emucfg/internal/errors"
)

// DefaultKeyMappingType selects which key presets first-run initialization
// installs. Values combine as a bitset.
type DefaultKeyMappingType uint8

// Key mapping presets.
const (
	KeyMappingNone      DefaultKeyMappingType = 0
	KeyMappingXbox      DefaultKeyMappingType = 1
	KeyMappingPs4       DefaultKeyMappingType = 2
	KeyMappingWasdKeys  DefaultKeyMappingType = 4
	KeyMappingArrowKeys DefaultKeyMappingType = 8
)

// keyMappingNames lists the presets in the order they fill mapping slots.
var keyMappingNames = []struct {
	flag DefaultKeyMappingType
	name string
}{
	{KeyMappingXbox, "Xbox"},
	{KeyMappingPs4, "Ps4"},
	{KeyMappingWasdKeys, "WasdKeys"},
	{KeyMappingArrowKeys, "ArrowKeys"},
}

// Has reports whether every bit of flag is set.
func (t DefaultKeyMappingType) Has(flag DefaultKeyMappingType) bool {
	return flag != KeyMappingNone && t&flag == flag
}

// String renders the set as a comma separated list, e.g. "Xbox, ArrowKeys".
func (t DefaultKeyMappingType) String() string {
	if t == KeyMappingNone {
		return "None"
	}
	var parts []string
	for _, km := range keyMappingNames {
		if t.Has(km.flag) {
			parts = append(parts, km.name)
		}
	}
	return strings.Join(parts, ", ")
}

// MarshalText implements encoding.TextMarshaler.
func (t DefaultKeyMappingType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Names are matched
// case-insensitively; unknown names are an error.
func (t *DefaultKeyMappingType) UnmarshalText(text []byte) error {
	parsed, err := ParseDefaultKeyMappings(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// UnmarshalJSON accepts both the text form and a raw numeric bitset.
func (t *DefaultKeyMappingType) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		return t.UnmarshalText([]byte(s))
	}
	n, err := strconv.ParseUint(string(data), 10, 8)
	if err != nil {
		return errors.Wrap(err, "parsing key mapping bitset")
	}
	if n&^uint64(KeyMappingXbox|KeyMappingPs4|KeyMappingWasdKeys|KeyMappingArrowKeys) != 0 {
		return errors.Newf("key mapping bitset %d has unknown bits", n)
	}
	*t = DefaultKeyMappingType(n)
	return nil
}

// ParseDefaultKeyMappings parses the text form produced by String.
func ParseDefaultKeyMappings(s string) (DefaultKeyMappingType, error) {
	var out DefaultKeyMappingType
	for part := range strings.SplitSeq(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" || strings.EqualFold(part, "None") {
			continue
		}
		found := false
		for _, km := range keyMappingNames {
			if strings.EqualFold(part, km.name) {
				out |= km.flag
				found = true
				break
			}
		}
		if !found {
			return KeyMappingNone, errors.Newf("unknown key mapping preset %q", part)
		}
	}
	return out, nil
}

// KeyMapping binds controller buttons to host key or gamepad button names.
// Buttons a console lacks stay empty.
type KeyMapping struct {
	Up     string `json:"up,omitempty"`
	Down   string `json:"down,omitempty"`
	Left   string `json:"left,omitempty"`
	Right  string `json:"right,omitempty"`
	A      string `json:"a,omitempty"`
	B      string `json:"b,omitempty"`
	X      string `json:"x,omitempty"`
	Y      string `json:"y,omitempty"`
	L      string `json:"l,omitempty"`
	R      string `json:"r,omitempty"`
	Start  string `json:"start,omitempty"`
	Select string `json:"select,omitempty"`
	TurboA string `json:"turboA,omitempty"`
	TurboB string `json:"turboB,omitempty"`
}

// IsEmpty reports whether no button is bound.
func (m KeyMapping) IsEmpty() bool {
	return m == KeyMapping{}
}

// buttonSet masks a KeyMapping down to the buttons a console has.
type buttonSet struct {
	xy, shoulders, turbo bool
}

func (b buttonSet) apply(m KeyMapping) KeyMapping {
	if !b.xy {
		m.X, m.Y = "", ""
	}
	if !b.shoulders {
		m.L, m.R = "", ""
	}
	if !b.turbo {
		m.TurboA, m.TurboB = "", ""
	}
	return m
}

var keyPresets = map[DefaultKeyMappingType]KeyMapping{
	KeyMappingXbox: {
		Up: "Pad1 Up", Down: "Pad1 Down", Left: "Pad1 Left", Right: "Pad1 Right",
		A: "Pad1 B", B: "Pad1 A", X: "Pad1 Y", Y: "Pad1 X",
		L: "Pad1 L1", R: "Pad1 R1", Start: "Pad1 Start", Select: "Pad1 Back",
		TurboA: "Pad1 RT", TurboB: "Pad1 LT",
	},
	KeyMappingPs4: {
		Up: "Joy1 DPad Up", Down: "Joy1 DPad Down", Left: "Joy1 DPad Left", Right: "Joy1 DPad Right",
		A: "Joy1 Circle", B: "Joy1 Cross", X: "Joy1 Triangle", Y: "Joy1 Square",
		L: "Joy1 L1", R: "Joy1 R1", Start: "Joy1 Options", Select: "Joy1 Share",
		TurboA: "Joy1 R2", TurboB: "Joy1 L2",
	},
	KeyMappingWasdKeys: {
		Up: "W", Down: "S", Left: "A", Right: "D",
		A: "K", B: "J", X: "I", Y: "U",
		L: "Q", R: "E", Start: "Enter", Select: "Tab",
		TurboA: "L", TurboB: "H",
	},
	KeyMappingArrowKeys: {
		Up: "Up Arrow", Down: "Down Arrow", Left: "Left Arrow", Right: "Right Arrow",
		A: "X", B: "Z", X: "S", Y: "A",
		L: "Q", R: "W", Start: "Enter", Select: "Right Shift",
		TurboA: "V", TurboB: "C",
	},
}

// presetMappings returns up to four mapping sets for the selected presets,
// in preset order, masked to the console's buttons.
func presetMappings(selected DefaultKeyMappingType, buttons buttonSet) [4]KeyMapping {
	var out [4]KeyMapping
	slot := 0
	for _, km := range keyMappingNames {
		if slot == len(out) {
			break
		}
		if selected.Has(km.flag) {
			out[slot] = buttons.apply(keyPresets[km.flag])
			slot++
		}
	}
	return out
}
