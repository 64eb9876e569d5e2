package config

import (
	"fmt"
	"strings"

	"github.com/thoreinstein/emucfg/internal/errors"
)

// SectionError records one section that failed to apply.
type SectionError struct {
	Section string
	Err     error
}

func (e SectionError) Error() string {
	return fmt.Sprintf("%s: %v", e.Section, e.Err)
}

func (e SectionError) Unwrap() error {
	return e.Err
}

// ApplyError is returned by ApplyConfig when one or more sections failed.
// The other sections were still applied.
type ApplyError struct {
	Failures []SectionError
}

func (e *ApplyError) Error() string {
	parts := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		parts[i] = f.Error()
	}
	return fmt.Sprintf("applying %d section(s) failed: %s", len(e.Failures), strings.Join(parts, "; "))
}

// Unwrap exposes every failure to errors.Is and errors.As.
func (e *ApplyError) Unwrap() []error {
	errs := make([]error, len(e.Failures))
	for i, f := range e.Failures {
		errs[i] = f
	}
	return errs
}

// Sections returns the keys of the failed sections in apply order.
func (e *ApplyError) Sections() []string {
	keys := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		keys[i] = f.Section
	}
	return keys
}

type applyStep struct {
	key     string
	applier func(c *Configuration) Applier
}

// applyOrder is the order sections reach the core. The core relies on
// video and audio being configured before the console sections.
var applyOrder = []applyStep{
	{"video", func(c *Configuration) Applier { return c.Video }},
	{"audio", func(c *Configuration) Applier { return c.Audio }},
	{"input", func(c *Configuration) Applier { return c.Input }},
	{"emulation", func(c *Configuration) Applier { return c.Emulation }},
	{"gameboy", func(c *Configuration) Applier { return c.Gameboy }},
	{"pcEngine", func(c *Configuration) Applier { return c.PcEngine }},
	{"nes", func(c *Configuration) Applier { return c.Nes }},
	{"snes", func(c *Configuration) Applier { return c.Snes }},
	{"preferences", func(c *Configuration) Applier { return c.Preferences }},
	{"audioPlayer", func(c *Configuration) Applier { return c.AudioPlayer }},
	{"debug", func(c *Configuration) Applier { return c.Debug }},
}

// ApplyOrder returns the keys of the applying sections in the order
// ApplyConfig visits them.
func ApplyOrder() []string {
	keys := make([]string, len(applyOrder))
	for i, step := range applyOrder {
		keys[i] = step.key
	}
	return keys
}

// ApplyConfig pushes every applying section into core in a fixed order.
// A section that returns an error or panics is logged and recorded, and
// the remaining sections are still applied. The result is nil when every
// section succeeded, otherwise an *ApplyError.
func (c *Configuration) ApplyConfig(core Core) error {
	if core == nil {
		return errors.New("apply target is nil")
	}

	var failures []SectionError
	for _, step := range applyOrder {
		if err := applySection(step.applier(c), core); err != nil {
			c.env.logger.Warn("applying section failed", "section", step.key, "error", err)
			failures = append(failures, SectionError{Section: step.key, Err: err})
			continue
		}
		c.env.logger.Debug("section applied", "section", step.key)
	}

	if len(failures) > 0 {
		return &ApplyError{Failures: failures}
	}
	return nil
}

func applySection(a Applier, core Core) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Newf("panic: %v", r)
		}
	}()
	return a.ApplyConfig(core)
}

// InitializeDefaults fills first-run defaults. On the first run the console
// sections receive the preset controller mappings and FirstRun is cleared;
// missing shortcut bindings are added on every call. Call it before the
// first ApplyConfig.
func (c *Configuration) InitializeDefaults() {
	if c.FirstRun {
		c.Snes.InitializeDefaults(c.DefaultKeyMappings)
		c.Nes.InitializeDefaults(c.DefaultKeyMappings)
		c.Gameboy.InitializeDefaults(c.DefaultKeyMappings)
		c.PcEngine.InitializeDefaults(c.DefaultKeyMappings)
		c.FirstRun = false
		c.env.logger.Info("first run defaults initialized", "mappings", c.DefaultKeyMappings.String())
	}

	if added := c.Preferences.InitializeDefaultShortcuts(); added > 0 {
		c.env.logger.Debug("default shortcuts added", "count", added)
	}
}

// RemoveObsoleteConfig drops settings the current version no longer
// understands and returns how many entries were removed.
func (c *Configuration) RemoveObsoleteConfig() int {
	removed := c.Preferences.RemoveObsoleteShortcuts()
	if removed > 0 {
		c.env.logger.Info("obsolete settings removed", "count", removed)
	}
	return removed
}
