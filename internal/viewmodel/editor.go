package viewmodel

import (
	"github.com/thoreinstein/emucfg/internal/config"
	"github.com/thoreinstein/emucfg/internal/errors"
)

// ErrSessionClosed is returned when a session is used after Commit or
// Discard.
var ErrSessionClosed = errors.New("editing session is closed")

// SectionEditor holds a working copy of one section of a Configuration.
type SectionEditor[T config.Cloner[T]] struct {
	cfg     *config.Configuration
	section config.Section[T]
	entity  T
	closed  bool
}

// NewSectionEditor starts a session on a clone of the live section.
func NewSectionEditor[T config.Cloner[T]](cfg *config.Configuration, section config.Section[T]) *SectionEditor[T] {
	return &SectionEditor[T]{
		cfg:     cfg,
		section: section,
		entity:  section.Get(cfg).Clone(),
	}
}

// Entity returns the working copy. Changes to it are invisible to the live
// configuration until Commit.
func (e *SectionEditor[T]) Entity() T {
	return e.entity
}

// Section returns the key of the section being edited.
func (e *SectionEditor[T]) Section() string {
	return e.section.Key
}

// Closed reports whether the session has ended.
func (e *SectionEditor[T]) Closed() bool {
	return e.closed
}

// Commit replaces the live section with the working copy, saves the
// configuration and applies it to core. A nil core skips the apply step.
// The returned error is the apply result; save failures are logged by the
// configuration itself.
func (e *SectionEditor[T]) Commit(core config.Core) error {
	if e.closed {
		return ErrSessionClosed
	}
	e.closed = true

	e.section.Set(e.cfg, e.entity)
	e.cfg.Save()
	e.cfg.Logger().Debug("section committed", "section", e.section.Key)

	if core == nil {
		return nil
	}
	return e.cfg.ApplyConfig(core)
}

// Discard ends the session without touching the live configuration.
func (e *SectionEditor[T]) Discard() {
	if !e.closed {
		e.cfg.Logger().Debug("section edit discarded", "section", e.section.Key)
	}
	e.closed = true
}
