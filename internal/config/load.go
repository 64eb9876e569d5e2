package config

import (
	"encoding/json"
	"io/fs"

	"github.com/tidwall/gjson"

	"github.com/thoreinstein/emucfg/internal/errors"
)

// Load reads the settings file at path. It never fails: a missing, empty,
// unreadable or malformed file yields a fresh default aggregate, and inside
// a valid document any section that is absent or cannot be decoded keeps
// its defaults while the others are kept.
//
// The returned aggregate remembers the exact text it read so an unchanged
// Save performs no I/O.
func Load(path string, opts ...Option) *Configuration {
	c := New(path, opts...)
	log := c.env.logger.With("path", path)

	data, err := c.env.store.ReadAll(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug("no settings file, using defaults")
		} else {
			log.Warn("reading settings failed, using defaults", "error", err)
		}
		return c
	}

	issues, err := c.decode(data)
	if err != nil {
		log.Warn("settings file is not valid, using defaults", "error", err)
		return c
	}
	for _, issue := range issues {
		log.Warn("settings field invalid, using default", "field", issue.Field, "error", issue.Err)
	}

	c.fileData = string(data)
	log.Debug("settings loaded", "bytes", len(data), "version", c.Version)
	return c
}

// FieldIssue is a top-level settings field that was present but could not
// be decoded, so its defaults were kept.
type FieldIssue struct {
	Field string
	Err   error
}

func (f FieldIssue) Error() string {
	return f.Field + ": " + f.Err.Error()
}

func (f FieldIssue) Unwrap() error { return f.Err }

// Inspect decodes a settings document the way Load does and reports the
// fields Load would ignore. The error is non-nil only when the whole
// document would be ignored.
func Inspect(data []byte) (*Configuration, []FieldIssue, error) {
	c := New("")
	issues, err := c.decode(data)
	return c, issues, err
}

// decode fills c from a settings document. Only a document that is not a
// JSON object is an error, and it is reported before c is touched.
// Fields that fail to decode keep their defaults and are returned.
func (c *Configuration) decode(data []byte) ([]FieldIssue, error) {
	if len(data) == 0 {
		return nil, errors.Wrap(errors.ErrInvalidConfig, "empty settings file")
	}
	if !gjson.ValidBytes(data) {
		return nil, errors.Wrap(errors.ErrInvalidConfig, "malformed JSON")
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "top level is %s, not an object", root.Type)
	}

	var issues []FieldIssue
	field := func(key string, fn func(raw []byte) error) {
		if err := c.decodeField(root, key, fn); err != nil {
			issues = append(issues, FieldIssue{Field: key, Err: err})
		}
	}

	for _, s := range sections {
		field(s.key(), func(raw []byte) error {
			return s.decode(c, raw)
		})
	}

	field("version", func(raw []byte) error {
		return json.Unmarshal(raw, &c.Version)
	})
	field("firstRun", func(raw []byte) error {
		return json.Unmarshal(raw, &c.FirstRun)
	})
	field("defaultKeyMappings", func(raw []byte) error {
		return json.Unmarshal(raw, &c.DefaultKeyMappings)
	})

	return issues, nil
}

// decodeField runs fn on the raw text of key when present and not null.
// On failure the field keeps the value it had before the call.
func (c *Configuration) decodeField(root gjson.Result, key string, fn func(raw []byte) error) error {
	field := root.Get(gjson.Escape(key))
	if !field.Exists() || field.Type == gjson.Null {
		c.env.logger.Debug("settings field missing, using default", "field", key)
		return nil
	}
	return fn([]byte(field.Raw))
}
