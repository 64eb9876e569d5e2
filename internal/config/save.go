package config

import (
	"github.com/thoreinstein/emucfg/internal/errors"
	"github.com/thoreinstein/emucfg/pkg/fileutil"
)

// Marshal renders the aggregate in its on-disk form: two-space indented
// JSON with a trailing newline.
func (c *Configuration) Marshal() ([]byte, error) {
	c.Version = Version
	data, err := fileutil.MarshalJSON(c)
	if err != nil {
		return nil, errors.Wrap(err, "marshaling settings")
	}
	return data, nil
}

// Save persists the aggregate to its settings file. It does nothing when
// saving is disabled or in design mode, and it does not touch the disk
// when the rendered text equals what was last read or written. Failures
// are logged and swallowed; the next Save retries.
func (c *Configuration) Save() {
	log := c.env.logger.With("path", c.env.path)
	if c.env.saveDisabled {
		log.Debug("save skipped, saving disabled")
		return
	}

	written, err := c.Serialize(c.env.path)
	switch {
	case err != nil:
		log.Warn("saving settings failed", "error", err)
	case written:
		log.Info("settings saved")
	default:
		log.Debug("settings unchanged, nothing written")
	}
}

// Serialize writes the aggregate to path when its text differs from the
// last snapshot. It reports whether a write happened. Design mode never
// writes.
func (c *Configuration) Serialize(path string) (bool, error) {
	if c.env.designMode {
		return false, nil
	}

	data, err := c.Marshal()
	if err != nil {
		return false, err
	}
	text := string(data)
	if text == c.fileData {
		return false, nil
	}

	if err := c.env.store.WriteAll(path, data); err != nil {
		return false, errors.Wrapf(err, "writing %s", path)
	}
	c.fileData = text
	return true, nil
}

// Close performs the final best-effort save at shutdown.
func (c *Configuration) Close() {
	c.Save()
}
