// Package editor launches the user's preferred text editor on the settings
// file.
package editor

import (
	"os"
	"os/exec"
	"strings"

	"github.com/thoreinstein/emucfg/internal/errors"
)

// Open launches the user's preferred editor for the given path and waits
// for it to exit. The editor inherits the terminal.
func Open(path string) error {
	cmd, err := Command(path)
	if err != nil {
		return err
	}
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrap(err, "running editor")
	}
	return nil
}

// Command builds the editor invocation for path. $EDITOR and $VISUAL may
// carry arguments, e.g. "code --wait".
func Command(path string) (*exec.Cmd, error) {
	fields := strings.Fields(detectEditor())
	if len(fields) == 0 {
		return nil, errors.New("no editor configured")
	}
	args := append(fields[1:], path)
	return exec.Command(fields[0], args...), nil
}

// detectEditor returns the editor command to use based on environment variables
// and available binaries. Fallback chain: $EDITOR → $VISUAL → nano → vi
func detectEditor() string {
	if editor := strings.TrimSpace(os.Getenv("EDITOR")); editor != "" {
		return editor
	}
	if visual := strings.TrimSpace(os.Getenv("VISUAL")); visual != "" {
		return visual
	}
	if _, err := exec.LookPath("nano"); err == nil {
		return "nano"
	}
	return "vi"
}
