// Package prompt provides interactive CLI prompts for user input.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/thoreinstein/emucfg/internal/errors"
)

// Sentinel errors for device selection.
var (
	ErrNoDevices          = errors.New("no devices to select from")
	ErrInvalidSelection   = errors.New("invalid selection")
	ErrSelectionCancelled = errors.New("selection cancelled")
)

// Selector handles interactive device selection prompts.
type Selector struct {
	reader io.Reader
	writer io.Writer
}

// NewSelector creates a new Selector using stdin and stdout.
func NewSelector() *Selector {
	return &Selector{
		reader: os.Stdin,
		writer: os.Stdout,
	}
}

// NewSelectorWithIO creates a Selector with custom reader and writer for testing.
func NewSelectorWithIO(r io.Reader, w io.Writer) *Selector {
	return &Selector{
		reader: r,
		writer: w,
	}
}

// SelectDevice prompts the user to choose an audio device. The current
// device is marked and is the default choice; without one the first
// device is.
//
// Returns:
//   - ErrNoDevices if the list is empty
//   - The device if only one exists (auto-selects without prompting)
//   - The selected device based on user input
//   - ErrInvalidSelection if the selection is out of range
//   - ErrSelectionCancelled if input is EOF (e.g., Ctrl+D)
func (s *Selector) SelectDevice(current string, devices []string) (string, error) {
	if len(devices) == 0 {
		return "", ErrNoDevices
	}

	if len(devices) == 1 {
		return devices[0], nil
	}

	def := max(slices.Index(devices, current), 0) + 1

	fmt.Fprintln(s.writer, "Audio devices:")
	for i, d := range devices {
		marker := " "
		if d == current {
			marker = "*"
		}
		fmt.Fprintf(s.writer, " %s[%d] %s\n", marker, i+1, d)
	}
	fmt.Fprintf(s.writer, "Select [%d]: ", def)

	reader := bufio.NewReader(s.reader)
	input, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", ErrSelectionCancelled
		}
		return "", errors.Wrap(err, "reading selection")
	}

	input = strings.TrimSpace(input)
	if input == "" {
		return devices[def-1], nil
	}

	selection, err := strconv.Atoi(input)
	if err != nil {
		return "", errors.Wrapf(ErrInvalidSelection, "%q is not a number", input)
	}

	// 1-indexed
	if selection < 1 || selection > len(devices) {
		return "", errors.Wrapf(ErrInvalidSelection, "%d is out of range [1-%d]", selection, len(devices))
	}

	return devices[selection-1], nil
}

// SelectDeviceDefault is a convenience function that uses stdin/stdout.
func SelectDeviceDefault(current string, devices []string) (string, error) {
	return NewSelector().SelectDevice(current, devices)
}
