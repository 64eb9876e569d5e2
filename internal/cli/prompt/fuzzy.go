package prompt

import (
	"fmt"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/thoreinstein/emucfg/internal/errors"
)

// FinderFunc matches the signature of fuzzyfinder.Find for string lists.
type FinderFunc func(items []string, itemFunc func(i int) string, opts ...fuzzyfinder.Option) (int, error)

// FuzzySelectDevice opens a full-screen fuzzy finder over devices. Escape
// or Ctrl+C return ErrSelectionCancelled.
func FuzzySelectDevice(current string, devices []string) (string, error) {
	find := func(items []string, itemFunc func(i int) string, opts ...fuzzyfinder.Option) (int, error) {
		return fuzzyfinder.Find(items, itemFunc, opts...)
	}
	return fuzzySelect(find, current, devices)
}

func fuzzySelect(find FinderFunc, current string, devices []string) (string, error) {
	if len(devices) == 0 {
		return "", ErrNoDevices
	}

	idx, err := find(
		devices,
		func(i int) string {
			return devices[i]
		},
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			status := "available"
			if devices[i] == current {
				status = "current"
			}
			return fmt.Sprintf("Device: %s\nStatus: %s", devices[i], status)
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return "", ErrSelectionCancelled
		}
		return "", errors.Wrap(err, "device finder failed")
	}
	return devices[idx], nil
}
