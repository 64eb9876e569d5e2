package prompt

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/emucfg/internal/errors"
)

var devices = []string{"Speakers", "Headphones", "HDMI Output"}

func TestSelectDevice_EmptyList(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := NewSelectorWithIO(strings.NewReader(""), &buf)

	_, err := s.SelectDevice("", nil)
	if !errors.Is(err, ErrNoDevices) {
		t.Errorf("expected ErrNoDevices, got: %v", err)
	}
}

func TestSelectDevice_SingleItem(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := NewSelectorWithIO(strings.NewReader(""), &buf)

	result, err := s.SelectDevice("", []string{"Speakers"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != "Speakers" {
		t.Errorf("expected 'Speakers', got %q", result)
	}
	// Should not prompt for single item
	if buf.Len() > 0 {
		t.Errorf("expected no output for single item, got: %s", buf.String())
	}
}

func TestSelectDevice_ValidSelection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		current string
		input   string
		want    string
	}{
		{"explicit first", "", "1\n", "Speakers"},
		{"explicit third", "", "3\n", "HDMI Output"},
		{"default on empty", "", "\n", "Speakers"},
		{"default is current", "Headphones", "\n", "Headphones"},
		{"stale current defaults to first", "USB", "\n", "Speakers"},
		{"whitespace trimmed", "", "  2  \n", "Headphones"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			s := NewSelectorWithIO(strings.NewReader(tt.input), &buf)

			result, err := s.SelectDevice(tt.current, devices)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result != tt.want {
				t.Errorf("expected %q, got %q", tt.want, result)
			}
		})
	}
}

func TestSelectDevice_InvalidSelection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"too low", "0\n", "out of range"},
		{"too high", "4\n", "out of range"},
		{"negative", "-1\n", "out of range"},
		{"not a number", "abc\n", "not a number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			s := NewSelectorWithIO(strings.NewReader(tt.input), &buf)

			_, err := s.SelectDevice("", devices)
			if !errors.Is(err, ErrInvalidSelection) {
				t.Fatalf("expected ErrInvalidSelection, got: %v", err)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got: %v", tt.wantErr, err)
			}
		})
	}
}

func TestSelectDevice_Cancelled(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := NewSelectorWithIO(&eofReader{}, &buf)

	_, err := s.SelectDevice("", devices)
	if !errors.Is(err, ErrSelectionCancelled) {
		t.Errorf("expected ErrSelectionCancelled, got: %v", err)
	}
}

func TestSelectDevice_OutputFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := NewSelectorWithIO(strings.NewReader("1\n"), &buf)

	_, err := s.SelectDevice("Headphones", devices)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "Audio devices:") {
		t.Errorf("missing header in output: %s", output)
	}
	if !strings.Contains(output, "  [1] Speakers") {
		t.Errorf("missing first option in output: %s", output)
	}
	if !strings.Contains(output, " *[2] Headphones") {
		t.Errorf("current device not marked in output: %s", output)
	}
	if !strings.Contains(output, "Select [2]:") {
		t.Errorf("missing prompt in output: %s", output)
	}
}

func TestFuzzySelect(t *testing.T) {
	t.Parallel()

	pick := func(idx int, err error) FinderFunc {
		return func(items []string, itemFunc func(i int) string, _ ...fuzzyfinder.Option) (int, error) {
			// The item labels are the device names.
			for i := range items {
				if itemFunc(i) != items[i] {
					t.Errorf("item %d label %q, want %q", i, itemFunc(i), items[i])
				}
			}
			return idx, err
		}
	}

	got, err := fuzzySelect(pick(2, nil), "", devices)
	require.NoError(t, err)
	assert.Equal(t, "HDMI Output", got)

	_, err = fuzzySelect(pick(0, fuzzyfinder.ErrAbort), "", devices)
	assert.ErrorIs(t, err, ErrSelectionCancelled)

	_, err = fuzzySelect(pick(0, io.ErrUnexpectedEOF), "", devices)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	_, err = fuzzySelect(pick(0, nil), "", nil)
	assert.ErrorIs(t, err, ErrNoDevices)
}

// eofReader simulates immediate EOF (like Ctrl+D).
type eofReader struct{}

func (r *eofReader) Read(_ []byte) (int, error) {
	return 0, io.EOF
}
