package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/thoreinstein/emucfg/internal/errors"
)

// Format is the encoding of the primary log stream.
type Format string

const (
	// FormatText is the colorized, human-oriented encoding.
	FormatText Format = "text"
	// FormatJSON is one JSON object per record.
	FormatJSON Format = "json"
)

// DebugEnv raises verbosity when no -v flag is given: "1" or "true" selects
// debug, "2" selects trace.
const DebugEnv = "EMUCFG_DEBUG"

// ErrUnknownFormat is returned by ParseFormat for anything but text or json.
var ErrUnknownFormat = errors.New("unknown log format")

// ParseFormat resolves a --log-format value. Empty means text.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", errors.Wrapf(ErrUnknownFormat, "%q (want text or json)", s)
	}
}

// Config describes the logger a command runs with.
type Config struct {
	Level  slog.Level
	Format Format
	// Output receives the primary stream. Nil means os.Stderr.
	Output io.Writer
	// File, when set, receives a JSON copy of every record that passes Level,
	// whatever Format is.
	File io.Writer
}

// New builds the logger described by cfg.
func New(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: cfg.Level}

	var primary slog.Handler
	if cfg.Format == FormatJSON {
		primary = slog.NewJSONHandler(out, opts)
	} else {
		primary = NewHandler(out, opts)
	}
	if cfg.File == nil {
		return slog.New(primary)
	}
	return slog.New(fanout{primary, slog.NewJSONHandler(cfg.File, opts)})
}

// Verbosity returns the effective -v count. A non-zero flag count wins;
// otherwise DebugEnv is consulted through lookup.
func Verbosity(flagCount int, lookup func(string) (string, bool)) int {
	if flagCount != 0 || lookup == nil {
		return flagCount
	}
	val, ok := lookup(DebugEnv)
	if !ok {
		return 0
	}
	switch strings.TrimSpace(val) {
	case "1", "true":
		return 2
	case "2":
		return 3
	}
	return 0
}

// NewDiscard returns a logger that drops everything. Packages default to it
// so they stay silent until a caller injects a logger.
func NewDiscard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// testWriter forwards handler output to t.Log, one call per record.
type testWriter struct {
	t *testing.T
}

func (w *testWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}

// ForTest returns a trace-level logger whose output shows up with the
// test's own log, i.e. on failure or under -v.
func ForTest(t *testing.T) *slog.Logger {
	t.Helper()
	return New(Config{Level: LevelTrace, Output: &testWriter{t: t}})
}
