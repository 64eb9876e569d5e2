package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/emucfg/internal/errors"
)

type failingHandler struct {
	slog.Handler
	err error
}

func (h failingHandler) Handle(context.Context, slog.Record) error { return h.err }

func TestFanout_PerHandlerLevels(t *testing.T) {
	var warn, debug bytes.Buffer
	f := fanout{
		slog.NewTextHandler(&warn, &slog.HandlerOptions{Level: slog.LevelWarn}),
		slog.NewTextHandler(&debug, &slog.HandlerOptions{Level: slog.LevelDebug}),
	}
	ctx := context.Background()

	assert.True(t, f.Enabled(ctx, slog.LevelDebug))
	assert.False(t, f.Enabled(ctx, LevelTrace))

	logger := slog.New(f).WithGroup("audio").With("device", "Speakers")
	logger.Debug("probing")

	assert.Empty(t, warn.String())
	assert.Contains(t, debug.String(), "audio.device=Speakers")
}

func TestFanout_JoinsErrors(t *testing.T) {
	first := errors.New("first")
	second := errors.New("second")
	base := slog.NewTextHandler(&bytes.Buffer{}, nil)
	f := fanout{failingHandler{base, first}, failingHandler{base, second}}

	err := f.Handle(context.Background(), slog.NewRecord(time.Time{}, slog.LevelError, "x", 0))

	require.Error(t, err)
	assert.ErrorIs(t, err, first)
	assert.ErrorIs(t, err, second)
}
