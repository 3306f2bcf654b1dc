package slogpretty

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestPrettyHandler_Handle(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	opts := PrettyHandlerOptions{SlogOpts: &slog.HandlerOptions{Level: slog.LevelDebug}}
	log := slog.New(opts.NewPrettyHandler(&buf)).With(slog.String("component", "test"))

	log.Info("request sent", slog.Int("status", 200))

	out := buf.String()
	assert.Contains(t, out, "INFO:")
	assert.Contains(t, out, "request sent")
	assert.Contains(t, out, `"status": 200`)
	assert.Contains(t, out, `"component": "test"`)
}

func TestPrettyHandler_Enabled(t *testing.T) {
	opts := PrettyHandlerOptions{SlogOpts: &slog.HandlerOptions{Level: slog.LevelWarn}}
	h := opts.NewPrettyHandler(&bytes.Buffer{})

	require.NotNil(t, h)
	assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))
}
