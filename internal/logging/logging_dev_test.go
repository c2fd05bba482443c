//go:build !production

package logging

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	closer, err := Setup()
	require.NoError(t, err)
	assert.True(t, slog.Default().Enabled(t.Context(), slog.LevelDebug))
	assert.NoError(t, closer.Close())
}

func TestEnableDebug(t *testing.T) {
	t.Cleanup(func() { level.Set(slog.LevelInfo) })

	level.Set(slog.LevelInfo)
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: level})
	assert.False(t, h.Enabled(t.Context(), slog.LevelDebug))

	EnableDebug()
	assert.True(t, h.Enabled(t.Context(), slog.LevelDebug))
}
