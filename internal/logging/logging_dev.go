//go:build !production

package logging

import (
	"io"
	"log/slog"
	"os"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup logs everything from debug level up to stderr.
func Setup() (io.Closer, error) {
	level.Set(slog.LevelDebug)
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
	})
	slog.SetDefault(slog.New(handler))

	slog.Debug("development logging initialized")
	return nopCloser{}, nil
}
