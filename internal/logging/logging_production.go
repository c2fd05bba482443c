//go:build production

package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

type logCloser struct {
	file *os.File
}

func (l *logCloser) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// Setup writes info-level logs to a daily file under ~/.takt/logs and
// mirrors them to stderr.
func Setup() (io.Closer, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	logDir := filepath.Join(homeDir, ".takt", "logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	logFile := filepath.Join(logDir, fmt.Sprintf("takt_%s.log", time.Now().Format("2006-01-02")))
	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	level.Set(slog.LevelInfo)
	opts := &slog.HandlerOptions{Level: level}
	handler := NewMultiHandler(
		slog.NewTextHandler(file, opts),
		slog.NewTextHandler(os.Stderr, opts),
	)
	slog.SetDefault(slog.New(handler))

	slog.Info("logging initialized", "file", logFile)

	return &logCloser{file: file}, nil
}
