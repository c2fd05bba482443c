//go:build production

package database

import (
	"fmt"
	"os"
	"path/filepath"

	"takt/internal/config"
)

// Path returns the settings database in the user's ~/.takt, creating the
// directory on first launch.
func Path() (string, error) {
	dir, err := config.Dir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}
	return filepath.Join(dir, "takt.db"), nil
}
