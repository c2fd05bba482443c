// Package traycheck verifies before startup that the desktop can show a
// tray icon at all.
package traycheck

import (
	"errors"
	"slices"
)

// ErrNoTray is returned when no system tray host is running.
var ErrNoTray = errors.New("no system tray available")

const statusNotifierWatcher = "org.kde.StatusNotifierWatcher"

// hasWatcher reports whether a StatusNotifierItem host is among the bus names.
func hasWatcher(names []string) bool {
	return slices.Contains(names, statusNotifierWatcher)
}
