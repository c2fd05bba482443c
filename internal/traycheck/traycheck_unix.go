//go:build linux || freebsd || openbsd || netbsd || dragonfly

package traycheck

import (
	"fmt"
	"log/slog"

	"github.com/godbus/dbus/v5"
)

// HealthCheck asks the D-Bus session bus whether a StatusNotifierWatcher is
// registered. Without one the tray icon would never appear.
func HealthCheck() error {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return fmt.Errorf("failed to connect to D-Bus session bus: %w", err)
	}
	defer func() {
		if err := conn.Close(); err != nil {
			slog.Debug("failed to close D-Bus connection", "error", err)
		}
	}()

	var names []string
	if err := conn.BusObject().Call("org.freedesktop.DBus.ListNames", 0).Store(&names); err != nil {
		return fmt.Errorf("failed to query D-Bus services: %w", err)
	}

	if !hasWatcher(names) {
		return fmt.Errorf("%w: %s is not registered", ErrNoTray, statusNotifierWatcher)
	}

	slog.Debug("status notifier watcher found", "service", statusNotifierWatcher)
	return nil
}
