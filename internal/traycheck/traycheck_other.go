//go:build !linux && !freebsd && !openbsd && !netbsd && !dragonfly

package traycheck

// HealthCheck always succeeds; macOS and Windows always have a tray.
func HealthCheck() error {
	return nil
}
