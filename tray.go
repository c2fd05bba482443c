package main

import (
	"errors"
	"fmt"

	"takt/internal/shell"

	"github.com/wailsapp/wails/v3/pkg/application"
)

var (
	errNoTray     = errors.New("system tray not created")
	errNoWindow   = errors.New("main window not created")
	errNoGeometry = errors.New("host reported no tray geometry")
)

// trayHost exposes the wails system tray as a shell.Tray.
type trayHost struct {
	tray *application.SystemTray
}

func (t trayHost) SetIcon(data []byte) error {
	if t.tray == nil {
		return errNoTray
	}
	t.tray.SetIcon(data)
	return nil
}

// windowHost exposes the wails main window as a shell.Window. Wails window
// calls cannot fail once the window exists.
type windowHost struct {
	window *application.WebviewWindow
}

func (w windowHost) IsVisible() (bool, error) {
	if w.window == nil {
		return false, errNoWindow
	}
	return w.window.IsVisible(), nil
}

func (w windowHost) Hide() error {
	if w.window == nil {
		return errNoWindow
	}
	w.window.Hide()
	return nil
}

func (w windowHost) Show() error {
	if w.window == nil {
		return errNoWindow
	}
	w.window.Show()
	return nil
}

func (w windowHost) Focus() error {
	if w.window == nil {
		return errNoWindow
	}
	w.window.Focus()
	return nil
}

func (w windowHost) SetPosition(x, y int) error {
	if w.window == nil {
		return errNoWindow
	}
	w.window.SetPosition(x, y)
	return nil
}

// trayLocator resolves a tray click the way wails anchors an attached
// window: the hidden window is placed against the tray by the host, and the
// click is read back from that rectangle. Wails does not expose the tray
// bounds themselves. iconSize is the size of the glyph handed to the tray.
func trayLocator(tray *application.SystemTray, window *application.WebviewWindow, iconSize shell.Size) shell.ClickLocator {
	return func() (shell.TrayClick, error) {
		if tray == nil {
			return shell.TrayClick{}, errNoTray
		}
		if window == nil {
			return shell.TrayClick{}, errNoWindow
		}
		if err := tray.PositionWindow(window, 0); err != nil {
			return shell.TrayClick{}, fmt.Errorf("failed to anchor window to tray: %w", err)
		}
		return clickFromAnchor(window.Bounds(), iconSize)
	}
}

// clickFromAnchor takes the top centre of the tray-anchored window as the
// click. An empty rectangle means the host could not place the window.
func clickFromAnchor(anchored application.Rect, iconSize shell.Size) (shell.TrayClick, error) {
	if anchored.Width <= 0 || anchored.Height <= 0 {
		return shell.TrayClick{}, errNoGeometry
	}
	return shell.TrayClick{
		Position: shell.Point{X: anchored.X + anchored.Width/2, Y: anchored.Y},
		IconSize: iconSize,
	}, nil
}
