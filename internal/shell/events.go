// Package shell implements the tray and window state machine of the desktop
// shell: the tray glyph follows the recording signal, and a tray left click
// toggles the main window, positioning it next to the tray icon when it is
// shown.
//
// Host primitives are reached only through the Tray and Window capabilities,
// and events reach the controllers only through a Dispatcher.
package shell

import (
	"errors"
	"fmt"
)

// ErrHostUnavailable wraps every failure of a host tray or window call.
var ErrHostUnavailable = errors.New("host unavailable")

// Point is a whole-pixel screen coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Size is a whole-pixel rectangle size.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// TrayClick is produced by the host on each tray left click.
type TrayClick struct {
	Position Point `json:"position"`
	IconSize Size  `json:"iconSize"`
}

// RecordingSignal is the recording state published by the recorder.
type RecordingSignal bool

// Visibility is the host window's visibility.
type Visibility int

const (
	Hidden Visibility = iota
	Visible
)

func (v Visibility) String() string {
	if v == Visible {
		return "visible"
	}
	return "hidden"
}

// Tray is the host tray handle.
type Tray interface {
	SetIcon(data []byte) error
}

// Window is the host main-window handle.
type Window interface {
	IsVisible() (bool, error)
	Hide() error
	Show() error
	Focus() error
	SetPosition(x, y int) error
}

// EventKind names an event delivered through a Dispatcher.
type EventKind string

const (
	KindRecordingChanged EventKind = "recording"
	KindTrayLeftClick    EventKind = "tray:left-click"
	KindWindowClosing    EventKind = "window:closing"
)

// Event is anything a Dispatcher can deliver.
type Event interface {
	Kind() EventKind
}

// RecordingChanged carries a normalised recording notification.
type RecordingChanged struct {
	Signal RecordingSignal
}

func (RecordingChanged) Kind() EventKind { return KindRecordingChanged }

// ClickLocator asks the host where a tray click happened. It is only called
// when the window is about to be shown.
type ClickLocator func() (TrayClick, error)

// TrayLeftClick carries the geometry of a tray left click. A non-nil Locate
// replaces Click for hosts that resolve the geometry on demand.
type TrayLeftClick struct {
	Click  TrayClick
	Locate ClickLocator
}

func (TrayLeftClick) Kind() EventKind { return KindTrayLeftClick }

// WindowClosing is sent when the user closes the main window.
type WindowClosing struct{}

func (WindowClosing) Kind() EventKind { return KindWindowClosing }

func hostError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrHostUnavailable, err)
}
