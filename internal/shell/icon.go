package shell

import (
	"errors"
	"log/slog"
	"sync/atomic"
)

// IconAsset selects one of the two tray glyphs.
type IconAsset int

const (
	IconIdle IconAsset = iota
	IconRecording
)

func (a IconAsset) String() string {
	if a == IconRecording {
		return "recording"
	}
	return "idle"
}

// Assets holds the raster bytes of both tray glyphs.
type Assets struct {
	Idle      []byte
	Recording []byte
}

func (a Assets) bytes(asset IconAsset) []byte {
	if asset == IconRecording {
		return a.Recording
	}
	return a.Idle
}

// Validate reports whether both glyphs are present.
func (a Assets) Validate() error {
	if len(a.Idle) == 0 {
		return errors.New("idle tray icon is empty")
	}
	if len(a.Recording) == 0 {
		return errors.New("recording tray icon is empty")
	}
	return nil
}

// IconController keeps the tray glyph in sync with the latest recording
// signal.
type IconController struct {
	tray   Tray
	assets Assets
	logger *slog.Logger

	// current is read by Current from outside dispatch.
	current atomic.Int32
	shown   bool
}

func NewIconController(tray Tray, assets Assets, logger *slog.Logger) *IconController {
	if logger == nil {
		logger = slog.Default()
	}
	return &IconController{
		tray:   tray,
		assets: assets,
		logger: logger,
	}
}

// OnRecordingChanged shows the recording glyph for a true signal and the
// idle glyph otherwise. A signal that selects the glyph already shown does
// not touch the tray.
func (c *IconController) OnRecordingChanged(signal RecordingSignal) error {
	want := IconIdle
	if signal {
		want = IconRecording
	}

	if c.shown && c.Current() == want {
		c.logger.Debug("tray icon unchanged", "icon", want)
		return nil
	}

	if err := c.tray.SetIcon(c.assets.bytes(want)); err != nil {
		return hostError("set tray icon", err)
	}

	c.current.Store(int32(want))
	c.shown = true
	c.logger.Info("tray icon updated", "icon", want)
	return nil
}

// Current returns the glyph last applied to the tray.
func (c *IconController) Current() IconAsset {
	return IconAsset(c.current.Load())
}

// Handle adapts the controller to a Dispatcher.
func (c *IconController) Handle(ev Event) error {
	changed, ok := ev.(RecordingChanged)
	if !ok {
		return nil
	}
	return c.OnRecordingChanged(changed.Signal)
}
