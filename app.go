package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"takt/internal/config"
	"takt/internal/relay"
	"takt/internal/shell"
	"takt/internal/storage"

	"github.com/wailsapp/wails/v3/pkg/application"
	"github.com/wailsapp/wails/v3/pkg/events"
)

// App is the wails service behind the tray and the main window.
type App struct {
	app        *application.App
	cfg        *config.Config
	placements *storage.PlacementStore

	locate shell.ClickLocator
	shell  *shell.Shell
	fail   shell.FailureFunc
	relay  *relay.Server

	unsubscribe []func()
}

func NewApp(cfg *config.Config, placements *storage.PlacementStore) *App {
	return &App{
		cfg:        cfg,
		placements: placements,
		fail:       shell.NewFailureFunc(cfg.FailurePolicy, slog.Default(), os.Exit),
	}
}

// Attach wires the host handles into the shell and subscribes to the host
// events that drive it. It must run before the application starts.
func (a *App) Attach(app *application.App, tray *application.SystemTray, window *application.WebviewWindow, assets shell.Assets, placement shell.Placement) {
	a.app = app
	a.locate = trayLocator(tray, window, shell.Size{Width: a.cfg.IconSize, Height: a.cfg.IconSize})
	a.shell = shell.New(shell.Options{
		Tray:      trayHost{tray: tray},
		Window:    windowHost{window: window},
		Assets:    assets,
		Placement: placement,
		OnFailure: a.fail,
	})

	tray.OnClick(a.onTrayClick)
	window.RegisterHook(events.Common.WindowClosing, a.onWindowClosing)

	for _, name := range []string{shell.EventRecording, shell.EventRecordingStarted, shell.EventRecordingStopped} {
		a.unsubscribe = append(a.unsubscribe, app.Event.On(name, a.onRecordingEvent))
	}

	slog.Info("shell attached",
		"offset", placement.HorizontalOffset,
		"anchor", placement.Anchor,
		"failure_policy", a.cfg.FailurePolicy,
	)
}

func (a *App) onTrayClick() {
	a.shell.TrayActivated(a.locate)
}

// onWindowClosing keeps the window alive so the tray can reopen it.
func (a *App) onWindowClosing(e *application.WindowEvent) {
	e.Cancel()
	a.shell.WindowClosing()
}

func (a *App) onRecordingEvent(event *application.CustomEvent) {
	signal, ok := shell.SignalForEvent(event.Name, event.Data)
	if !ok {
		return
	}
	a.shell.Recording(signal)
}

// ServiceStartup shows the idle glyph and starts the recording relay when
// one is configured (Wails v3 lifecycle).
func (a *App) ServiceStartup(_ context.Context, _ application.ServiceOptions) error {
	a.shell.Recording(false)

	if a.cfg.RelayAddr == "" {
		return nil
	}
	a.relay = relay.New(a.shell, slog.Default().With("component", "relay"))
	if err := a.relay.Start(a.cfg.RelayAddr); err != nil {
		return fmt.Errorf("failed to start recording relay: %w", err)
	}
	return nil
}

// ServiceShutdown is called when the service stops (Wails v3 lifecycle).
func (a *App) ServiceShutdown() error {
	for _, off := range a.unsubscribe {
		off()
	}
	a.unsubscribe = nil

	if a.relay == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return a.relay.Close(ctx)
}

// SetRecording lets the frontend publish the recording state directly.
func (a *App) SetRecording(recording bool) {
	a.shell.Recording(shell.RecordingSignal(recording))
}

// IsRecording reports whether the recording glyph is showing.
func (a *App) IsRecording() bool {
	return a.shell.IconController().Current() == shell.IconRecording
}

type Calibration struct {
	HorizontalOffset int    `json:"horizontalOffset"`
	Anchor           string `json:"anchor"`
}

// Calibration returns the placement applied on the next show.
func (a *App) Calibration() Calibration {
	p := a.shell.WindowController().Placement()
	return Calibration{HorizontalOffset: p.HorizontalOffset, Anchor: p.Anchor.String()}
}

// Calibrate changes the window placement and remembers it across launches.
func (a *App) Calibrate(horizontalOffset int, anchor string) error {
	parsed, err := shell.ParseVerticalAnchor(anchor)
	if err != nil {
		return err
	}

	placement := shell.Placement{HorizontalOffset: horizontalOffset, Anchor: parsed}
	if err := a.placements.Save(context.Background(), placement); err != nil {
		return err
	}

	a.shell.WindowController().SetPlacement(placement)
	slog.Info("tray placement calibrated", "offset", horizontalOffset, "anchor", parsed)
	return nil
}

// ResetCalibration forgets the stored placement and returns to the
// configured one.
func (a *App) ResetCalibration() error {
	if err := a.placements.Reset(context.Background()); err != nil {
		return err
	}
	a.shell.WindowController().SetPlacement(a.cfg.Placement)
	slog.Info("tray placement reset", "offset", a.cfg.Placement.HorizontalOffset, "anchor", a.cfg.Placement.Anchor)
	return nil
}
