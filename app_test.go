package main

import (
	"context"
	"testing"

	"takt/internal/config"
	"takt/internal/database"
	"takt/internal/shell"
	"takt/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wailsapp/wails/v3/pkg/application"
)

type recordingTray struct{ icons [][]byte }

func (r *recordingTray) SetIcon(data []byte) error {
	r.icons = append(r.icons, data)
	return nil
}

type stubWindow struct {
	visible   bool
	positions [][2]int
}

func (w *stubWindow) IsVisible() (bool, error) { return w.visible, nil }
func (w *stubWindow) Focus() error             { return nil }

func (w *stubWindow) Hide() error {
	w.visible = false
	return nil
}

func (w *stubWindow) Show() error {
	w.visible = true
	return nil
}

func (w *stubWindow) SetPosition(x, y int) error {
	w.positions = append(w.positions, [2]int{x, y})
	return nil
}

func newTestApp(t *testing.T) (*App, *recordingTray, *stubWindow) {
	t.Helper()

	db, err := database.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	cfg := &config.Config{Placement: shell.DefaultPlacement(), FailurePolicy: shell.FailLog}
	a := NewApp(cfg, storage.NewPlacementStore(storage.NewSettingsService(db)))

	tray := &recordingTray{}
	window := &stubWindow{}
	a.shell = shell.New(shell.Options{
		Tray:      tray,
		Window:    window,
		Assets:    shell.Assets{Idle: []byte("idle"), Recording: []byte("rec")},
		Placement: cfg.Placement,
		OnFailure: a.fail,
	})
	return a, tray, window
}

func TestApp_SetRecording(t *testing.T) {
	a, tray, _ := newTestApp(t)

	a.SetRecording(true)
	assert.True(t, a.IsRecording())
	a.SetRecording(false)
	assert.False(t, a.IsRecording())
	a.SetRecording(false)

	assert.Equal(t, [][]byte{[]byte("rec"), []byte("idle")}, tray.icons)
}

func TestApp_CalibratePersistsAndApplies(t *testing.T) {
	a, _, window := newTestApp(t)

	require.NoError(t, a.Calibrate(323, "top"))
	assert.Equal(t, Calibration{HorizontalOffset: 323, Anchor: "top"}, a.Calibration())

	a.shell.TrayLeftClick(shell.TrayClick{Position: shell.Point{X: 500, Y: 50}, IconSize: shell.Size{Width: 44, Height: 22}})
	assert.Equal(t, [][2]int{{155, 0}}, window.positions)

	stored, err := a.placements.Load(context.Background(), shell.DefaultPlacement())
	require.NoError(t, err)
	assert.Equal(t, shell.Placement{HorizontalOffset: 323, Anchor: shell.AnchorTop}, stored)

	require.NoError(t, a.ResetCalibration())
	assert.Equal(t, Calibration{HorizontalOffset: shell.DefaultHorizontalOffset, Anchor: "click"}, a.Calibration())
}

func TestApp_CalibrateRejectsUnknownAnchor(t *testing.T) {
	a, _, _ := newTestApp(t)

	assert.Error(t, a.Calibrate(300, "middle"))
	assert.Equal(t, shell.DefaultHorizontalOffset, a.Calibration().HorizontalOffset)
}

func TestApp_ServiceLifecycleWithoutRelay(t *testing.T) {
	a, tray, _ := newTestApp(t)

	require.NoError(t, a.ServiceStartup(context.Background(), application.ServiceOptions{}))
	assert.Equal(t, [][]byte{[]byte("idle")}, tray.icons)
	assert.Nil(t, a.relay)
	assert.NoError(t, a.ServiceShutdown())
}

func TestApp_WindowClosingHidesThroughShell(t *testing.T) {
	a, _, window := newTestApp(t)

	a.shell.TrayLeftClick(shell.TrayClick{Position: shell.Point{X: 500, Y: 50}, IconSize: shell.Size{Width: 44, Height: 22}})
	require.True(t, window.visible)

	e := application.NewWindowEvent()
	a.onWindowClosing(e)
	assert.True(t, e.IsCancelled())
	assert.False(t, window.visible)
	assert.Len(t, window.positions, 1)
}
