package main

import (
	_ "embed"
	"fmt"

	"takt/internal/icon"
	"takt/internal/shell"
)

//go:embed icons/tray.png
var trayIdleIcon []byte

//go:embed icons/tray-recording.png
var trayRecordingIcon []byte

// loadTrayAssets scales both bundled glyphs to the tray height. A glyph
// that cannot be decoded stops the launch.
func loadTrayAssets(size int) (shell.Assets, error) {
	idle, err := prepareGlyph("idle", trayIdleIcon, size)
	if err != nil {
		return shell.Assets{}, err
	}

	recording, err := prepareGlyph("recording", trayRecordingIcon, size)
	if err != nil {
		return shell.Assets{}, err
	}

	assets := shell.Assets{Idle: idle, Recording: recording}
	return assets, assets.Validate()
}

func prepareGlyph(name string, data []byte, size int) ([]byte, error) {
	if err := icon.Validate(data); err != nil {
		return nil, fmt.Errorf("%s tray icon: %w", name, err)
	}
	out, err := icon.Normalize(data, size)
	if err != nil {
		return nil, fmt.Errorf("%s tray icon: %w", name, err)
	}
	return out, nil
}
