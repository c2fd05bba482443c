// Package icon prepares the tray glyphs before they are handed to the host.
//
// Bundled PNGs are decoded once at startup and rescaled to the tray height,
// so a corrupt asset fails the launch instead of the first icon update.
package icon

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"

	"golang.org/x/image/draw"
)

// DefaultSize is the tray icon height on retina displays (22pt at 2x).
const DefaultSize = 44

// Validate reports whether data is a decodable PNG.
func Validate(data []byte) error {
	if len(data) == 0 {
		return errors.New("empty icon")
	}
	if _, err := png.DecodeConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("decode png header: %w", err)
	}
	return nil
}

// Normalize rescales a PNG to a size×size square. Icons already at that
// size are returned unchanged.
func Normalize(data []byte, size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid icon size %d", size)
	}

	src, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode png: %w", err)
	}

	b := src.Bounds()
	if b.Dx() == size && b.Dy() == size {
		return data, nil
	}

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
