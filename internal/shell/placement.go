package shell

import (
	"fmt"
	"strings"
)

// VerticalAnchor decides the y coordinate of a shown window.
type VerticalAnchor int

const (
	// AnchorClick places the window at the y of the click.
	AnchorClick VerticalAnchor = iota
	// AnchorTop pins the window to the top edge of the screen.
	AnchorTop
)

func (a VerticalAnchor) String() string {
	if a == AnchorTop {
		return "top"
	}
	return "click"
}

// ParseVerticalAnchor accepts "click" or "top", case-insensitively.
func ParseVerticalAnchor(s string) (VerticalAnchor, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "click":
		return AnchorClick, nil
	case "top":
		return AnchorTop, nil
	default:
		return AnchorClick, fmt.Errorf("unknown vertical anchor %q (want click or top)", s)
	}
}

// DefaultHorizontalOffset compensates for the tray geometry reported on
// high-density displays. It is empirical and needs calibrating per platform.
const DefaultHorizontalOffset = 270

// Placement positions the window relative to a tray click.
type Placement struct {
	HorizontalOffset int            `json:"horizontalOffset"`
	Anchor           VerticalAnchor `json:"anchor"`
}

// DefaultPlacement returns the uncalibrated placement.
func DefaultPlacement() Placement {
	return Placement{
		HorizontalOffset: DefaultHorizontalOffset,
		Anchor:           AnchorClick,
	}
}

// Position computes where the window goes for a click. The result is not
// clamped to the screen.
func (p Placement) Position(click TrayClick) Point {
	x := click.Position.X - click.IconSize.Width/2 - p.HorizontalOffset

	y := click.Position.Y
	if p.Anchor == AnchorTop {
		y = 0
	}

	return Point{X: x, Y: y}
}
