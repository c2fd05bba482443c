package storage

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"takt/internal/shell"
)

const (
	KeyHorizontalOffset = "tray.horizontal_offset"
	KeyVerticalAnchor   = "tray.vertical_anchor"
)

// PlacementStore persists the tray placement calibration. Stored values
// override the configured defaults key by key.
type PlacementStore struct {
	settings *SettingsService
}

func NewPlacementStore(settings *SettingsService) *PlacementStore {
	return &PlacementStore{settings: settings}
}

// Load returns defaults overlaid with whatever calibration is stored. A
// stored value that no longer parses is ignored with a warning.
func (p *PlacementStore) Load(ctx context.Context, defaults shell.Placement) (shell.Placement, error) {
	placement := defaults

	raw, ok, err := p.settings.Get(ctx, KeyHorizontalOffset)
	if err != nil {
		return defaults, fmt.Errorf("failed to read %s: %w", KeyHorizontalOffset, err)
	}
	if ok {
		offset, err := strconv.Atoi(raw)
		if err != nil {
			slog.Warn("ignoring stored horizontal offset", "value", raw, "error", err)
		} else {
			placement.HorizontalOffset = offset
		}
	}

	raw, ok, err = p.settings.Get(ctx, KeyVerticalAnchor)
	if err != nil {
		return defaults, fmt.Errorf("failed to read %s: %w", KeyVerticalAnchor, err)
	}
	if ok {
		anchor, err := shell.ParseVerticalAnchor(raw)
		if err != nil {
			slog.Warn("ignoring stored vertical anchor", "value", raw, "error", err)
		} else {
			placement.Anchor = anchor
		}
	}

	return placement, nil
}

func (p *PlacementStore) Save(ctx context.Context, placement shell.Placement) error {
	if err := p.settings.Set(ctx, KeyHorizontalOffset, strconv.Itoa(placement.HorizontalOffset)); err != nil {
		return fmt.Errorf("failed to save %s: %w", KeyHorizontalOffset, err)
	}
	if err := p.settings.Set(ctx, KeyVerticalAnchor, placement.Anchor.String()); err != nil {
		return fmt.Errorf("failed to save %s: %w", KeyVerticalAnchor, err)
	}
	return nil
}

// Reset drops the stored calibration so the defaults apply again.
func (p *PlacementStore) Reset(ctx context.Context) error {
	for _, key := range []string{KeyHorizontalOffset, KeyVerticalAnchor} {
		if err := p.settings.Delete(ctx, key); err != nil {
			return fmt.Errorf("failed to delete %s: %w", key, err)
		}
	}
	return nil
}
