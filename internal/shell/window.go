package shell

import (
	"log/slog"
	"sync"
)

// WindowController toggles the main window on tray left clicks.
type WindowController struct {
	window Window
	logger *slog.Logger

	mu        sync.RWMutex
	placement Placement
}

func NewWindowController(window Window, placement Placement, logger *slog.Logger) *WindowController {
	if logger == nil {
		logger = slog.Default()
	}
	return &WindowController{
		window:    window,
		placement: placement,
		logger:    logger,
	}
}

// Placement returns the placement used for the next show.
func (c *WindowController) Placement() Placement {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.placement
}

// SetPlacement replaces the placement; it takes effect on the next show.
func (c *WindowController) SetPlacement(p Placement) {
	c.mu.Lock()
	c.placement = p
	c.mu.Unlock()
}

// OnTrayLeftClick hides a visible window, or shows, focuses and positions a
// hidden one. Visibility is queried from the host on every click.
func (c *WindowController) OnTrayLeftClick(click TrayClick) error {
	return c.OnTrayActivated(func() (TrayClick, error) { return click, nil })
}

// OnTrayActivated is OnTrayLeftClick for hosts that report the click
// geometry on request. locate runs only on the way to showing the window,
// before Show.
func (c *WindowController) OnTrayActivated(locate ClickLocator) error {
	visible, err := c.window.IsVisible()
	if err != nil {
		return hostError("query window visibility", err)
	}

	if visible {
		if err := c.window.Hide(); err != nil {
			return hostError("hide window", err)
		}
		c.logger.Debug("window hidden")
		return nil
	}

	click, err := locate()
	if err != nil {
		return hostError("locate tray click", err)
	}

	if err := c.window.Show(); err != nil {
		return hostError("show window", err)
	}
	if err := c.window.Focus(); err != nil {
		return hostError("focus window", err)
	}

	placement := c.Placement()
	pos := placement.Position(click)
	if err := c.window.SetPosition(pos.X, pos.Y); err != nil {
		return hostError("position window", err)
	}

	c.logger.Debug("window shown",
		"click_x", click.Position.X,
		"click_y", click.Position.Y,
		"icon_width", click.IconSize.Width,
		"x", pos.X,
		"y", pos.Y,
		"offset", placement.HorizontalOffset,
		"anchor", placement.Anchor,
	)
	return nil
}

// OnWindowClosing hides the window instead of letting it be destroyed, so
// the tray can bring it back. It never repositions.
func (c *WindowController) OnWindowClosing() error {
	if err := c.window.Hide(); err != nil {
		return hostError("hide window", err)
	}
	c.logger.Debug("window hidden on close")
	return nil
}

func (c *WindowController) visibility() (Visibility, error) {
	visible, err := c.window.IsVisible()
	if err != nil {
		return Hidden, hostError("query window visibility", err)
	}
	if visible {
		return Visible, nil
	}
	return Hidden, nil
}

// Handle adapts the controller to a Dispatcher.
func (c *WindowController) Handle(ev Event) error {
	switch ev := ev.(type) {
	case TrayLeftClick:
		if ev.Locate != nil {
			return c.OnTrayActivated(ev.Locate)
		}
		return c.OnTrayLeftClick(ev.Click)
	case WindowClosing:
		return c.OnWindowClosing()
	default:
		return nil
	}
}
