package platform

import (
	"errors"
	"fmt"
)

// WindowConfig describes the window to open. It is consumed once by
// NewWindow and never changes afterwards.
type WindowConfig struct {
	Title      string `toml:"title"`
	X          int    `toml:"x"`
	Y          int    `toml:"y"`
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Background Color  `toml:"background"` // initial clear color
}

// DefaultWindowConfig returns the configuration used when none is given:
// a 700x700 white window titled "Hello, World" at the screen origin.
func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Title:      "Hello, World",
		Width:      700,
		Height:     700,
		Background: ColorWhite,
	}
}

// Bounds returns the window's drawable area in window pixels.
func (c WindowConfig) Bounds() Rect {
	return Rect{Width: c.Width, Height: c.Height}
}

// Validate reports a configuration that no driver can open.
func (c WindowConfig) Validate() error {
	var errs []error
	if c.Width <= 0 {
		errs = append(errs, fmt.Errorf("width must be positive, got %d", c.Width))
	}
	if c.Height <= 0 {
		errs = append(errs, fmt.Errorf("height must be positive, got %d", c.Height))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("window config: %w", err)
	}
	return nil
}
