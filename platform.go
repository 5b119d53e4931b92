package platform

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is an RGBA color with 8-bit channels. Not premultiplied.
// Premultiplication happens when a driver hands the color to its backend
// (Color satisfies color.Color for that purpose).
type Color struct {
	R, G, B, A uint8
}

var (
	// ColorWhite is the renderer's initial draw color.
	ColorWhite = Color{255, 255, 255, 255}
	// ColorBlack is opaque black.
	ColorBlack = Color{0, 0, 0, 255}
)

// NRGBA converts c to the standard library's non-premultiplied color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// RGBA implements color.Color and returns alpha-premultiplied values.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// String formats the color as #rrggbbaa.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText parses "#rrggbb" or "#rrggbbaa". The leading '#' is
// optional; a missing alpha channel means opaque.
func (c *Color) UnmarshalText(text []byte) error {
	s := strings.TrimPrefix(strings.TrimSpace(string(text)), "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("parse color %q: want #rrggbb or #rrggbbaa", text)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fmt.Errorf("parse color %q: %w", text, err)
	}
	if len(s) == 6 {
		v = v<<8 | 0xff
	}
	*c = Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
	return nil
}

// Rect is an axis-aligned integer rectangle in window pixels. The origin is
// the top-left corner with Y increasing downward.
type Rect struct {
	X, Y, Width, Height int
}

// Contains reports whether the pixel (x, y) lies inside the rectangle.
// The right and bottom edges are exclusive.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width &&
		y >= r.Y && y < r.Y+r.Height
}

// Intersects reports whether r and other share at least one pixel.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// State is what Window.ShouldRun reports.
type State uint8

const (
	StateRunning State = iota // the driver is alive and accepting frames
	StateClose                // the window was closed or the driver stopped
)

func (s State) String() string {
	if s == StateRunning {
		return "running"
	}
	return "close"
}

// EventKind identifies a polled event.
type EventKind uint8

const (
	EventExit        EventKind = iota // window close requested
	EventNone                         // no event has been polled yet
	EventLeftClick                    // primary mouse button pressed
	EventRightClick                   // secondary mouse button pressed
	EventMiddleClick                  // middle mouse button pressed
	EventKeyA                         // the A key
	EventKeyEsc                       // the Escape key
	EventKeyUp                        // arrow up
	EventKeyDown                      // arrow down
	EventKeyLeft                      // arrow left
	EventKeyRight                     // arrow right
	EventKeySpace                     // the space bar
	EventExpose                       // the surface was resized or needs repainting
)

var eventKindNames = [...]string{
	EventExit:        "exit",
	EventNone:        "none",
	EventLeftClick:   "left_click",
	EventRightClick:  "right_click",
	EventMiddleClick: "middle_click",
	EventKeyA:        "a",
	EventKeyEsc:      "esc",
	EventKeyUp:       "up",
	EventKeyDown:     "down",
	EventKeyLeft:     "left",
	EventKeyRight:    "right",
	EventKeySpace:    "space",
	EventExpose:      "expose",
}

func (k EventKind) String() string {
	if int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return fmt.Sprintf("EventKind(%d)", k)
}

// ParseEventKind maps a name produced by EventKind.String back to its kind.
// "escape" is accepted as an alias for "esc".
func ParseEventKind(name string) (EventKind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "escape" {
		return EventKeyEsc, nil
	}
	for k, n := range eventKindNames {
		if n == name {
			return EventKind(k), nil
		}
	}
	return EventNone, fmt.Errorf("unknown event kind %q", name)
}

// IsClick reports whether k is one of the mouse button kinds.
func (k EventKind) IsClick() bool {
	return k == EventLeftClick || k == EventRightClick || k == EventMiddleClick
}
