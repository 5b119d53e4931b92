package bounce

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/phanxgames/platform"
)

// Config is everything the demo needs. DefaultConfig reproduces the
// classic demo; a TOML file may override any subset of it:
//
//	[window]
//	title = "Test Platform"
//	width = 800
//	height = 600
//	background = "#000064"
//
//	[rect]
//	x = 200.0
//	y = 300
//	size = 50
//	speed = 100.0
//	color = "#ff0000"
//
//	[loop]
//	sleep = "2ms"
type Config struct {
	Window platform.WindowConfig `toml:"window"`
	Rect   RectConfig            `toml:"rect"`
	Loop   LoopConfig            `toml:"loop"`
}

// RectConfig describes the moving rectangle.
type RectConfig struct {
	X     float64        `toml:"x"`
	Y     int            `toml:"y"`
	Size  int            `toml:"size"`
	Speed float64        `toml:"speed"` // pixels per second, signed
	Color platform.Color `toml:"color"`
	ID    int            `toml:"id"`

	// FlashColor is faded back to Color after every bounce when
	// FlashSeconds is positive.
	FlashColor   platform.Color `toml:"flash_color"`
	FlashSeconds float64        `toml:"flash_seconds"`
}

// LoopConfig controls the frame loop.
type LoopConfig struct {
	Sleep        Duration `toml:"sleep"`
	BackgroundID int      `toml:"background_id"`
}

// Duration is a time.Duration that decodes from strings like "2ms".
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// DefaultConfig returns the classic demo: an 800x600 dark blue window with
// a 50 pixel red square moving right at 100 px/s from x=200.
func DefaultConfig() Config {
	return Config{
		Window: platform.WindowConfig{
			Title:      "Test Platform",
			Width:      800,
			Height:     600,
			Background: platform.Color{R: 0, G: 0, B: 100, A: 255},
		},
		Rect: RectConfig{
			X:          200,
			Y:          300,
			Size:       50,
			Speed:      100,
			Color:      platform.Color{R: 255, G: 0, B: 0, A: 255},
			ID:         2,
			FlashColor: platform.ColorWhite,
		},
		Loop: LoopConfig{
			Sleep:        Duration(2 * time.Millisecond),
			BackgroundID: 1,
		},
	}
}

// Validate reports settings the demo cannot run with.
func (c Config) Validate() error {
	var errs []error
	if err := c.Window.Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.Rect.Size <= 0 {
		errs = append(errs, fmt.Errorf("rect size must be positive, got %d", c.Rect.Size))
	} else if c.Rect.Size > c.Window.Width {
		errs = append(errs, fmt.Errorf("rect size %d exceeds window width %d", c.Rect.Size, c.Window.Width))
	}
	if c.Rect.ID == 0 || c.Rect.ID == c.Loop.BackgroundID {
		errs = append(errs, fmt.Errorf("rect id must be non-zero and differ from background id %d", c.Loop.BackgroundID))
	}
	if c.Loop.Sleep < 0 {
		errs = append(errs, fmt.Errorf("loop sleep must not be negative, got %v", time.Duration(c.Loop.Sleep)))
	}
	if c.Rect.FlashSeconds < 0 {
		errs = append(errs, fmt.Errorf("flash_seconds must not be negative, got %v", c.Rect.FlashSeconds))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// ParseConfig decodes TOML over DefaultConfig. Unknown keys are rejected.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses a TOML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
