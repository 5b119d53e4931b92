package platform

import (
	"image/color"
	"testing"
)

// --- Color ---

func TestColorUnmarshalText(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#ff0000", Color{255, 0, 0, 255}, false},
		{"#000064ff", Color{0, 0, 100, 255}, false},
		{"00ff0080", Color{0, 255, 0, 128}, false},
		{"  #FFFFFF ", ColorWhite, false},
		{"#fff", Color{}, true},
		{"#gg0000", Color{}, true},
		{"", Color{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var c Color
			err := c.UnmarshalText([]byte(tt.in))
			if (err != nil) != tt.wantErr {
				t.Fatalf("UnmarshalText(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && c != tt.want {
				t.Errorf("UnmarshalText(%q) = %v, want %v", tt.in, c, tt.want)
			}
		})
	}
}

func TestColorString(t *testing.T) {
	if got := (Color{0, 0, 100, 255}).String(); got != "#000064ff" {
		t.Errorf("String() = %q, want %q", got, "#000064ff")
	}
}

func TestColorImplementsColor(t *testing.T) {
	var c color.Color = Color{R: 255, A: 128}
	r, g, b, a := c.RGBA()
	// Premultiplied: red scaled by alpha.
	if a != 0x8080 || r != 0x8080 || g != 0 || b != 0 {
		t.Errorf("RGBA() = %#x %#x %#x %#x", r, g, b, a)
	}
}

// --- Rect ---

func TestRectContains(t *testing.T) {
	r := Rect{10, 20, 100, 50}
	tests := []struct {
		name   string
		x, y   int
		expect bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"last pixel", 109, 69, true},
		{"right edge exclusive", 110, 40, false},
		{"bottom edge exclusive", 50, 70, false},
		{"outside left", 9, 40, false},
		{"outside above", 50, 19, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.expect {
				t.Errorf("Rect%v.Contains(%d, %d) = %v, want %v", r, tt.x, tt.y, got, tt.expect)
			}
		})
	}
}

func TestRectIntersects(t *testing.T) {
	base := Rect{10, 10, 100, 100}
	tests := []struct {
		name   string
		other  Rect
		expect bool
	}{
		{"overlapping", Rect{50, 50, 100, 100}, true},
		{"fully contained", Rect{20, 20, 10, 10}, true},
		{"containing", Rect{0, 0, 200, 200}, true},
		{"adjacent right", Rect{110, 10, 50, 50}, false},
		{"adjacent bottom", Rect{10, 110, 50, 50}, false},
		{"one pixel overlap", Rect{109, 109, 5, 5}, true},
		{"disjoint left", Rect{-100, 10, 50, 50}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.expect {
				t.Errorf("Intersects(%v) = %v, want %v", tt.other, got, tt.expect)
			}
		})
	}
}

// --- EventKind ---

func TestEventKindStringRoundTrip(t *testing.T) {
	for k := EventExit; k <= EventExpose; k++ {
		got, err := ParseEventKind(k.String())
		if err != nil {
			t.Fatalf("ParseEventKind(%q): %v", k.String(), err)
		}
		if got != k {
			t.Errorf("ParseEventKind(%q) = %v, want %v", k.String(), got, k)
		}
	}
}

func TestParseEventKindAliases(t *testing.T) {
	if k, err := ParseEventKind(" Escape "); err != nil || k != EventKeyEsc {
		t.Errorf("ParseEventKind(Escape) = %v, %v", k, err)
	}
	if _, err := ParseEventKind("f13"); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestEventKindStringUnknown(t *testing.T) {
	if got := EventKind(200).String(); got != "EventKind(200)" {
		t.Errorf("String() = %q", got)
	}
}

func TestEventKindIsClick(t *testing.T) {
	for _, k := range []EventKind{EventLeftClick, EventRightClick, EventMiddleClick} {
		if !k.IsClick() {
			t.Errorf("%v.IsClick() = false", k)
		}
	}
	if EventKeySpace.IsClick() {
		t.Error("space should not be a click")
	}
}

// --- WindowConfig ---

func TestDefaultWindowConfig(t *testing.T) {
	cfg := DefaultWindowConfig()
	if cfg.Title != "Hello, World" || cfg.Width != 700 || cfg.Height != 700 {
		t.Errorf("DefaultWindowConfig() = %+v", cfg)
	}
	if cfg.Background != ColorWhite {
		t.Errorf("Background = %v, want white", cfg.Background)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestWindowConfigValidate(t *testing.T) {
	if err := (WindowConfig{Width: 0, Height: 10}).Validate(); err == nil {
		t.Error("expected error for zero width")
	}
	if err := (WindowConfig{Width: 10, Height: -1}).Validate(); err == nil {
		t.Error("expected error for negative height")
	}
}
