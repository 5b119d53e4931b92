package platform

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ColorTween animates the four channels of a Color from one value to
// another. Call Update(dt) each frame and draw with the returned color.
//
// There is no global animation manager; callers own their tweens.
type ColorTween struct {
	tweens  [4]*gween.Tween
	current Color
	target  Color
	Done    bool
}

// TweenColor creates a ColorTween from `from` to `to` over duration seconds
// using the easing function.
func TweenColor(from, to Color, duration float32, fn ease.TweenFunc) *ColorTween {
	ch := func(a, b uint8) *gween.Tween {
		return gween.New(float32(a), float32(b), duration, fn)
	}
	return &ColorTween{
		tweens: [4]*gween.Tween{
			ch(from.R, to.R),
			ch(from.G, to.G),
			ch(from.B, to.B),
			ch(from.A, to.A),
		},
		current: from,
		target:  to,
		Done:    duration <= 0,
	}
}

// Update advances the tween by dt seconds and returns the interpolated
// color. Once Done, the final color is returned unchanged.
func (t *ColorTween) Update(dt float32) Color {
	if t.Done {
		t.current = t.target
		return t.current
	}
	allDone := true
	var out [4]uint8
	for i, tw := range t.tweens {
		v, finished := tw.Update(dt)
		out[i] = channel(v)
		if !finished {
			allDone = false
		}
	}
	t.current = Color{R: out[0], G: out[1], B: out[2], A: out[3]}
	t.Done = allDone
	return t.current
}

// Color returns the most recently computed color.
func (t *ColorTween) Color() Color {
	return t.current
}

func channel(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v + 0.5)
	}
}
