// Package bounce is the bouncing rectangle demo: a square slides along the
// x axis, reversing on the window edges and on every space key press, until
// escape is pressed or the window closes.
package bounce

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/tanema/gween/ease"

	"github.com/phanxgames/platform"
)

// Sounder is notified of every bounce off a window edge.
type Sounder interface {
	Bounce()
}

// Demo owns the window, renderer and event source for one run.
type Demo struct {
	cfg   Config
	win   *platform.Window
	ren   *platform.Renderer
	evt   *platform.Event
	mover Mover
	flash *platform.ColorTween

	running bool
	last    time.Time

	// Now and Sleep default to the wall clock; tests replace them.
	Now   func() time.Time
	Sleep func(time.Duration)
	// Sound, when set, is told about edge bounces.
	Sound Sounder
	// AfterFrame, when set, runs after every presented frame of Run.
	AfterFrame func()

	frames   int
	flips    int
	reverses int
}

// Stats counts what happened during a run.
type Stats struct {
	Frames   int // loop iterations completed
	Bounces  int // edge reflections
	Reverses int // space key reversals
}

// New opens a window on d, paints the background and prepares the mover.
// The caller must Close the demo.
func New(cfg Config, d platform.Driver) (*Demo, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	win, err := platform.NewWindow(cfg.Window, d)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	if err := win.Show(); err != nil {
		_ = win.Close()
		return nil, err
	}

	ren := platform.NewRenderer(win)
	ren.SetDrawColor(cfg.Window.Background)
	ren.DrawRect(0, 0, cfg.Window.Width, cfg.Window.Height, true, cfg.Loop.BackgroundID)

	return &Demo{
		cfg: cfg,
		win: win,
		ren: ren,
		evt: platform.NewEvent(win),
		mover: Mover{
			X:        cfg.Rect.X,
			Velocity: cfg.Rect.Speed,
			Size:     float64(cfg.Rect.Size),
			Min:      0,
			Max:      float64(cfg.Window.Width),
		},
		running: true,
		Now:     time.Now,
		Sleep:   time.Sleep,
	}, nil
}

// Window returns the demo's window.
func (d *Demo) Window() *platform.Window {
	return d.win
}

// Renderer returns the demo's renderer.
func (d *Demo) Renderer() *platform.Renderer {
	return d.ren
}

// Mover returns the rectangle's current motion state.
func (d *Demo) Mover() Mover {
	return d.mover
}

// Stats returns the counters for the run so far.
func (d *Demo) Stats() Stats {
	return Stats{Frames: d.frames, Bounces: d.flips, Reverses: d.reverses}
}

// Running reports whether no exit has been requested yet.
func (d *Demo) Running() bool {
	return d.running
}

// Close closes the window.
func (d *Demo) Close() error {
	return d.win.Close()
}

// Run loops until escape or exit is polled, the window stops running, or
// ctx is done. Each iteration is one Frame followed by the configured
// sleep. Errors from the window are returned as-is after wrapping; a
// cancelled context is a normal stop.
func (d *Demo) Run(ctx context.Context) error {
	d.last = d.Now()
	for d.running && d.win.ShouldRun() == platform.StateRunning {
		if ctx.Err() != nil {
			return nil
		}
		if err := d.Frame(); err != nil {
			return err
		}
		if d.AfterFrame != nil {
			d.AfterFrame()
		}
		if d.cfg.Loop.Sleep > 0 {
			d.Sleep(time.Duration(d.cfg.Loop.Sleep))
		}
	}
	log.Printf("bounce: stopped after %d frames (%d bounces, %d reversals)", d.frames, d.flips, d.reverses)
	return nil
}

// Frame runs one iteration: drain events, advance the rectangle by the
// time since the previous frame, redraw it and present.
func (d *Demo) Frame() error {
	d.drainEvents()

	now := d.Now()
	if d.last.IsZero() {
		d.last = now
	}
	dt := now.Sub(d.last).Seconds()
	d.last = now

	d.ren.RemoveShapeByID(d.cfg.Rect.ID)
	if d.mover.Step(dt) {
		d.onBounce()
	}
	d.ren.SetDrawColor(d.rectColor(dt))
	d.ren.DrawRect(int(d.mover.X), d.cfg.Rect.Y, d.cfg.Rect.Size, d.cfg.Rect.Size, true, d.cfg.Rect.ID)

	if err := d.ren.Present(); err != nil {
		return fmt.Errorf("frame %d: %w", d.frames+1, err)
	}
	d.frames++
	return nil
}

func (d *Demo) drainEvents() {
	for d.evt.Poll() {
		switch d.evt.Kind() {
		case platform.EventKeyEsc, platform.EventExit:
			d.running = false
		case platform.EventKeySpace:
			d.mover.Reverse()
			d.reverses++
		}
	}
}

func (d *Demo) onBounce() {
	d.flips++
	if d.Sound != nil {
		d.Sound.Bounce()
	}
	if d.cfg.Rect.FlashSeconds > 0 {
		d.flash = platform.TweenColor(d.cfg.Rect.FlashColor, d.cfg.Rect.Color,
			float32(d.cfg.Rect.FlashSeconds), ease.OutQuad)
	}
}

func (d *Demo) rectColor(dt float64) platform.Color {
	if d.flash == nil {
		return d.cfg.Rect.Color
	}
	c := d.flash.Update(float32(dt))
	if d.flash.Done {
		d.flash = nil
	}
	return c
}
