package platform

import (
	"errors"
	"fmt"
	"log"
)

var (
	// ErrClosed is returned when a closed window is used.
	ErrClosed = errors.New("platform: window closed")
	// ErrNotShown is returned by Present before Window.Show succeeded.
	ErrNotShown = errors.New("platform: window not shown")
)

// EventSink is the interface for optional event forwarding. When set on a
// Window, every event handed out by Event.Poll is also emitted to the sink.
type EventSink interface {
	EmitEvent(ev RawEvent)
}

const defaultScreenshotDir = "screenshots"

// Window is the top-level object that owns the driver, the injected event
// queue, and the per-frame hooks (screenshots, test runner, debug stats).
type Window struct {
	cfg    WindowConfig
	driver Driver
	shown  bool
	closed bool
	debug  bool
	sink   EventSink

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	injectQueue     []RawEvent
	screenshotQueue []string
	testRunner      *TestRunner
	presented       uint64
}

// NewWindow validates cfg and binds it to d. Nothing is opened until Show.
func NewWindow(cfg WindowConfig, d Driver) (*Window, error) {
	if d == nil {
		return nil, errors.New("platform: nil driver")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Window{
		cfg:           cfg,
		driver:        d,
		ScreenshotDir: defaultScreenshotDir,
	}, nil
}

// Config returns the configuration the window was created with.
func (w *Window) Config() WindowConfig {
	return w.cfg
}

// Driver returns the backend the window draws to.
func (w *Window) Driver() Driver {
	return w.driver
}

// Show opens the native surface. Calling Show on a shown window is a no-op.
func (w *Window) Show() error {
	if w.closed {
		return ErrClosed
	}
	if w.shown {
		return nil
	}
	if err := w.driver.Open(w.cfg); err != nil {
		return fmt.Errorf("show window %q: %w", w.cfg.Title, err)
	}
	w.shown = true
	return nil
}

// ShouldRun reports StateRunning while the window is shown and its driver
// is alive.
func (w *Window) ShouldRun() State {
	if w.closed || !w.shown || !w.driver.Running() {
		return StateClose
	}
	return StateRunning
}

// Close releases the driver. It is safe to call more than once.
func (w *Window) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	if err := w.driver.Close(); err != nil {
		return fmt.Errorf("close window %q: %w", w.cfg.Title, err)
	}
	return nil
}

// SetEventSink sets the optional event forwarder.
func (w *Window) SetEventSink(sink EventSink) {
	w.sink = sink
}

// SetDebugMode enables or disables debug mode. When enabled, per-frame
// present timing and shape counts are logged to stderr.
func (w *Window) SetDebugMode(enabled bool) {
	w.debug = enabled
}

// Frames returns the number of frames presented so far.
func (w *Window) Frames() uint64 {
	return w.presented
}

// nextEvent pops one injected event, falling back to the driver. A closed
// window reports nothing.
func (w *Window) nextEvent() (RawEvent, bool) {
	var (
		ev RawEvent
		ok bool
	)
	if w.closed {
		return ev, false
	}
	if len(w.injectQueue) > 0 {
		ev, ok = w.injectQueue[0], true
		copy(w.injectQueue, w.injectQueue[1:])
		w.injectQueue = w.injectQueue[:len(w.injectQueue)-1]
	} else if w.shown {
		ev, ok = w.driver.PollEvent()
	}
	if ok && w.sink != nil {
		w.sink.EmitEvent(ev)
	}
	return ev, ok
}

// present hands f to the driver and runs the per-frame hooks.
func (w *Window) present(f Frame) error {
	if w.closed {
		return ErrClosed
	}
	if !w.shown {
		return ErrNotShown
	}

	var stats presentStats
	stats.begin(w.debug)

	if err := w.driver.Present(f); err != nil {
		return fmt.Errorf("present frame %d: %w", f.Seq, err)
	}
	w.presented++

	stats.end(f)
	if w.debug {
		w.debugLog(stats)
	}

	if err := w.flushScreenshots(f); err != nil {
		log.Printf("platform: screenshot: %v", err)
	}
	if w.testRunner != nil {
		w.testRunner.step(w)
	}
	return nil
}
