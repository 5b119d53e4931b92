package platform

import (
	"errors"
	"image"
	"sync"
)

// HeadlessDriver is an in-memory Driver. Frames are rasterized into an
// image that can be inspected with Image; input only arrives through Push
// or Window.InjectEvent. It backs scripted runs and tests.
type HeadlessDriver struct {
	// MaxFrames stops the driver after that many presents. Zero means no
	// limit.
	MaxFrames int

	mu      sync.Mutex
	cfg     WindowConfig
	open    bool
	closed  bool
	frames  int
	last    Frame
	img     *image.NRGBA
	pending []RawEvent
}

// NewHeadlessDriver creates a driver that renders into memory.
func NewHeadlessDriver() *HeadlessDriver {
	return &HeadlessDriver{}
}

// Open implements Driver.
func (d *HeadlessDriver) Open(cfg WindowConfig) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return errors.New("headless: driver closed")
	}
	d.cfg = cfg
	d.open = true
	d.img = image.NewNRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))
	return nil
}

// Present implements Driver.
func (d *HeadlessDriver) Present(f Frame) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.open {
		return errors.New("headless: present on unopened surface")
	}
	d.last = f
	d.img = Rasterize(f)
	d.frames++
	return nil
}

// Push queues an event as if the backend had produced it.
func (d *HeadlessDriver) Push(ev RawEvent) {
	d.mu.Lock()
	d.pending = append(d.pending, ev)
	d.mu.Unlock()
}

// PollEvent implements Driver.
func (d *HeadlessDriver) PollEvent() (RawEvent, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.pending) == 0 {
		return RawEvent{}, false
	}
	ev := d.pending[0]
	d.pending = d.pending[1:]
	return ev, true
}

// Running implements Driver.
func (d *HeadlessDriver) Running() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.open || d.closed {
		return false
	}
	return d.MaxFrames <= 0 || d.frames < d.MaxFrames
}

// Close implements Driver.
func (d *HeadlessDriver) Close() error {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()
	return nil
}

// Frames returns the number of frames presented.
func (d *HeadlessDriver) Frames() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.frames
}

// LastFrame returns the most recently presented frame.
func (d *HeadlessDriver) LastFrame() Frame {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.last
}

// Image returns the rasterized last frame. The image MUST NOT be mutated.
func (d *HeadlessDriver) Image() *image.NRGBA {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.img
}
