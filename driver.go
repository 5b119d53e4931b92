package platform

// Driver is the backend a Window draws to and reads input from. A driver
// owns whatever native resources it needs (an Ebitengine game, a terminal
// screen, an in-memory image) and is used from a single goroutine: the one
// running the frame loop.
type Driver interface {
	// Open creates the native surface. It is called once, by Window.Show.
	Open(cfg WindowConfig) error
	// Present displays f. The frame must not be retained past the next call
	// unless the driver copies it.
	Present(f Frame) error
	// PollEvent returns the next pending event without blocking.
	PollEvent() (RawEvent, bool)
	// Running reports whether the surface is still alive.
	Running() bool
	// Close releases the native surface. Further calls are no-ops.
	Close() error
}

// MainLooper is implemented by drivers whose backend must own the calling
// goroutine, as Ebitengine does for the main thread.
type MainLooper interface {
	// RunMain runs loop on another goroutine while the backend runs on the
	// current one, and returns when both have finished.
	RunMain(loop func() error) error
}

// Main runs loop under d. Drivers that need the main goroutine get it via
// MainLooper; for every other driver loop simply runs on the caller's
// goroutine. Call Main from func main.
func Main(d Driver, loop func() error) error {
	if ml, ok := d.(MainLooper); ok {
		return ml.RunMain(loop)
	}
	return loop()
}
