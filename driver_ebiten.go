package platform

import (
	"errors"
	"log"
	"sync"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const ebitenEventCap = 256

var ebitenKeys = map[ebiten.Key]EventKind{
	ebiten.KeyA:          EventKeyA,
	ebiten.KeyEscape:     EventKeyEsc,
	ebiten.KeyArrowUp:    EventKeyUp,
	ebiten.KeyArrowDown:  EventKeyDown,
	ebiten.KeyArrowLeft:  EventKeyLeft,
	ebiten.KeyArrowRight: EventKeyRight,
	ebiten.KeySpace:      EventKeySpace,
}

var ebitenButtons = [...]struct {
	button ebiten.MouseButton
	kind   EventKind
}{
	{ebiten.MouseButtonLeft, EventLeftClick},
	{ebiten.MouseButtonRight, EventRightClick},
	{ebiten.MouseButtonMiddle, EventMiddleClick},
}

// EbitenDriver draws frames in an Ebitengine window. Ebitengine owns the
// main goroutine, so the frame loop must be started through Main (or
// RunMain directly); the driver then exchanges frames and events with the
// game through a mutex-guarded frame and a buffered channel.
type EbitenDriver struct {
	// ShowFPS draws an FPS/TPS overlay in the top-left corner.
	ShowFPS bool

	cfg     WindowConfig
	running atomic.Bool
	quit    chan struct{}
	stop    sync.Once
	events  chan RawEvent
	dropped atomic.Uint64

	mu    sync.Mutex
	frame Frame

	// Game-goroutine state.
	keys        []ebiten.Key
	closeQueued bool
	fps         *fpsOverlay
}

// NewEbitenDriver creates a driver backed by an Ebitengine window.
func NewEbitenDriver() *EbitenDriver {
	return &EbitenDriver{
		quit:   make(chan struct{}),
		events: make(chan RawEvent, ebitenEventCap),
	}
}

// Open implements Driver. It configures the window; the window itself
// appears once RunMain starts the game.
func (d *EbitenDriver) Open(cfg WindowConfig) error {
	d.cfg = cfg
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowPosition(cfg.X, cfg.Y)
	ebiten.SetWindowClosingHandled(true)
	d.mu.Lock()
	d.frame = Frame{Width: cfg.Width, Height: cfg.Height, Clear: cfg.Background}
	d.mu.Unlock()
	d.running.Store(true)
	return nil
}

// Present implements Driver. The frame is picked up by the next Draw.
func (d *EbitenDriver) Present(f Frame) error {
	if !d.running.Load() {
		return errors.New("ebiten: window is not running")
	}
	d.mu.Lock()
	d.frame = f
	d.mu.Unlock()
	return nil
}

// PollEvent implements Driver.
func (d *EbitenDriver) PollEvent() (RawEvent, bool) {
	select {
	case ev := <-d.events:
		return ev, true
	default:
		return RawEvent{}, false
	}
}

// Running implements Driver.
func (d *EbitenDriver) Running() bool {
	return d.running.Load()
}

// Close implements Driver. The game terminates on its next Update.
func (d *EbitenDriver) Close() error {
	d.stop.Do(func() { close(d.quit) })
	d.running.Store(false)
	return nil
}

// RunMain implements MainLooper. loop runs on a new goroutine; Ebitengine
// runs on the caller's, which must be the main goroutine.
func (d *EbitenDriver) RunMain(loop func() error) error {
	if d.ShowFPS {
		d.fps = newFPSOverlay()
	}
	errc := make(chan error, 1)
	go func() {
		errc <- loop()
		d.stop.Do(func() { close(d.quit) })
	}()

	gameErr := ebiten.RunGame(d)
	d.running.Store(false)
	loopErr := <-errc

	if n := d.dropped.Load(); n > 0 {
		log.Printf("platform: ebiten: dropped %d events (queue full)", n)
	}
	if gameErr != nil {
		return errors.Join(gameErr, loopErr)
	}
	return loopErr
}

// push queues ev without blocking and reports whether it fit.
func (d *EbitenDriver) push(ev RawEvent) bool {
	select {
	case d.events <- ev:
		return true
	default:
		d.dropped.Add(1)
		return false
	}
}

// requestClose queues one Exit event per close request. A request that
// finds the queue full is retried on the next Update.
func (d *EbitenDriver) requestClose() {
	if !d.closeQueued {
		d.closeQueued = d.push(RawEvent{Kind: EventExit})
	}
}

// Update implements ebiten.Game. It only translates input; the frame loop
// does the simulation.
func (d *EbitenDriver) Update() error {
	select {
	case <-d.quit:
		return ebiten.Termination
	default:
	}

	if ebiten.IsWindowBeingClosed() {
		d.requestClose()
	}

	d.keys = inpututil.AppendJustPressedKeys(d.keys[:0])
	for _, k := range d.keys {
		if kind, ok := ebitenKeys[k]; ok {
			d.push(RawEvent{Kind: kind})
		}
	}

	x, y := ebiten.CursorPosition()
	for _, b := range ebitenButtons {
		if inpututil.IsMouseButtonJustPressed(b.button) {
			d.push(RawEvent{Kind: b.kind, X: x, Y: y})
		}
	}

	if d.fps != nil {
		d.fps.update(1 / float64(ebiten.TPS()))
	}
	return nil
}

// Draw implements ebiten.Game.
func (d *EbitenDriver) Draw(screen *ebiten.Image) {
	d.mu.Lock()
	f := d.frame
	d.mu.Unlock()

	drawFrame(screen, f)
	if d.fps != nil {
		d.fps.draw(screen)
	}
}

// Layout implements ebiten.Game. The logical screen is always the
// configured size; Ebitengine scales it to the outside size.
func (d *EbitenDriver) Layout(outsideWidth, outsideHeight int) (int, int) {
	return d.cfg.Width, d.cfg.Height
}

// drawFrame paints f onto screen with Ebitengine's vector helpers.
func drawFrame(screen *ebiten.Image, f Frame) {
	screen.Fill(f.Clear)
	for i := range f.Shapes {
		s := &f.Shapes[i]
		switch s.Type {
		case ShapePoint:
			vector.DrawFilledRect(screen, float32(s.X), float32(s.Y), 1, 1, s.Color, false)
		case ShapeLine:
			vector.StrokeLine(screen,
				float32(s.X)+0.5, float32(s.Y)+0.5, float32(s.X2)+0.5, float32(s.Y2)+0.5,
				1, s.Color, false)
		case ShapeRect:
			x, y := float32(s.X), float32(s.Y)
			w, h := float32(s.Width), float32(s.Height)
			if s.Filled {
				vector.DrawFilledRect(screen, x, y, w, h, s.Color, false)
			} else {
				vector.StrokeRect(screen, x+0.5, y+0.5, w-1, h-1, 1, s.Color, false)
			}
		}
	}
}
