// Package term renders platform frames into a terminal using tcell.
//
// The logical canvas (WindowConfig.Width x Height pixels) is scaled onto
// the terminal's cell grid; each cell is painted with the background color
// of the topmost shape covering it. Keyboard, mouse and resize events are
// translated into platform event kinds.
package term

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/platform"
)

const eventCap = 100

// Driver is a platform.Driver backed by a tcell screen.
type Driver struct {
	screen  tcell.Screen
	cfg     platform.WindowConfig
	events  chan platform.RawEvent
	running atomic.Bool
	stop    sync.Once
	opened  atomic.Bool // screen.Init succeeded; Fini is only valid then

	mu         sync.Mutex
	cols, rows int
}

// NewDriver creates a driver for the controlling terminal.
func NewDriver() (*Driver, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("term: new screen: %w", err)
	}
	return New(screen), nil
}

// New creates a driver around an existing screen, such as
// tcell.NewSimulationScreen in tests. The screen is initialized by Open.
func New(screen tcell.Screen) *Driver {
	return &Driver{
		screen: screen,
		events: make(chan platform.RawEvent, eventCap),
	}
}

// Open implements platform.Driver.
func (d *Driver) Open(cfg platform.WindowConfig) error {
	if err := d.screen.Init(); err != nil {
		return fmt.Errorf("term: init screen: %w", err)
	}
	d.opened.Store(true)
	d.cfg = cfg
	d.screen.SetTitle(cfg.Title)
	d.screen.EnableMouse(tcell.MouseButtonEvents)
	d.screen.HideCursor()

	d.mu.Lock()
	d.cols, d.rows = d.screen.Size()
	d.mu.Unlock()

	d.running.Store(true)
	go d.pump()
	return nil
}

// pump forwards screen events until the screen is finalized.
func (d *Driver) pump() {
	for {
		ev := d.screen.PollEvent()
		if ev == nil {
			return
		}
		if r, ok := ev.(*tcell.EventResize); ok {
			cols, rows := r.Size()
			d.mu.Lock()
			d.cols, d.rows = cols, rows
			d.mu.Unlock()
		}
		raw, ok := d.translate(ev)
		if !ok {
			continue
		}
		select {
		case d.events <- raw:
		default:
			// Input arriving faster than frames drain it is dropped.
		}
	}
}

// translate maps a tcell event to a platform event.
func (d *Driver) translate(ev tcell.Event) (platform.RawEvent, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		kind, ok := keyKind(ev)
		return platform.RawEvent{Kind: kind}, ok
	case *tcell.EventMouse:
		var kind platform.EventKind
		switch b := ev.Buttons(); {
		case b&tcell.Button1 != 0:
			kind = platform.EventLeftClick
		case b&tcell.Button2 != 0:
			kind = platform.EventRightClick
		case b&tcell.Button3 != 0:
			kind = platform.EventMiddleClick
		default:
			return platform.RawEvent{}, false
		}
		col, row := ev.Position()
		x, y := d.cellToPixel(col, row)
		return platform.RawEvent{Kind: kind, X: x, Y: y}, true
	case *tcell.EventResize:
		return platform.RawEvent{Kind: platform.EventExpose}, true
	}
	return platform.RawEvent{}, false
}

func keyKind(ev *tcell.EventKey) (platform.EventKind, bool) {
	switch ev.Key() {
	case tcell.KeyEscape:
		return platform.EventKeyEsc, true
	case tcell.KeyCtrlC:
		return platform.EventExit, true
	case tcell.KeyUp:
		return platform.EventKeyUp, true
	case tcell.KeyDown:
		return platform.EventKeyDown, true
	case tcell.KeyLeft:
		return platform.EventKeyLeft, true
	case tcell.KeyRight:
		return platform.EventKeyRight, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return platform.EventKeySpace, true
		case 'a', 'A':
			return platform.EventKeyA, true
		}
	}
	return platform.EventNone, false
}

// PollEvent implements platform.Driver.
func (d *Driver) PollEvent() (platform.RawEvent, bool) {
	select {
	case ev := <-d.events:
		return ev, true
	default:
		return platform.RawEvent{}, false
	}
}

// Running implements platform.Driver.
func (d *Driver) Running() bool {
	return d.running.Load()
}

// Close implements platform.Driver.
func (d *Driver) Close() error {
	d.stop.Do(func() {
		d.running.Store(false)
		if d.opened.Load() {
			d.screen.Fini()
		}
	})
	return nil
}

// Present implements platform.Driver.
func (d *Driver) Present(f platform.Frame) error {
	if !d.running.Load() {
		return errors.New("term: screen is not running")
	}
	d.mu.Lock()
	g := grid{cols: d.cols, rows: d.rows, width: f.Width, height: f.Height}
	d.mu.Unlock()
	if g.cols <= 0 || g.rows <= 0 || g.width <= 0 || g.height <= 0 {
		return nil
	}

	clearStyle := style(f.Clear)
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			d.screen.SetContent(col, row, ' ', nil, clearStyle)
		}
	}
	for i := range f.Shapes {
		s := &f.Shapes[i]
		st := style(s.Color)
		switch s.Type {
		case platform.ShapeRect:
			r := g.cells(s.Bounds())
			for row := r.Y; row < r.Y+r.Height; row++ {
				for col := r.X; col < r.X+r.Width; col++ {
					if s.Filled || row == r.Y || row == r.Y+r.Height-1 || col == r.X || col == r.X+r.Width-1 {
						d.screen.SetContent(col, row, ' ', nil, st)
					}
				}
			}
		case platform.ShapeLine:
			c0, r0 := g.cell(s.X, s.Y)
			c1, r1 := g.cell(s.X2, s.Y2)
			platform.WalkLine(c0, r0, c1, r1, func(col, row int) {
				if col >= 0 && col < g.cols && row >= 0 && row < g.rows {
					d.screen.SetContent(col, row, ' ', nil, st)
				}
			})
		case platform.ShapePoint:
			if s.X < 0 || s.Y < 0 || s.X >= g.width || s.Y >= g.height {
				continue
			}
			col, row := g.cell(s.X, s.Y)
			d.screen.SetContent(col, row, '.', nil, st.Foreground(tcell.ColorWhite))
		}
	}
	d.screen.Show()
	return nil
}

func (d *Driver) cellToPixel(col, row int) (int, int) {
	d.mu.Lock()
	g := grid{cols: d.cols, rows: d.rows, width: d.cfg.Width, height: d.cfg.Height}
	d.mu.Unlock()
	return g.pixel(col, row)
}

func style(c platform.Color) tcell.Style {
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}
