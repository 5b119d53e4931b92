package platform

import (
	"errors"
	"testing"
)

func newTestWindow(t *testing.T, w, h int) (*Window, *HeadlessDriver) {
	t.Helper()
	d := NewHeadlessDriver()
	win, err := NewWindow(WindowConfig{Title: "test", Width: w, Height: h, Background: ColorBlack}, d)
	if err != nil {
		t.Fatalf("NewWindow: %v", err)
	}
	if err := win.Show(); err != nil {
		t.Fatalf("Show: %v", err)
	}
	return win, d
}

func shapeIDs(shapes []Shape) []int {
	ids := make([]int, len(shapes))
	for i, s := range shapes {
		ids[i] = s.ID
	}
	return ids
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestRendererDrawUsesCurrentColor(t *testing.T) {
	win, _ := newTestWindow(t, 100, 100)
	r := NewRenderer(win)

	if r.DrawColor() != ColorWhite {
		t.Errorf("initial draw color = %v, want white", r.DrawColor())
	}
	red := Color{255, 0, 0, 255}
	r.SetDrawColor(red)
	r.DrawRect(1, 2, 3, 4, true, 7)
	r.SetDrawColorRGBA(0, 255, 0, 255)
	r.DrawLine(0, 0, 10, 10, 8)
	r.DrawPoint(5, 5, 9)

	shapes := r.Shapes()
	if len(shapes) != 3 {
		t.Fatalf("len(shapes) = %d, want 3", len(shapes))
	}
	if shapes[0].Color != red || shapes[0].Type != ShapeRect || !shapes[0].Filled {
		t.Errorf("rect = %+v", shapes[0])
	}
	if shapes[1].Color != (Color{0, 255, 0, 255}) || shapes[1].Type != ShapeLine {
		t.Errorf("line = %+v", shapes[1])
	}
	if shapes[2].Type != ShapePoint || shapes[2].X != 5 {
		t.Errorf("point = %+v", shapes[2])
	}
}

func TestRendererRemoveShapeByIDKeepsOrder(t *testing.T) {
	win, _ := newTestWindow(t, 100, 100)
	r := NewRenderer(win)
	for _, id := range []int{1, 2, 3, 2, 4, 2} {
		r.DrawPoint(0, 0, id)
	}

	r.RemoveShapeByID(2)
	if got, want := shapeIDs(r.Shapes()), []int{1, 3, 4}; !equalInts(got, want) {
		t.Errorf("ids after remove = %v, want %v", got, want)
	}

	r.RemoveShapeByID(99)
	if got := len(r.Shapes()); got != 3 {
		t.Errorf("removing unknown id changed len to %d", got)
	}
}

func TestRendererClear(t *testing.T) {
	win, d := newTestWindow(t, 10, 10)
	r := NewRenderer(win)
	r.DrawRect(0, 0, 5, 5, true, 1)

	blue := Color{0, 0, 255, 255}
	r.SetDrawColor(blue)
	r.Clear()
	if len(r.Shapes()) != 0 {
		t.Fatalf("Clear left %d shapes", len(r.Shapes()))
	}
	if err := r.Present(); err != nil {
		t.Fatal(err)
	}
	if got := d.LastFrame().Clear; got != blue {
		t.Errorf("frame clear = %v, want %v", got, blue)
	}
}

func TestRendererPresentSnapshots(t *testing.T) {
	win, d := newTestWindow(t, 10, 10)
	r := NewRenderer(win)
	r.DrawRect(0, 0, 5, 5, true, 1)
	if err := r.Present(); err != nil {
		t.Fatal(err)
	}
	r.RemoveShapeByID(1)
	r.DrawPoint(1, 1, 2)

	f := d.LastFrame()
	if f.Seq != 1 || f.Width != 10 || f.Height != 10 {
		t.Errorf("frame header = %+v", f)
	}
	if len(f.Shapes) != 1 || f.Shapes[0].ID != 1 {
		t.Errorf("presented frame changed after later draw calls: %+v", f.Shapes)
	}
	if f.Clear != ColorBlack {
		t.Errorf("clear = %v, want configured background", f.Clear)
	}
}

func TestRendererPresentBeforeShow(t *testing.T) {
	win, err := NewWindow(WindowConfig{Width: 10, Height: 10}, NewHeadlessDriver())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRenderer(win)
	if err := r.Present(); !errors.Is(err, ErrNotShown) {
		t.Errorf("Present before Show = %v, want ErrNotShown", err)
	}
}

func TestRendererPresentAfterClose(t *testing.T) {
	win, _ := newTestWindow(t, 10, 10)
	r := NewRenderer(win)
	if err := win.Close(); err != nil {
		t.Fatal(err)
	}
	if err := r.Present(); !errors.Is(err, ErrClosed) {
		t.Errorf("Present after Close = %v, want ErrClosed", err)
	}
}

func TestShapeBounds(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		want  Rect
	}{
		{"point", Shape{Type: ShapePoint, X: 3, Y: 4}, Rect{3, 4, 1, 1}},
		{"rect", Shape{Type: ShapeRect, X: 1, Y: 2, Width: 3, Height: 4}, Rect{1, 2, 3, 4}},
		{"line reversed", Shape{Type: ShapeLine, X: 10, Y: 5, X2: 2, Y2: 1}, Rect{2, 1, 9, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.shape.Bounds(); got != tt.want {
				t.Errorf("Bounds() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWalkLine(t *testing.T) {
	var pts [][2]int
	WalkLine(0, 0, 3, 1, func(x, y int) { pts = append(pts, [2]int{x, y}) })
	if len(pts) != 4 {
		t.Fatalf("got %d points, want 4: %v", len(pts), pts)
	}
	if pts[0] != [2]int{0, 0} || pts[3] != [2]int{3, 1} {
		t.Errorf("endpoints = %v, %v", pts[0], pts[3])
	}

	pts = pts[:0]
	WalkLine(2, 2, 2, 2, func(x, y int) { pts = append(pts, [2]int{x, y}) })
	if len(pts) != 1 {
		t.Errorf("degenerate line visited %d points, want 1", len(pts))
	}

	pts = pts[:0]
	WalkLine(0, 5, 0, 0, func(x, y int) { pts = append(pts, [2]int{x, y}) })
	if len(pts) != 6 || pts[5] != [2]int{0, 0} {
		t.Errorf("vertical line = %v", pts)
	}
}
