package platform

// Renderer keeps a retained list of shapes for a Window. Draw calls append
// to the list with the current draw color; Present repaints the clear color
// and then every retained shape, in the order they were drawn.
type Renderer struct {
	w          *Window
	drawColor  Color
	clearColor Color
	shapes     []Shape
	seq        uint64
	overLimit  bool // shape count above debugMaxShapeCount at the last add
}

// NewRenderer creates a renderer for w. The draw color starts white and the
// clear color starts as the window's configured background.
func NewRenderer(w *Window) *Renderer {
	return &Renderer{
		w:          w,
		drawColor:  ColorWhite,
		clearColor: w.cfg.Background,
		shapes:     make([]Shape, 0, 16),
	}
}

// SetDrawColor sets the color used by subsequent draw calls.
func (r *Renderer) SetDrawColor(c Color) {
	r.drawColor = c
}

// SetDrawColorRGBA is SetDrawColor with separate channels.
func (r *Renderer) SetDrawColorRGBA(red, green, blue, alpha uint8) {
	r.drawColor = Color{R: red, G: green, B: blue, A: alpha}
}

// DrawColor returns the current draw color.
func (r *Renderer) DrawColor() Color {
	return r.drawColor
}

// Clear drops every retained shape and makes the current draw color the
// color Present paints before drawing shapes.
func (r *Renderer) Clear() {
	r.shapes = r.shapes[:0]
	r.clearColor = r.drawColor
}

// DrawPoint retains a single pixel at (x, y).
func (r *Renderer) DrawPoint(x, y, id int) {
	r.add(Shape{Type: ShapePoint, X: x, Y: y, ID: id})
}

// DrawLine retains a one-pixel line from (x1, y1) to (x2, y2).
func (r *Renderer) DrawLine(x1, y1, x2, y2, id int) {
	r.add(Shape{Type: ShapeLine, X: x1, Y: y1, X2: x2, Y2: y2, ID: id})
}

// DrawRect retains a width x height rectangle at (x, y). Unfilled rects
// are drawn as a one-pixel outline.
func (r *Renderer) DrawRect(x, y, width, height int, filled bool, id int) {
	r.add(Shape{Type: ShapeRect, X: x, Y: y, Width: width, Height: height, Filled: filled, ID: id})
}

func (r *Renderer) add(s Shape) {
	s.Color = r.drawColor
	r.shapes = append(r.shapes, s)
	if r.w.debug {
		debugCheckShapeCount(r)
	}
}

// RemoveShapeByID drops every retained shape tagged with id, keeping the
// rest in order. Removing an id that is not present is a no-op.
func (r *Renderer) RemoveShapeByID(id int) {
	kept := r.shapes[:0]
	for _, s := range r.shapes {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	clear(r.shapes[len(kept):])
	r.shapes = kept
}

// Shapes returns the retained shapes. The returned slice MUST NOT be mutated.
func (r *Renderer) Shapes() []Shape {
	return r.shapes
}

// Present snapshots the retained shapes and hands the frame to the window's
// driver.
func (r *Renderer) Present() error {
	r.seq++
	f := Frame{
		Seq:    r.seq,
		Width:  r.w.cfg.Width,
		Height: r.w.cfg.Height,
		Clear:  r.clearColor,
		Shapes: append([]Shape(nil), r.shapes...),
	}
	return r.w.present(f)
}
