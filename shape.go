package platform

// ShapeType selects how a Shape is drawn.
type ShapeType uint8

const (
	ShapePoint ShapeType = iota // a single pixel at (X, Y)
	ShapeLine                   // a one-pixel line from (X, Y) to (X2, Y2)
	ShapeRect                   // a Width x Height rectangle at (X, Y), filled or outlined
)

// Shape is one retained draw call. ID tags the shape for RemoveShapeByID;
// zero means the shape was drawn without an id. Several shapes may share
// an id.
type Shape struct {
	Type          ShapeType
	X, Y          int
	X2, Y2        int // line end point; unused for points and rects
	Width, Height int // rect size; unused for points and lines
	Filled        bool
	Color         Color
	ID            int
}

// Bounds returns the pixels the shape can touch.
func (s Shape) Bounds() Rect {
	switch s.Type {
	case ShapeLine:
		x0, x1 := min(s.X, s.X2), max(s.X, s.X2)
		y0, y1 := min(s.Y, s.Y2), max(s.Y, s.Y2)
		return Rect{X: x0, Y: y0, Width: x1 - x0 + 1, Height: y1 - y0 + 1}
	case ShapeRect:
		return Rect{X: s.X, Y: s.Y, Width: s.Width, Height: s.Height}
	default:
		return Rect{X: s.X, Y: s.Y, Width: 1, Height: 1}
	}
}

// Frame is an immutable snapshot handed to a Driver by Renderer.Present.
// Shapes are painted over Clear in slice order.
type Frame struct {
	Seq           uint64
	Width, Height int
	Clear         Color
	Shapes        []Shape
}

// RawEvent is a single input event as produced by a Driver or injected
// into a Window. X and Y are window pixels and are only meaningful for
// click kinds.
type RawEvent struct {
	Kind EventKind
	X, Y int
}

// WalkLine calls fn for every pixel of the line from (x0, y0) to (x1, y1),
// endpoints included, using Bresenham's algorithm.
func WalkLine(x0, y0, x1, y1 int, fn func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		fn(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
