package term

import "github.com/phanxgames/platform"

// grid maps a width x height pixel canvas onto cols x rows cells.
type grid struct {
	cols, rows    int
	width, height int
}

// cell returns the cell containing pixel (x, y). The result may lie
// outside the grid for pixels outside the canvas.
func (g grid) cell(x, y int) (col, row int) {
	return floorDiv(x*g.cols, g.width), floorDiv(y*g.rows, g.height)
}

// pixel returns the canvas pixel at the top-left of cell (col, row).
func (g grid) pixel(col, row int) (x, y int) {
	if g.cols <= 0 || g.rows <= 0 {
		return 0, 0
	}
	return col * g.width / g.cols, row * g.height / g.rows
}

// cells returns the cells touched by pixel rect r, clipped to the grid.
func (g grid) cells(r platform.Rect) platform.Rect {
	if r.Empty() {
		return platform.Rect{}
	}
	c0, r0 := g.cell(r.X, r.Y)
	c1, r1 := g.cell(r.X+r.Width-1, r.Y+r.Height-1)
	c0, r0 = max(c0, 0), max(r0, 0)
	c1, r1 = min(c1, g.cols-1), min(r1, g.rows-1)
	if c1 < c0 || r1 < r0 {
		return platform.Rect{}
	}
	return platform.Rect{X: c0, Y: r0, Width: c1 - c0 + 1, Height: r1 - r0 + 1}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
