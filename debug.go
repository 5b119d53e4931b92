package platform

import (
	"fmt"
	"os"
	"time"
)

// presentStats holds per-frame timing and shape metrics.
// Only populated when Window.debug is true.
type presentStats struct {
	enabled     bool
	start       time.Time
	presentTime time.Duration
	seq         uint64
	shapeCount  int
	filled      int
	outlined    int
	lines       int
	points      int
}

func (s *presentStats) begin(enabled bool) {
	s.enabled = enabled
	if enabled {
		s.start = time.Now()
	}
}

func (s *presentStats) end(f Frame) {
	if !s.enabled {
		return
	}
	s.presentTime = time.Since(s.start)
	s.seq = f.Seq
	s.shapeCount = len(f.Shapes)
	for i := range f.Shapes {
		switch sh := &f.Shapes[i]; sh.Type {
		case ShapeRect:
			if sh.Filled {
				s.filled++
			} else {
				s.outlined++
			}
		case ShapeLine:
			s.lines++
		default:
			s.points++
		}
	}
}

// debugLog prints timing and shape stats to stderr.
func (w *Window) debugLog(stats presentStats) {
	if !w.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[platform] frame %d | present: %v | shapes: %d (rects %d/%d, lines %d, points %d)\n",
		stats.seq, stats.presentTime, stats.shapeCount,
		stats.filled, stats.outlined, stats.lines, stats.points)
}

// debugCheckShapeCount warns on stderr when the retained list grows past
// debugMaxShapeCount, which usually means a redraw forgot RemoveShapeByID.
// It warns once per crossing and reports whether it did.
const debugMaxShapeCount = 10000

func debugCheckShapeCount(r *Renderer) bool {
	over := len(r.shapes) > debugMaxShapeCount
	crossed := over && !r.overLimit
	r.overLimit = over
	if crossed {
		_, _ = fmt.Fprintf(os.Stderr, "[platform] warning: renderer holds %d shapes (threshold %d)\n",
			len(r.shapes), debugMaxShapeCount)
	}
	return crossed
}
