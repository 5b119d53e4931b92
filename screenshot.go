package platform

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Screenshot queues a labeled screenshot of the next presented frame. The
// resulting PNG is written to ScreenshotDir with a timestamped filename.
func (w *Window) Screenshot(label string) {
	w.screenshotQueue = append(w.screenshotQueue, label)
}

// flushScreenshots rasterizes f once for every queued label and writes
// each as a PNG file. Called after the driver accepted the frame.
func (w *Window) flushScreenshots(f Frame) error {
	if len(w.screenshotQueue) == 0 {
		return nil
	}
	defer func() { w.screenshotQueue = w.screenshotQueue[:0] }()

	if err := os.MkdirAll(w.ScreenshotDir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", w.ScreenshotDir, err)
	}

	img := Rasterize(f)
	stamp := time.Now().Format("20060102_150405")

	for _, label := range w.screenshotQueue {
		name := fmt.Sprintf("%s_%06d_%s.png", stamp, f.Seq, sanitizeLabel(label))
		if err := writePNG(filepath.Join(w.ScreenshotDir, name), img); err != nil {
			return err
		}
	}
	return nil
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			return r
		default:
			return '_'
		}
	}, label)
}
