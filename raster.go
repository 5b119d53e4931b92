package platform

import (
	"image"
	"image/draw"
)

// Rasterize paints f into a new straight-alpha image of f.Width x f.Height.
// Shapes are composited with source-over in slice order and clipped to the
// frame. It is used by the headless driver and by screenshots, so every
// driver produces the same PNG for the same frame.
func Rasterize(f Frame) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, f.Width, f.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(f.Clear.NRGBA()), image.Point{}, draw.Src)
	for i := range f.Shapes {
		rasterShape(img, &f.Shapes[i])
	}
	return img
}

func rasterShape(img *image.NRGBA, s *Shape) {
	src := image.NewUniform(s.Color.NRGBA())
	switch s.Type {
	case ShapePoint:
		blendPixel(img, s.X, s.Y, src)
	case ShapeLine:
		WalkLine(s.X, s.Y, s.X2, s.Y2, func(x, y int) {
			blendPixel(img, x, y, src)
		})
	case ShapeRect:
		if s.Width <= 0 || s.Height <= 0 {
			return
		}
		if s.Filled {
			r := image.Rect(s.X, s.Y, s.X+s.Width, s.Y+s.Height)
			draw.Draw(img, r, src, image.Point{}, draw.Over)
			return
		}
		// Edges must not overlap or translucent outlines double-blend.
		x1, y1 := s.X+s.Width-1, s.Y+s.Height-1
		edges := make([]image.Rectangle, 0, 4)
		edges = append(edges, image.Rect(s.X, s.Y, x1+1, s.Y+1))
		if s.Height > 1 {
			edges = append(edges, image.Rect(s.X, y1, x1+1, y1+1))
		}
		if s.Height > 2 {
			edges = append(edges, image.Rect(s.X, s.Y+1, s.X+1, y1))
			if s.Width > 1 {
				edges = append(edges, image.Rect(x1, s.Y+1, x1+1, y1))
			}
		}
		for _, e := range edges {
			draw.Draw(img, e, src, image.Point{}, draw.Over)
		}
	}
}

func blendPixel(img *image.NRGBA, x, y int, src *image.Uniform) {
	if !(image.Point{X: x, Y: y}).In(img.Rect) {
		return
	}
	draw.Draw(img, image.Rect(x, y, x+1, y+1), src, image.Point{}, draw.Over)
}
