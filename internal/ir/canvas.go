package ir

import (
	"image"
	"image/color"
)

// Canvas is the raster an icon is drawn into before it is encoded. Pixels
// live in an RGBA image whose bounds are [0, Size) on both axes.
type Canvas struct {
	Size  int
	Image *image.RGBA
}

// NewCanvas allocates a transparent size×size canvas.
func NewCanvas(size int) *Canvas {
	return &Canvas{
		Size:  size,
		Image: image.NewRGBA(image.Rect(0, 0, size, size)),
	}
}

func (c *Canvas) Bounds() image.Rectangle {
	return c.Image.Bounds()
}

// At returns the pixel at (x, y).
func (c *Canvas) At(x, y int) color.RGBA {
	return c.Image.RGBAAt(x, y)
}

// Corners returns the top-left, top-right, bottom-left and bottom-right
// pixels of a size×size square.
func Corners(size int) [4]image.Point {
	last := size - 1
	return [4]image.Point{
		{0, 0},
		{last, 0},
		{0, last},
		{last, last},
	}
}

// Center returns the center pixel of a size×size square.
func Center(size int) image.Point {
	return image.Pt(size/2, size/2)
}
