package png

import (
	"bytes"
	"fmt"
	"image"
	stdpng "image/png"

	"golang.org/x/image/draw"
)

// DecodeRGBA decodes a PNG from memory into an RGBA image anchored at the
// origin.
func DecodeRGBA(data []byte) (*image.RGBA, error) {
	src, err := stdpng.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("png decode: %w", err)
	}
	if m, ok := src.(*image.RGBA); ok && m.Bounds().Min == (image.Point{}) {
		return m, nil
	}

	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst, nil
}
