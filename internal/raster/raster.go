// Package raster paints the solid shapes an icon is made of.
package raster

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// kappa places cubic Bézier control points so four arcs approximate a
// quarter ellipse each.
const kappa = 0.5522847498

// CoverageThreshold is the minimum coverage a pixel needs before
// FillEllipse paints it. Edges are hard, not anti-aliased.
const CoverageThreshold = 0x80

// FillRect paints r with c, replacing whatever was there.
func FillRect(dst draw.Image, r image.Rectangle, c color.Color) {
	draw.Draw(dst, r.Intersect(dst.Bounds()), image.NewUniform(c), image.Point{}, draw.Src)
}

// FillEllipse paints the ellipse inscribed in box with c. box is half-open;
// pixels outside dst are skipped.
func FillEllipse(dst draw.Image, box image.Rectangle, c color.Color) {
	if box.Empty() {
		return
	}
	r := box.Intersect(dst.Bounds())
	if r.Empty() {
		return
	}

	mask := EllipseMask(box.Dx(), box.Dy())
	draw.DrawMask(dst, r, image.NewUniform(c), image.Point{}, mask, r.Min.Sub(box.Min), draw.Over)
}

// EllipseMask returns a w×h mask that is opaque where the inscribed ellipse
// covers at least CoverageThreshold of a pixel and transparent elsewhere.
func EllipseMask(w, h int) *image.Alpha {
	z := vector.NewRasterizer(w, h)
	appendEllipse(z, float32(w)/2, float32(h)/2, float32(w)/2, float32(h)/2)

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	threshold(mask, CoverageThreshold)
	return mask
}

// appendEllipse adds a closed ellipse centered at (cx, cy) to z.
func appendEllipse(z *vector.Rasterizer, cx, cy, rx, ry float32) {
	kx, ky := kappa*rx, kappa*ry

	z.MoveTo(cx+rx, cy)
	z.CubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	z.CubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	z.CubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	z.CubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	z.ClosePath()
}

func threshold(m *image.Alpha, level uint8) {
	for i, a := range m.Pix {
		if a >= level {
			m.Pix[i] = 0xff
		} else {
			m.Pix[i] = 0
		}
	}
}
