package color

import (
	"fmt"
	stdcolor "image/color"
)

// Icon palette. Both colors are fully opaque.
var (
	Background = stdcolor.RGBA{R: 65, G: 105, B: 225, A: 255} // royal blue
	Foreground = stdcolor.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Hex formats c as #rrggbbaa using non-premultiplied 8-bit channels.
func Hex(c stdcolor.Color) string {
	n := stdcolor.NRGBAModel.Convert(c).(stdcolor.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

// Equal reports whether a and b have identical 8-bit RGBA channels.
func Equal(a, b stdcolor.Color) bool {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar>>8 == br>>8 && ag>>8 == bg>>8 && ab>>8 == bb>>8 && aa>>8 == ba>>8
}

// Name returns "background" or "foreground" for palette colors and the hex
// form for anything else.
func Name(c stdcolor.Color) string {
	switch {
	case Equal(c, Background):
		return "background"
	case Equal(c, Foreground):
		return "foreground"
	default:
		return Hex(c)
	}
}
