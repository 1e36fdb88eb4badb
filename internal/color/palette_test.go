package color

import (
	stdcolor "image/color"
	"testing"
)

func TestPaletteValues(t *testing.T) {
	if Background != (stdcolor.RGBA{65, 105, 225, 255}) {
		t.Errorf("Background = %v, want {65 105 225 255}", Background)
	}
	if Foreground != (stdcolor.RGBA{255, 255, 255, 255}) {
		t.Errorf("Foreground = %v, want opaque white", Foreground)
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		c    stdcolor.Color
		want string
	}{
		{Background, "#4169e1ff"},
		{Foreground, "#ffffffff"},
		{stdcolor.White, "#ffffffff"},
		{stdcolor.RGBA{0, 0, 0, 0}, "#00000000"},
		{stdcolor.NRGBA{10, 20, 30, 128}, "#0a141e80"},
	}
	for _, tt := range tests {
		if got := Hex(tt.c); got != tt.want {
			t.Errorf("Hex(%v) = %s, want %s", tt.c, got, tt.want)
		}
	}
}

func TestEqual(t *testing.T) {
	if !Equal(Foreground, stdcolor.White) {
		t.Error("Foreground should equal color.White")
	}
	if !Equal(Background, stdcolor.NRGBA{65, 105, 225, 255}) {
		t.Error("Background should equal its NRGBA form")
	}
	if Equal(Background, Foreground) {
		t.Error("Background and Foreground should differ")
	}
}

func TestName(t *testing.T) {
	if got := Name(stdcolor.RGBA{65, 105, 225, 255}); got != "background" {
		t.Errorf("Name(background) = %s", got)
	}
	if got := Name(stdcolor.White); got != "foreground" {
		t.Errorf("Name(white) = %s", got)
	}
	if got := Name(stdcolor.RGBA{1, 2, 3, 255}); got != "#010203ff" {
		t.Errorf("Name(other) = %s", got)
	}
}
