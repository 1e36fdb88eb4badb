package png

import (
	"bytes"
	"image"
	"image/color"
	stdpng "image/png"
	"strings"
	"testing"
)

func TestGetInfoStdlibOutput(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 3, 7))
	var buf bytes.Buffer
	if err := stdpng.Encode(&buf, gray); err != nil {
		t.Fatal(err)
	}

	info, err := GetInfo(buf.Bytes())
	if err != nil {
		t.Fatalf("GetInfo: %v", err)
	}
	if info.Width != 3 || info.Height != 7 {
		t.Errorf("unexpected dimensions: %dx%d", info.Width, info.Height)
	}
	if info.ColorType != "Grayscale" || info.NumChannels != 1 {
		t.Errorf("color type = %s (%d channels), want Grayscale", info.ColorType, info.NumChannels)
	}
	if info.Interlaced {
		t.Error("expected non-interlaced")
	}
}

func TestGetInfoErrors(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{1, 2, 3, 255})
	valid, err := EncodeRGBA(img, EncoderOptions{})
	if err != nil {
		t.Fatal(err)
	}

	corrupt := func(i int) []byte {
		d := bytes.Clone(valid)
		d[i] ^= 0xff
		return d
	}

	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"short", valid[:10], "too short"},
		{"signature", corrupt(1), "bad signature"},
		{"chunk type", corrupt(12), "expected IHDR"},
		{"length", corrupt(11), "IHDR length"},
		{"crc", corrupt(17), "CRC mismatch"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GetInfo(tt.data)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestColorTypeName(t *testing.T) {
	if got := colorTypeName(colorTypeRGBA); got != "RGBA" {
		t.Errorf("colorTypeName(6) = %s", got)
	}
	if got := colorTypeName(9); got != "ColorType(9)" {
		t.Errorf("colorTypeName(9) = %s", got)
	}
}
