// Package icon renders the application icon: a royal blue square with a
// white circle inset by a quarter of the size on every side.
package icon

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/cobriensr/deepseekr1-tauri/internal/color"
	"github.com/cobriensr/deepseekr1-tauri/internal/ir"
	"github.com/cobriensr/deepseekr1-tauri/internal/png"
	"github.com/cobriensr/deepseekr1-tauri/internal/raster"
)

// ErrInvalidSize is returned for sizes below 1.
var ErrInvalidSize = errors.New("icon size must be positive")

// Target pairs an icon size with the path it is written to.
type Target struct {
	Size int
	Path string
}

// DefaultTargets are the icons the Tauri bundle expects, relative to the
// project root.
var DefaultTargets = []Target{
	{Size: 32, Path: filepath.Join("src-tauri", "icons", "32x32.png")},
	{Size: 128, Path: filepath.Join("src-tauri", "icons", "128x128.png")},
	{Size: 256, Path: filepath.Join("src-tauri", "icons", "icon.png")},
}

// Margin is the inset of the circle from each edge.
func Margin(size int) int {
	return size / 4
}

// CircleBounds returns the half-open box the circle is inscribed in. The
// box spans [margin, size-margin] inclusive on both axes.
func CircleBounds(size int) image.Rectangle {
	m := Margin(size)
	return image.Rect(m, m, size-m+1, size-m+1)
}

// Render draws the icon onto a new size×size canvas.
func Render(size int) (*ir.Canvas, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	c := ir.NewCanvas(size)
	raster.FillRect(c.Image, c.Bounds(), color.Background)
	raster.FillEllipse(c.Image, CircleBounds(size), color.Foreground)

	Logger().Debug("rendered icon", "size", size, "margin", Margin(size), "circle", CircleBounds(size).String())
	return c, nil
}

// EncodePNG renders the icon and encodes it as an RGBA PNG.
func EncodePNG(size int) ([]byte, error) {
	c, err := Render(size)
	if err != nil {
		return nil, err
	}
	data, err := png.EncodeRGBA(c.Image, png.EncoderOptions{Compression: png.BestCompression})
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	return data, nil
}

// Create renders a size×size icon and writes it to outputPath, replacing
// any existing file. Parent directories are not created.
func Create(size int, outputPath string) error {
	data, err := EncodePNG(size)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	Logger().Debug("wrote icon", "size", size, "path", outputPath, "bytes", len(data))
	return nil
}
