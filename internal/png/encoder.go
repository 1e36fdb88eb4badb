// Package png writes and inspects the PNG files the icon generator produces.
package png

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
)

// CompressionLevel mirrors the levels offered by image/png.
type CompressionLevel int

const (
	DefaultCompression CompressionLevel = 0
	NoCompression      CompressionLevel = -1
	BestSpeed          CompressionLevel = -2
	BestCompression    CompressionLevel = -3
)

func (l CompressionLevel) zlibLevel() int {
	switch l {
	case NoCompression:
		return zlib.NoCompression
	case BestSpeed:
		return zlib.BestSpeed
	case BestCompression:
		return zlib.BestCompression
	default:
		return zlib.DefaultCompression
	}
}

// EncoderOptions controls RGBA PNG encoding.
type EncoderOptions struct {
	Compression  CompressionLevel
	MaxChunkSize int // IDAT payload cap, default DefaultMaxChunkSize
}

// EncodeRGBA encodes img as an 8-bit RGBA PNG (color type 6). Unlike
// image/png it keeps the alpha channel even when every pixel is opaque.
func EncodeRGBA(img *image.RGBA, opts EncoderOptions) ([]byte, error) {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image dimensions %dx%d", width, height)
	}
	if opts.MaxChunkSize == 0 {
		opts.MaxChunkSize = DefaultMaxChunkSize
	}

	var stream bytes.Buffer
	zw, err := zlib.NewWriterLevel(&stream, opts.Compression.zlibLevel())
	if err != nil {
		return nil, fmt.Errorf("zlib: %w", err)
	}

	const bpp = 4
	rowLen := width * bpp
	f := newFilterer(width, bpp)
	prev := make([]byte, rowLen)
	cur := make([]byte, rowLen)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		off := img.PixOffset(b.Min.X, y)
		unpremultiply(cur, img.Pix[off:off+rowLen])
		if _, err := zw.Write(f.filter(cur, prev)); err != nil {
			return nil, fmt.Errorf("compressing row %d: %w", y-b.Min.Y, err)
		}
		prev, cur = cur, prev
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("zlib: %w", err)
	}

	idat, err := SplitIDAT(stream.Bytes(), opts.MaxChunkSize)
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	out.WriteString(Signature)
	if err := writeChunk(&out, "IHDR", ihdr(width, height)); err != nil {
		return nil, err
	}
	for _, c := range idat {
		if err := writeChunk(&out, "IDAT", c); err != nil {
			return nil, err
		}
	}
	if err := writeChunk(&out, "IEND", nil); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func ihdr(width, height int) []byte {
	data := make([]byte, ihdrLen)
	binary.BigEndian.PutUint32(data[0:4], uint32(width))
	binary.BigEndian.PutUint32(data[4:8], uint32(height))
	data[8] = 8 // bit depth
	data[9] = colorTypeRGBA
	// compression, filter and interlace methods stay 0
	return data
}

// unpremultiply copies a row of premultiplied RGBA pixels into dst as
// straight alpha, which is what PNG stores.
func unpremultiply(dst, src []byte) {
	for i := 0; i < len(src); i += 4 {
		a := src[i+3]
		if a == 0xff || a == 0 {
			copy(dst[i:i+4], src[i:i+4])
			continue
		}
		c := color.NRGBAModel.Convert(color.RGBA{src[i], src[i+1], src[i+2], a}).(color.NRGBA)
		dst[i], dst[i+1], dst[i+2], dst[i+3] = c.R, c.G, c.B, c.A
	}
}
