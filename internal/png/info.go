package png

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
)

// PNG color types.
const (
	colorTypeGray      = 0
	colorTypeRGB       = 2
	colorTypePalette   = 3
	colorTypeGrayAlpha = 4
	colorTypeRGBA      = 6
)

// colorTypeName returns a string for the IHDR color type byte.
func colorTypeName(ct byte) string {
	switch ct {
	case colorTypeGray:
		return "Grayscale"
	case colorTypeRGB:
		return "RGB"
	case colorTypePalette:
		return "Palette"
	case colorTypeGrayAlpha:
		return "GrayAlpha"
	case colorTypeRGBA:
		return "RGBA"
	default:
		return fmt.Sprintf("ColorType(%d)", ct)
	}
}

func channels(ct byte) int {
	switch ct {
	case colorTypeGray, colorTypePalette:
		return 1
	case colorTypeGrayAlpha:
		return 2
	case colorTypeRGB:
		return 3
	case colorTypeRGBA:
		return 4
	default:
		return 0
	}
}

// ImageInfo contains metadata from a PNG header.
type ImageInfo struct {
	Width       int
	Height      int
	BitDepth    int
	ColorType   string
	NumChannels int
	Interlaced  bool
}

// GetInfo reads the PNG signature and IHDR chunk without decoding pixels.
func GetInfo(data []byte) (*ImageInfo, error) {
	const headerEnd = len(Signature) + 8 + ihdrLen + 4
	if len(data) < headerEnd {
		return nil, errors.New("data too short for PNG")
	}
	if string(data[:len(Signature)]) != Signature {
		return nil, errors.New("not a PNG file (bad signature)")
	}

	chunk := data[len(Signature):headerEnd]
	length := binary.BigEndian.Uint32(chunk[0:4])
	if typ := string(chunk[4:8]); typ != "IHDR" {
		return nil, fmt.Errorf("first chunk is %q, expected IHDR", typ)
	}
	if length != ihdrLen {
		return nil, fmt.Errorf("IHDR length %d, expected %d", length, ihdrLen)
	}
	body := chunk[8 : 8+ihdrLen]
	want := binary.BigEndian.Uint32(chunk[8+ihdrLen:])
	if got := crc32.ChecksumIEEE(chunk[4 : 8+ihdrLen]); got != want {
		return nil, fmt.Errorf("IHDR CRC mismatch: 0x%08x, expected 0x%08x", got, want)
	}

	width := binary.BigEndian.Uint32(body[0:4])
	height := binary.BigEndian.Uint32(body[4:8])
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("invalid dimensions %dx%d", width, height)
	}

	return &ImageInfo{
		Width:       int(width),
		Height:      int(height),
		BitDepth:    int(body[8]),
		ColorType:   colorTypeName(body[9]),
		NumChannels: channels(body[9]),
		Interlaced:  body[12] != 0,
	}, nil
}
