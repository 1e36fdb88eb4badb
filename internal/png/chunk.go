package png

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"io"
)

const (
	// Signature is the 8-byte magic every PNG file starts with.
	Signature = "\x89PNG\r\n\x1a\n"

	// DefaultMaxChunkSize caps the payload of a single IDAT chunk.
	DefaultMaxChunkSize = 1 << 16

	ihdrLen = 13
)

// writeChunk writes one length-prefixed, CRC-terminated chunk.
func writeChunk(w io.Writer, typ string, data []byte) error {
	if len(typ) != 4 {
		return fmt.Errorf("invalid chunk type %q", typ)
	}
	var header [8]byte
	binary.BigEndian.PutUint32(header[:4], uint32(len(data)))
	copy(header[4:], typ)

	crc := crc32.NewIEEE()
	crc.Write(header[4:])
	crc.Write(data)

	var footer [4]byte
	binary.BigEndian.PutUint32(footer[:], crc.Sum32())

	if _, err := w.Write(header[:]); err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	_, err := w.Write(footer[:])
	return err
}

// SplitIDAT splits a compressed image stream into IDAT-sized payloads of at
// most size bytes each. An empty stream yields a single empty payload.
func SplitIDAT(stream []byte, size int) ([][]byte, error) {
	if size <= 0 {
		return nil, errors.New("chunk size must be positive")
	}
	if len(stream) == 0 {
		return [][]byte{{}}, nil
	}

	numChunks := (len(stream) + size - 1) / size
	chunks := make([][]byte, 0, numChunks)
	for start := 0; start < len(stream); start += size {
		end := start + size
		if end > len(stream) {
			end = len(stream)
		}
		chunks = append(chunks, stream[start:end])
	}
	return chunks, nil
}
