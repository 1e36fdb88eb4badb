package png

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"testing"
)

func TestSplitIDAT(t *testing.T) {
	stream := bytes.Repeat([]byte{0xab}, 250)

	chunks, err := SplitIDAT(stream, 100)
	if err != nil {
		t.Fatalf("SplitIDAT: %v", err)
	}
	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(chunks))
	}
	if len(chunks[0]) != 100 || len(chunks[1]) != 100 || len(chunks[2]) != 50 {
		t.Errorf("unexpected chunk sizes %d/%d/%d", len(chunks[0]), len(chunks[1]), len(chunks[2]))
	}
	if !bytes.Equal(bytes.Join(chunks, nil), stream) {
		t.Error("chunks do not reassemble to the original stream")
	}
}

func TestSplitIDATEdgeCases(t *testing.T) {
	if _, err := SplitIDAT([]byte{1}, 0); err == nil {
		t.Error("expected error for zero chunk size")
	}
	chunks, err := SplitIDAT(nil, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(chunks) != 1 || len(chunks[0]) != 0 {
		t.Errorf("empty stream should yield one empty chunk, got %d", len(chunks))
	}
}

func TestWriteChunk(t *testing.T) {
	var buf bytes.Buffer
	if err := writeChunk(&buf, "tEXt", []byte("hi")); err != nil {
		t.Fatalf("writeChunk: %v", err)
	}
	b := buf.Bytes()
	if len(b) != 4+4+2+4 {
		t.Fatalf("chunk is %d bytes, want 14", len(b))
	}
	if n := binary.BigEndian.Uint32(b[:4]); n != 2 {
		t.Errorf("length = %d, want 2", n)
	}
	if string(b[4:8]) != "tEXt" {
		t.Errorf("type = %q", b[4:8])
	}
	if got, want := binary.BigEndian.Uint32(b[10:]), crc32.ChecksumIEEE([]byte("tEXthi")); got != want {
		t.Errorf("crc = 0x%08x, want 0x%08x", got, want)
	}

	if err := writeChunk(&buf, "bad", nil); err == nil {
		t.Error("expected error for 3-byte chunk type")
	}
}
