package assets

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestDecodePT(t *testing.T) {
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, uint16(4))
	binary.Write(&buf, binary.LittleEndian, uint16(2))
	tiles := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	buf.Write(tiles)

	tm, err := DecodePT(&buf)
	if err != nil {
		t.Fatalf("DecodePT: %v", err)
	}
	if tm.Width != 4 || tm.Height != 2 {
		t.Fatalf("dims = (%d,%d), want (4,2)", tm.Width, tm.Height)
	}
	if !bytes.Equal(tm.Tiles, tiles) {
		t.Fatalf("tiles = %v, want %v", tm.Tiles, tiles)
	}
}

func TestDecodePTTruncated(t *testing.T) {
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, uint16(4))
	binary.Write(&buf, binary.LittleEndian, uint16(2))
	buf.Write([]byte{1, 2, 3}) // short by 5 bytes

	if _, err := DecodePT(&buf); err == nil {
		t.Fatalf("expected an error decoding a truncated tile map")
	}
}
