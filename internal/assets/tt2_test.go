package assets

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestDecodeTT2(t *testing.T) {
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, uint16(2))
	for i := 0; i < 2; i++ {
		tile := make([]byte, TileBitmapSize)
		for j := range tile {
			tile[j] = byte(i*10 + j%7)
		}
		buf.Write(tile)
	}

	ts, err := DecodeTT2(&buf)
	if err != nil {
		t.Fatalf("DecodeTT2: %v", err)
	}
	if ts.NumTiles != 2 {
		t.Fatalf("NumTiles = %d, want 2", ts.NumTiles)
	}
	if len(ts.Bitmaps) != 2 {
		t.Fatalf("len(Bitmaps) = %d, want 2", len(ts.Bitmaps))
	}
	for _, bmp := range ts.Bitmaps {
		if len(bmp) != TileBitmapSize {
			t.Fatalf("bitmap size = %d, want %d", len(bmp), TileBitmapSize)
		}
	}
}
