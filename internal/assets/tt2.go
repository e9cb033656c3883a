package assets

import (
	"encoding/binary"
	"fmt"
	"io"
)

// EGAPlaneBytesPerTile is the byte size of one 16x16 tile's single EGA
// bitplane: 16 rows of 2 bytes (16 bits) each.
const EGAPlaneBytesPerTile = 16 * 2

// TileBitmapSize is the total byte size of one tile across all 4 EGA planes.
const TileBitmapSize = 4 * EGAPlaneBytesPerTile

// Tileset is a decoded TT2 asset: a sequence of 16x16 EGA-planar tile
// bitmaps, 128 bytes each (4 planes x 16 rows x 2 bytes).
type Tileset struct {
	NumTiles uint16
	Bitmaps  [][]byte // one TileBitmapSize-byte slice per tile
}

// DecodeTT2 reads a TT2 tileset asset: num_tiles:u16, then that many
// 128-byte EGA-planar tile bitmaps.
func DecodeTT2(r io.Reader) (*Tileset, error) {
	var numTiles uint16
	if err := binary.Read(r, binary.LittleEndian, &numTiles); err != nil {
		return nil, fmt.Errorf("decode TT2 header: %w", err)
	}

	bitmaps := make([][]byte, numTiles)
	for i := range bitmaps {
		buf := make([]byte, TileBitmapSize)
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, fmt.Errorf("decode TT2 tile %d: %w", i, err)
		}
		bitmaps[i] = buf
	}

	return &Tileset{NumTiles: numTiles, Bitmaps: bitmaps}, nil
}
