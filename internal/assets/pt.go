// Package assets decodes the original game's binary asset formats
// (tile maps, tilesets, sprite sheets, fullscreen EGA images) at the system
// boundary, using only encoding/binary — the tick loop never parses bytes.
package assets

import (
	"encoding/binary"
	"fmt"
	"io"
)

// TileMap is a decoded PT (tile map) asset: a row-major grid of tile IDs.
type TileMap struct {
	Width  uint16
	Height uint16
	Tiles  []uint8
}

// DecodePT reads a PT tile-map asset: width:u16, height:u16, then
// width*height tile-ID bytes, row-major.
func DecodePT(r io.Reader) (*TileMap, error) {
	var header struct {
		Width  uint16
		Height uint16
	}
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("decode PT header: %w", err)
	}

	n := int(header.Width) * int(header.Height)
	tiles := make([]uint8, n)
	if _, err := io.ReadFull(r, tiles); err != nil {
		return nil, fmt.Errorf("decode PT tiles: %w", err)
	}

	return &TileMap{Width: header.Width, Height: header.Height, Tiles: tiles}, nil
}
