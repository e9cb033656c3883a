package sim

// TileGrid is a dense, row-major 128x10 array of tile IDs, adapted from the
// reference corpus's spatial.Grid indexing discipline: a flat backing slice
// with bounds-clamped lookups rather than a 2D slice-of-slices.
type TileGrid struct {
	tiles      [MapWidthTiles * MapHeightTiles]uint8
	lastPassable uint8
}

// NewTileGrid builds a grid from row-major tile data (as decoded from a PT
// asset file) and the tileset's last-passable-ID threshold.
func NewTileGrid(data []uint8, lastPassable uint8) *TileGrid {
	g := &TileGrid{lastPassable: lastPassable}
	n := copy(g.tiles[:], data)
	_ = n
	return g
}

// tileIndex converts game-unit coordinates to a row-major tile index.
// Out-of-range coordinates return -1.
func tileIndex(x, y int) int {
	if x < 0 || y < 0 {
		return -1
	}
	tx := x / 2
	ty := y / 2
	if tx < 0 || tx >= MapWidthTiles || ty < 0 || ty >= MapHeightTiles {
		return -1
	}
	return ty*MapWidthTiles + tx
}

// TileAt returns the tile ID at the given game-unit coordinates. Out-of-range
// lookups return 0 (passable), matching the original's "no assert" policy.
func (g *TileGrid) TileAt(x, y int) uint8 {
	idx := tileIndex(x, y)
	if idx < 0 {
		return 0
	}
	return g.tiles[idx]
}

// IsSolid reports whether a tile ID is solid (ID strictly greater than the
// tileset's last passable ID).
func (g *TileGrid) IsSolid(tileID uint8) bool {
	return tileID > g.lastPassable
}

// SolidAt is a convenience combining TileAt and IsSolid for a single coordinate.
func (g *TileGrid) SolidAt(x, y int) bool {
	return g.IsSolid(g.TileAt(x, y))
}
