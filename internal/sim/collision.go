package sim

// widthAwareSolid reports whether the tile at (x, y) is solid, and — when x is
// odd — also checks (x+1, y), since actors are 2 game units wide and an odd x
// means the actor straddles two tile columns. This factors out the repeated
// "check primary tile, then check the neighbor when odd" pattern shared by
// every enemy behavior and the player's own ceiling/ground tests.
func widthAwareSolid(grid *TileGrid, x, y int) bool {
	if grid.SolidAt(x, y) {
		return true
	}
	if x&1 != 0 {
		return grid.SolidAt(x+1, y)
	}
	return false
}

// heightAwareSolid is widthAwareSolid's vertical counterpart: when y is odd,
// an actor 2 units tall also occupies the tile row below.
func heightAwareSolid(grid *TileGrid, x, y int) bool {
	if grid.SolidAt(x, y) {
		return true
	}
	if y&1 != 0 {
		return grid.SolidAt(x, y+1)
	}
	return false
}

// overlaps1D reports whether a signed difference falls within [lo, hi], used
// by every actor-vs-actor hit test in this package (fireball-vs-enemy,
// enemy-vs-player, item-vs-player all reduce to two of these).
func overlaps1D(diff, lo, hi int) bool {
	return diff >= lo && diff <= hi
}

// clampInt clamps v to [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
