package sim

// newTestWorld builds a World over an all-passable tile grid with a solid
// floor row at y=18, no loader/sound collaborators, ready for tick-by-tick
// assertions.
func newTestWorld(spawnX, spawnY int) *World {
	tiles := make([]uint8, MapWidthTiles*MapHeightTiles)
	for tx := 0; tx < MapWidthTiles; tx++ {
		tiles[9*MapWidthTiles+tx] = 1 // row 9 (y=18,19) solid
	}
	grid := NewTileGrid(tiles, 0)

	level := &Level{Number: LevelLake, LastPassable: 0}
	stage := &Stage{Tiles: grid, ExitL: ExitUnused, ExitR: ExitUnused, Item: Item{Type: ItemUnused}}
	for i := range stage.Enemies {
		stage.Enemies[i] = EnemyRecord{Behavior: NewBehavior(BehaviorUnused, false)}
	}
	for i := range stage.Doors {
		stage.Doors[i] = Door{X: DoorUnused, Y: DoorUnused}
	}

	return NewWorld(level, stage, LevelLake, 0, spawnX, spawnY, nil, nil)
}
