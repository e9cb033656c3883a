// Package leveldata holds the compile-time descriptors for all eight levels
// — tileset/map filenames, door tiles, sprite-sheet descriptors, and each
// stage's item/exits/doors/enemy spawns — and a StageLoader that resolves
// them against decoded assets on disk into sim.Level/sim.Stage values.
package leveldata

import "comicsim/internal/sim"

// ShpFile names a sprite sheet and its frame-selection metadata, the
// on-disk counterpart to sim.ShpDescriptor.
type ShpFile struct {
	Filename          string
	NumDistinctFrames uint8
	Horizontal        sim.SpriteHorizontal
	Animation         sim.SpriteAnimation
}

func (f ShpFile) unused() bool { return f.NumDistinctFrames == 0 }

// DoorDescriptor is a stage's door slot: position plus transition target.
type DoorDescriptor struct {
	X, Y        uint8
	TargetLevel sim.LevelNumber
	TargetStage uint8
}

func (d DoorDescriptor) unused() bool {
	return d.X == sim.DoorUnused || d.Y == sim.DoorUnused
}

// EnemySpawn is a stage's static enemy slot: which sprite sheet to use and
// which tagged behavior to dispatch.
type EnemySpawn struct {
	ShpIndex uint8
	Behavior sim.Behavior
}

// StageDescriptor is one stage's static data: item, side exits, doors, and
// enemy spawns, plus the filename of its PT tile map.
type StageDescriptor struct {
	PTFilename string
	Item       sim.Item
	ExitL      uint8
	ExitR      uint8
	Doors      [sim.MaxDoors]DoorDescriptor
	Enemies    [sim.MaxEnemies]EnemySpawn
}

// LevelDescriptor is one level's static data: tileset + three stages + up
// to four enemy sprite sheets, mirroring the original's level_t layout.
type LevelDescriptor struct {
	Number     sim.LevelNumber
	TT2Filename string
	// LastPassable is the tileset's solid/passable threshold, supplied by
	// the asset layer per level (not stored in the original's level_t; the
	// original hardcodes tile IDs per tileset in its rendering tables).
	LastPassable uint8
	DoorTileUL   uint8
	DoorTileUR   uint8
	DoorTileLL   uint8
	DoorTileLR   uint8
	Shp          [4]ShpFile
	Stages       [3]StageDescriptor
}

var unusedEnemy = EnemySpawn{ShpIndex: 0, Behavior: sim.NewBehavior(sim.BehaviorUnused, false)}

func noDoors() [sim.MaxDoors]DoorDescriptor {
	var d [sim.MaxDoors]DoorDescriptor
	for i := range d {
		d[i] = DoorDescriptor{X: sim.DoorUnused, Y: sim.DoorUnused}
	}
	return d
}

func noEnemies() [sim.MaxEnemies]EnemySpawn {
	var e [sim.MaxEnemies]EnemySpawn
	for i := range e {
		e[i] = unusedEnemy
	}
	return e
}

// Lake is the game's first level, fully authored: three stages connected by
// doors back into itself, Shed, Cave, Space, and Base.
var Lake = LevelDescriptor{
	Number:       sim.LevelLake,
	TT2Filename:  "lake.tt2",
	LastPassable: 15,
	DoorTileUL:   16, DoorTileUR: 17, DoorTileLL: 16, DoorTileLR: 17,
	Shp: [4]ShpFile{
		{"fb.shp", 3, sim.SpriteHorizontalDuplicated, sim.SpriteAnimationAlternate},
		{"bug.shp", 3, sim.SpriteHorizontalDuplicated, sim.SpriteAnimationAlternate},
		{},
		{},
	},
	Stages: [3]StageDescriptor{
		{
			PTFilename: "lake0.pt",
			Item:       sim.Item{Type: sim.ItemBlastolaCola, X: 112, Y: 12},
			ExitL:      1,
			ExitR:      sim.ExitUnused,
			Doors: [sim.MaxDoors]DoorDescriptor{
				{X: 118, Y: 10, TargetLevel: sim.LevelLake, TargetStage: 2},
				{X: 248, Y: 14, TargetLevel: sim.LevelShed, TargetStage: 0},
				{X: sim.DoorUnused, Y: sim.DoorUnused},
			},
			Enemies: [sim.MaxEnemies]EnemySpawn{
				{ShpIndex: 0, Behavior: sim.NewBehavior(sim.BehaviorUnused, false)},
				{ShpIndex: 0, Behavior: sim.NewBehavior(sim.BehaviorUnused, false)},
				{ShpIndex: 1, Behavior: sim.NewBehavior(sim.BehaviorLeap, false)},
				{ShpIndex: 1, Behavior: sim.NewBehavior(sim.BehaviorLeap, false)},
			},
		},
		{
			PTFilename: "lake1.pt",
			Item:       sim.Item{Type: sim.ItemShield, X: 178, Y: 10},
			ExitL:      2,
			ExitR:      0,
			Doors:      noDoors(),
			Enemies: [sim.MaxEnemies]EnemySpawn{
				{ShpIndex: 0, Behavior: sim.NewBehavior(sim.BehaviorBounce, false)},
				{ShpIndex: 0, Behavior: sim.NewBehavior(sim.BehaviorBounce, false)},
				{ShpIndex: 1, Behavior: sim.NewBehavior(sim.BehaviorLeap, false)},
				{ShpIndex: 1, Behavior: sim.NewBehavior(sim.BehaviorLeap, false)},
			},
		},
		{
			PTFilename: "lake2.pt",
			Item:       sim.Item{Type: sim.ItemBlastolaCola, X: 124, Y: 4},
			ExitL:      sim.ExitUnused,
			ExitR:      1,
			Doors: [sim.MaxDoors]DoorDescriptor{
				{X: 10, Y: 14, TargetLevel: sim.LevelCave, TargetStage: 0},
				{X: 110, Y: 6, TargetLevel: sim.LevelSpace, TargetStage: 0},
				{X: 74, Y: 8, TargetLevel: sim.LevelBase, TargetStage: 1},
			},
			Enemies: [sim.MaxEnemies]EnemySpawn{
				{ShpIndex: 0, Behavior: sim.NewBehavior(sim.BehaviorBounce, false)},
				{ShpIndex: 0, Behavior: sim.NewBehavior(sim.BehaviorBounce, false)},
				{ShpIndex: 1, Behavior: sim.NewBehavior(sim.BehaviorLeap, false)},
				{ShpIndex: 1, Behavior: sim.NewBehavior(sim.BehaviorLeap, false)},
			},
		},
	},
}

// Forest is the game's second fully-authored level.
var Forest = LevelDescriptor{
	Number:       sim.LevelForest,
	TT2Filename:  "forest.tt2",
	LastPassable: 47,
	DoorTileUL:   48, DoorTileUR: 49, DoorTileLL: 48, DoorTileLR: 49,
	Shp: [4]ShpFile{
		{"bird.shp", 3, sim.SpriteHorizontalSeparate, sim.SpriteAnimationAlternate},
		{"bird2.shp", 3, sim.SpriteHorizontalSeparate, sim.SpriteAnimationAlternate},
		{},
		{},
	},
	Stages: [3]StageDescriptor{
		{
			PTFilename: "forest0.pt",
			Item:       sim.Item{Type: sim.ItemBlastolaCola, X: 12, Y: 14},
			ExitL:      sim.ExitUnused,
			ExitR:      1,
			Doors: [sim.MaxDoors]DoorDescriptor{
				{X: 12, Y: 12, TargetLevel: sim.LevelCastle, TargetStage: 0},
				{X: sim.DoorUnused, Y: sim.DoorUnused},
				{X: sim.DoorUnused, Y: sim.DoorUnused},
			},
			Enemies: [sim.MaxEnemies]EnemySpawn{
				{ShpIndex: 0, Behavior: sim.NewBehavior(sim.BehaviorBounce, false)},
				{ShpIndex: 0, Behavior: sim.NewBehavior(sim.BehaviorBounce, false)},
				unusedEnemy,
				unusedEnemy,
			},
		},
		{
			PTFilename: "forest1.pt",
			Item:       sim.Item{Type: sim.ItemShield, X: 118, Y: 10},
			ExitL:      0,
			ExitR:      2,
			Doors:      noDoors(),
			Enemies: [sim.MaxEnemies]EnemySpawn{
				{ShpIndex: 0, Behavior: sim.NewBehavior(sim.BehaviorBounce, false)},
				{ShpIndex: 0, Behavior: sim.NewBehavior(sim.BehaviorBounce, false)},
				unusedEnemy,
				{ShpIndex: 1, Behavior: sim.NewBehavior(sim.BehaviorShy, false)},
			},
		},
		{
			PTFilename: "forest2.pt",
			Item:       sim.Item{Type: sim.ItemDoorKey, X: 160, Y: 2},
			ExitL:      1,
			ExitR:      sim.ExitUnused,
			Doors: [sim.MaxDoors]DoorDescriptor{
				{X: 238, Y: 12, TargetLevel: sim.LevelLake, TargetStage: 0},
				{X: 160, Y: 14, TargetLevel: sim.LevelComp, TargetStage: 2},
				{X: sim.DoorUnused, Y: sim.DoorUnused},
			},
			Enemies: [sim.MaxEnemies]EnemySpawn{
				{ShpIndex: 0, Behavior: sim.NewBehavior(sim.BehaviorBounce, false)},
				{ShpIndex: 1, Behavior: sim.NewBehavior(sim.BehaviorShy, false)},
				{ShpIndex: 0, Behavior: sim.NewBehavior(sim.BehaviorBounce, false)},
				{ShpIndex: 1, Behavior: sim.NewBehavior(sim.BehaviorShy, false)},
			},
		},
	},
}

// emptyLevel builds a stub level descriptor carrying only its filenames and
// door-tile IDs, with no stages populated. The upstream source this was
// distilled from leaves these six levels as filename-only stubs pending a
// full data migration from the original assembly; this tree mirrors that
// same incompleteness rather than inventing stage layouts with no ground
// truth to check them against.
func emptyLevel(number sim.LevelNumber, tt2, doorUL, doorUR, doorLL, doorLR uint8, tt2Name string) LevelDescriptor {
	ld := LevelDescriptor{
		Number:       number,
		TT2Filename:  tt2Name,
		LastPassable: tt2,
		DoorTileUL:   doorUL, DoorTileUR: doorUR, DoorTileLL: doorLL, DoorTileLR: doorLR,
	}
	for i := range ld.Stages {
		ld.Stages[i] = StageDescriptor{
			Item:    sim.Item{Type: sim.ItemUnused},
			ExitL:   sim.ExitUnused,
			ExitR:   sim.ExitUnused,
			Doors:   noDoors(),
			Enemies: noEnemies(),
		}
	}
	return ld
}

var Space = emptyLevel(sim.LevelSpace, 31, 32, 33, 32, 33, "space.tt2")
var Base = emptyLevel(sim.LevelBase, 31, 32, 33, 32, 33, "base.tt2")
var Cave = emptyLevel(sim.LevelCave, 31, 32, 33, 32, 33, "cave.tt2")
var Shed = emptyLevel(sim.LevelShed, 31, 32, 33, 32, 33, "shed.tt2")
var Castle = emptyLevel(sim.LevelCastle, 47, 48, 49, 48, 49, "castle.tt2")
var Comp = emptyLevel(sim.LevelComp, 31, 32, 33, 32, 33, "comp.tt2")

// Levels indexes all eight level descriptors by sim.LevelNumber, mirroring
// the original's level_data_pointers array.
var Levels = [8]*LevelDescriptor{
	&Lake, &Forest, &Space, &Base, &Cave, &Shed, &Castle, &Comp,
}

func (l *LevelDescriptor) stageFilename(stageNumber uint8) string {
	return l.Stages[stageNumber].PTFilename
}
