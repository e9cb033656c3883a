// Package sim implements the deterministic tick-driven simulation core:
// player physics, the enemy/fireball/item actor subsystem, and door
// transitions, sequenced by a single World.Tick call per frame.
package sim

// Map and playfield geometry, in game units (1 unit = 8 pixels, 1 tile = 2x2 units).
const (
	MapWidthTiles   = 128
	MapHeightTiles  = 10
	MapWidth        = 256
	MapHeight       = 20
	PlayfieldWidth  = 24
	PlayfieldHeight = 20
)

// Player physics tuning, matching the original assembly's tuned constants.
const (
	GravityNormal     = 5
	GravitySpace      = 3
	TerminalVelocity  = 23
	JumpPowerDefault  = 4
	JumpPowerBoots    = 5
	JumpAcceleration  = 7
	JumpCounterStart  = 5
	MaxHP             = 6
	ExtraLifeInterval = 20000
)

// Fireball pool constants.
const (
	MaxFireballs     = 5
	FireballDead     = 0xFF
	FireballVelocity = 2
)

// Enemy pool constants.
const (
	MaxEnemies         = 4
	MaxDoors           = 3
	EnemyDespawnRadius = 30
)

// Facing is the direction the player or an enemy is oriented.
type Facing uint8

const (
	FacingRight Facing = 0
	FacingLeft  Facing = 5 // sprite-frame offset in the original, not a boolean
)

// LevelNumber identifies one of the eight levels.
type LevelNumber uint8

const (
	LevelLake LevelNumber = iota
	LevelForest
	LevelSpace
	LevelBase
	LevelCave
	LevelShed
	LevelCastle
	LevelComp
)

// TickOutcome is the terminal signal a tick can produce; zero value means
// "continue simulating".
type TickOutcome uint8

const (
	OutcomeContinue TickOutcome = iota
	OutcomeQuit
	OutcomeVictory
	OutcomeGameOver
)
