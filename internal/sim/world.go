package sim

// World is the single mutable aggregate the tick loop operates on: the
// player, the fixed actor pools, the active level/stage, score/inventory
// bookkeeping, and the collaborators (sound, stage loading) the core calls
// out to. There is no random source anywhere in World — every subsystem's
// output is a pure function of the current state and the tick's input.
type World struct {
	Player *Player

	Enemies   [MaxEnemies]Enemy
	Fireballs [MaxFireballs]Fireball

	CameraX int

	CurrentLevel       *Level
	CurrentStage       *Stage
	CurrentLevelNumber LevelNumber
	CurrentStageNumber uint8

	Score Score

	// itemCollected tracks whether the current stage's single item has
	// already been picked up, so it stops being drawn/tested.
	itemCollected bool
	itemAnimFrame uint8

	// doorAnimTimer/doorAnimFrames drive the entry/exit door transition
	// animation; doorActive is true while a transition is in progress, and
	// the fireball, enemy and item updates are skipped for those ticks.
	doorAnimTimer     uint8
	doorAnimFrames    uint8
	doorActive        bool
	doorExiting       bool
	pendingDoorTarget Door

	// Enemy spawn scheduler state, section 4.6.
	spawnedThisTick  bool
	spawnOffsetIndex int
	respawnCycleIndex int
	respawnCountdown  int

	Sound  SoundDriver
	Loader StageLoader
	Events *EventLog

	TickCount uint64
}

var spawnOffsetCycle = [4]int{0, 2, 4, 6}
var respawnCycle = [5]int{20, 40, 60, 80, 100}

// NewWorld constructs a World ready to begin simulating from the given
// level/stage, with a freshly spawned player at spawnX/spawnY.
func NewWorld(level *Level, stage *Stage, levelNumber LevelNumber, stageNumber uint8, spawnX, spawnY int, loader StageLoader, sound SoundDriver) *World {
	w := &World{
		Player:             NewPlayer(spawnX, spawnY),
		CurrentLevel:       level,
		CurrentStage:       stage,
		CurrentLevelNumber: levelNumber,
		CurrentStageNumber: stageNumber,
		Loader:             loader,
		Sound:              sound,
		respawnCountdown:   respawnCycle[0],
	}
	for i := range w.Fireballs {
		w.Fireballs[i].despawn()
	}
	for i := range w.Enemies {
		w.Enemies[i].State = StateDespawned
	}
	return w
}

// Grid returns the active stage's tile grid, or nil if none is loaded.
func (w *World) Grid() *TileGrid {
	if w.CurrentStage == nil {
		return nil
	}
	return w.CurrentStage.Tiles
}
