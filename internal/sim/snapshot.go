package sim

import (
	"sync/atomic"
	"time"
)

// PlayerSnapshot is an immutable copy of the Hero's render-relevant state.
type PlayerSnapshot struct {
	X, Y   int
	Facing Facing
	HP     int
	Lives  int
}

// EnemySnapshot is an immutable copy of one enemy slot.
type EnemySnapshot struct {
	X, Y     int
	Facing   Facing
	State    EnemyState
	Frame    int
	ShpIndex uint8
}

// FireballSnapshot is an immutable copy of one fireball slot.
type FireballSnapshot struct {
	X, Y  int
	Frame int
}

// Snapshot is a complete immutable view of one simulated tick, published for
// a renderer to consume without ever touching the live World.
type Snapshot struct {
	Sequence   uint64
	Timestamp  time.Time
	TickNumber uint64

	Player    PlayerSnapshot
	Enemies   [MaxEnemies]EnemySnapshot
	Fireballs [MaxFireballs]FireballSnapshot

	CameraX int
	Score   uint32

	LevelNumber LevelNumber
	StageNumber uint8
}

// SnapshotPool is a triple-buffered, lock-free producer/consumer handoff: the
// tick loop is the sole writer, a renderer goroutine the sole reader. Counts
// are fixed by the actor pools, so unlike a dynamically-sized game snapshot
// there is no resource-limit parameter to pre-size slices against.
type SnapshotPool struct {
	snapshots [3]Snapshot
	writeIdx  uint32
	readIdx   uint32
	sequence  uint64
}

// NewSnapshotPool returns an empty triple buffer.
func NewSnapshotPool() *SnapshotPool {
	return &SnapshotPool{}
}

// AcquireWrite returns the next write slot for the tick loop to populate.
func (p *SnapshotPool) AcquireWrite() *Snapshot {
	idx := atomic.AddUint32(&p.writeIdx, 1) % 3
	snap := &p.snapshots[idx]
	snap.Sequence = atomic.AddUint64(&p.sequence, 1)
	snap.Timestamp = time.Now()
	return snap
}

// PublishWrite makes the most recently acquired write slot visible to readers.
func (p *SnapshotPool) PublishWrite() {
	atomic.StoreUint32(&p.readIdx, atomic.LoadUint32(&p.writeIdx))
}

// AcquireRead returns the latest published snapshot, or a zero Snapshot if
// none has been published yet.
func (p *SnapshotPool) AcquireRead() *Snapshot {
	idx := atomic.LoadUint32(&p.readIdx) % 3
	return &p.snapshots[idx]
}

// Publish fills and publishes a snapshot of the World's current tick in one
// call; it is the only place World state crosses into the render-facing copy.
func (w *World) Publish(pool *SnapshotPool) {
	snap := pool.AcquireWrite()
	snap.TickNumber = w.TickCount
	snap.CameraX = w.CameraX
	snap.Score = w.Score.Value()
	snap.LevelNumber = w.CurrentLevelNumber
	snap.StageNumber = w.CurrentStageNumber

	snap.Player = PlayerSnapshot{
		X:      w.Player.X,
		Y:      w.Player.Y,
		Facing: w.Player.Facing,
		HP:     w.Player.HP,
		Lives:  w.Player.Lives,
	}

	for i := range w.Enemies {
		en := &w.Enemies[i]
		var shpIndex uint8
		if w.CurrentStage != nil {
			shpIndex = w.CurrentStage.Enemies[i].ShpIndex
		}
		snap.Enemies[i] = EnemySnapshot{
			X:        en.X,
			Y:        en.Y,
			Facing:   en.Facing,
			State:    en.State,
			Frame:    int(en.AnimOrTimer),
			ShpIndex: shpIndex,
		}
	}

	for i := range w.Fireballs {
		fb := &w.Fireballs[i]
		snap.Fireballs[i] = FireballSnapshot{X: fb.X, Y: fb.Y, Frame: int(fb.Animation)}
	}

	pool.PublishWrite()
}
