package sim

// BehaviorKind tags which of the five AI routines an enemy dispatches to.
type BehaviorKind uint8

const (
	BehaviorUnused BehaviorKind = 0x7f
	BehaviorBounce BehaviorKind = 1
	BehaviorLeap   BehaviorKind = 2
	BehaviorRoll   BehaviorKind = 3
	BehaviorSeek   BehaviorKind = 4
	BehaviorShy    BehaviorKind = 5
	behaviorFastBit BehaviorKind = 0x80
)

// Behavior packs a BehaviorKind with an orthogonal FAST modifier bit, exactly
// as the original's single behavior byte does.
type Behavior uint8

// NewBehavior builds a Behavior from a kind and whether it is FAST-modified.
func NewBehavior(kind BehaviorKind, fast bool) Behavior {
	b := Behavior(kind)
	if fast {
		b |= Behavior(behaviorFastBit)
	}
	return b
}

// Kind returns the tagged variant, ignoring the FAST bit.
func (b Behavior) Kind() BehaviorKind {
	return BehaviorKind(b) &^ behaviorFastBit
}

// Fast reports whether the FAST modifier is set.
func (b Behavior) Fast() bool {
	return Behavior(b)&Behavior(behaviorFastBit) != 0
}

// Restraint is the per-enemy movement throttle. The three named values
// implement an alternating move/skip gate; any FAST-modified enemy is
// initialized to MoveEveryTick and never skips.
type Restraint uint8

const (
	RestraintMoveThisTick Restraint = 0
	RestraintSkipThisTick Restraint = 1
	RestraintMoveEveryTick Restraint = 2
)

// normalize applies the shared restraint state machine used by all five
// behaviors (Bounce, Leap, Roll, Seek, and Shy): SkipThisTick
// flips to MoveThisTick and the caller returns without moving; MoveThisTick
// flips to SkipThisTick and the caller moves; MoveEveryTick never skips and
// is left as MoveEveryTick; any stray value above it moves this tick and is
// reset to MoveThisTick.
func (r *Restraint) normalize() (shouldMove bool) {
	switch *r {
	case RestraintSkipThisTick:
		*r = RestraintMoveThisTick
		return false
	case RestraintMoveThisTick:
		*r = RestraintSkipThisTick
		return true
	default:
		if *r > RestraintMoveEveryTick {
			*r = RestraintMoveThisTick
		}
		return true
	}
}

// EnemyState is the enemy's lifecycle state: despawned, spawned (active), or
// one of two five-frame death animations.
type EnemyState uint8

const (
	StateDespawned EnemyState = 0
	StateSpawned   EnemyState = 1
	// StateWhiteSpark0..4: killed by a fireball, awards score, frames 0..4.
	StateWhiteSpark0 EnemyState = 2
	StateWhiteSpark4 EnemyState = 6
	// StateRedSpark0..4: killed by colliding with the player, damages the player.
	StateRedSpark0 EnemyState = 8
	StateRedSpark4 EnemyState = 12
)

// IsDeathAnimation reports whether state is any white- or red-spark frame.
func (s EnemyState) IsDeathAnimation() bool {
	return (s >= StateWhiteSpark0 && s <= StateWhiteSpark4) ||
		(s >= StateRedSpark0 && s <= StateRedSpark4)
}

// Enemy is one pool slot: position/velocity, behavior tag, lifecycle state,
// and the dual-purpose spawn-timer/animation-frame counter.
type Enemy struct {
	X, Y           int
	XVel, YVel     int
	Facing         Facing
	Behavior       Behavior
	State          EnemyState
	AnimOrTimer    uint8 // countdown while Despawned, animation frame while Spawned
	NumAnimFrames  uint8
	Restraint      Restraint
}
