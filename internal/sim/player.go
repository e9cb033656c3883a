package sim

// Player is the Hero's full simulation state. Only position, velocity, and
// air-state are reset on stage entry; inventory, score, and lives persist
// across stage and level transitions.
type Player struct {
	X, Y int
	Facing Facing

	YVel        int // signed, in eighths of a game unit per tick
	XMomentum   int // [-5, +5], meaningful only while airborne
	IsAirborne  bool
	JumpCounter int
	JumpPower   int
	CeilingStick bool
	LandedThisTick bool

	HP                int
	HPPendingIncrease int
	Lives             int

	HasCorkscrew    bool
	HasDoorKey      bool
	HasBoots        bool
	HasLantern      bool
	HasTeleportWand bool
	HasShield       bool

	Firepower int

	Treasures  int
	WinCounter int

	// Door transition bookkeeping.
	SourceDoorLevel LevelNumber
	SourceDoorStage uint8

	inhibitDeathByEnemyCollision bool
	deathAnimationFinished       bool
}

// NewPlayer returns a Hero in the default starting state: no lives lost, full
// health, default jump power, no inventory, at the given spawn position.
func NewPlayer(x, y int) *Player {
	return &Player{
		X:         x,
		Y:         y,
		Facing:    FacingRight,
		JumpPower: JumpPowerDefault,
		HP:        MaxHP,
		Lives:     3,
	}
}

// ResetForStageEntry clears position, velocity, and air-state for a new
// stage; inventory, score, and lives are untouched.
func (p *Player) ResetForStageEntry(x, y int) {
	p.X = x
	p.Y = y
	p.YVel = 0
	p.XMomentum = 0
	p.IsAirborne = false
	p.JumpCounter = 0
	p.CeilingStick = false
	p.LandedThisTick = false
}
