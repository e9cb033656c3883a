package sim

// Fireball is one pool slot. A slot is inactive iff both X and Y equal
// FireballDead; invariant 2 of the spec requires the pair to move together.
type Fireball struct {
	X, Y             int
	Vel              int
	CorkscrewPhase   uint8
	Animation        uint8
	NumAnimFrames    uint8
}

func (f *Fireball) dead() bool {
	return f.X == FireballDead && f.Y == FireballDead
}

func (f *Fireball) despawn() {
	f.X = FireballDead
	f.Y = FireballDead
}

// trySpawnFireball implements section 4.3's Spawn rule: scan the first
// Firepower slots for the first dead one and initialize it from the
// player's position and facing. Only one fireball spawns per call.
func (w *World) trySpawnFireball() {
	if w.Player.Firepower == 0 {
		return
	}
	limit := w.Player.Firepower
	if limit > MaxFireballs {
		limit = MaxFireballs
	}
	for i := 0; i < limit; i++ {
		fb := &w.Fireballs[i]
		if !fb.dead() {
			continue
		}
		fb.Y = w.Player.Y + 1
		fb.X = w.Player.X
		if w.Player.Facing == FacingRight {
			fb.Vel = FireballVelocity
		} else {
			fb.Vel = -FireballVelocity
		}
		fb.CorkscrewPhase = 2
		fb.Animation = 0
		fb.NumAnimFrames = 2
		if w.Sound != nil {
			w.Sound.Play(SoundFire, 0)
		}
		return
	}
}

// updateFireballs implements section 4.3's per-tick update for every active
// slot: integrate, apply corkscrew, animate, despawn off-camera, and collide
// with spawned enemies.
func (w *World) updateFireballs() {
	if w.Player.Firepower == 0 {
		return
	}
	limit := w.Player.Firepower
	if limit > MaxFireballs {
		limit = MaxFireballs
	}
	for i := 0; i < limit; i++ {
		fb := &w.Fireballs[i]
		if fb.dead() {
			continue
		}

		fb.X += fb.Vel

		if w.Player.HasCorkscrew {
			switch fb.CorkscrewPhase {
			case 2:
				fb.Y++
				fb.CorkscrewPhase = 1
			case 1:
				fb.Y--
				fb.CorkscrewPhase = 2
			}
		}

		fb.Animation++
		if fb.Animation >= fb.NumAnimFrames {
			fb.Animation = 0
		}

		if fb.X < w.CameraX {
			fb.despawn()
			continue
		}
		if fb.X-w.CameraX > PlayfieldWidth-2 {
			fb.despawn()
			continue
		}

		for j := range w.Enemies {
			en := &w.Enemies[j]
			if en.State != StateSpawned {
				continue
			}
			if !overlaps1D(fb.Y-en.Y, 0, 1) {
				continue
			}
			if !overlaps1D(fb.X-en.X, -1, 1) {
				continue
			}

			en.State = StateWhiteSpark0
			fb.despawn()
			w.AwardPoints(3)
			if w.Sound != nil {
				w.Sound.Play(SoundHitEnemy, 1)
			}
			break
		}
	}
}
