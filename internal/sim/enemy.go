package sim

// updateEnemies implements section 4.7's per-tick loop over active slots,
// plus the section 4.6 spawn attempt for despawned ones.
func (w *World) updateEnemies() TickOutcome {
	w.spawnedThisTick = false
	outcome := OutcomeContinue

	for i := range w.Enemies {
		en := &w.Enemies[i]

		switch en.State {
		case StateDespawned:
			w.tickSpawnCountdown(i)
			continue
		case StateSpawned:
			if o := w.animateAndDispatch(i); o != OutcomeContinue {
				outcome = o
			}
		default:
			if en.State.IsDeathAnimation() {
				w.advanceDeathAnimation(i)
			}
		}
	}
	return outcome
}

// tickSpawnCountdown counts a despawned slot down to zero, then attempts a
// single spawn for it (at most one spawn total per tick, across all slots).
func (w *World) tickSpawnCountdown(i int) {
	en := &w.Enemies[i]
	if en.AnimOrTimer > 0 {
		en.AnimOrTimer--
		return
	}
	if w.spawnedThisTick {
		return
	}
	w.trySpawnEnemy(i)
}

// trySpawnEnemy implements section 4.6's spawn rule for slot i.
func (w *World) trySpawnEnemy(i int) {
	w.spawnedThisTick = true

	if w.CurrentStage == nil {
		w.Enemies[i].AnimOrTimer = 100
		return
	}
	record := w.CurrentStage.Enemies[i]
	if record.Unused() {
		w.Enemies[i].AnimOrTimer = 100
		return
	}

	offset := PlayfieldWidth + spawnOffsetCycle[w.spawnOffsetIndex]
	w.spawnOffsetIndex = (w.spawnOffsetIndex + 1) % len(spawnOffsetCycle)

	spawnX := w.Player.X
	if w.Player.Facing == FacingRight {
		spawnX += offset
	} else {
		spawnX -= offset
	}

	spawnY, ok := w.findSpawnY()
	if !ok {
		return
	}

	en := &w.Enemies[i]
	en.X, en.Y = spawnX, spawnY
	en.Behavior = record.Behavior
	en.State = StateSpawned
	en.AnimOrTimer = 0
	en.NumAnimFrames = 1
	en.Restraint = RestraintMoveThisTick

	switch record.Behavior.Kind() {
	case BehaviorBounce, BehaviorShy:
		en.XVel, en.YVel = -1, -1
		en.Facing = facingFromVel(en.XVel)
	default:
		en.XVel, en.YVel = 0, 0
		en.Facing = FacingLeft
	}
}

// findSpawnY scans upward from the player's feet for the first solid tile,
// then the first passable tile above it.
func (w *World) findSpawnY() (int, bool) {
	grid := w.Grid()
	if grid == nil {
		return 0, false
	}
	y := w.Player.Y + 4
	for y > 0 && !grid.SolidAt(w.Player.X, y) {
		y--
	}
	if y <= 0 {
		return 0, false
	}
	for y > 0 && grid.SolidAt(w.Player.X, y) {
		y--
	}
	return y, true
}

// animateAndDispatch advances an active enemy's animation frame, dispatches
// its behavior, then checks despawn-by-distance and player collision.
func (w *World) animateAndDispatch(i int) TickOutcome {
	en := &w.Enemies[i]
	if en.NumAnimFrames > 0 {
		en.AnimOrTimer = (en.AnimOrTimer + 1) % en.NumAnimFrames
	}

	dispatchBehavior(w, i)

	en = &w.Enemies[i]
	if en.State != StateSpawned {
		return OutcomeContinue
	}

	if abs(en.X-w.Player.X) > EnemyDespawnRadius {
		w.despawnEnemy(i, false)
		return OutcomeContinue
	}

	p := w.Player
	if en.Y-p.Y >= 0 && en.Y-p.Y < 4 && abs(en.X-p.X) <= 1 {
		en.State = StateRedSpark0
		en.AnimOrTimer = 0
		return w.damagePlayer()
	}
	return OutcomeContinue
}

// advanceDeathAnimation steps a white- or red-spark slot through its 5
// frames, then despawns it onto the respawn cycle.
func (w *World) advanceDeathAnimation(i int) {
	en := &w.Enemies[i]
	en.AnimOrTimer++
	last := StateWhiteSpark4
	if en.State >= StateRedSpark0 {
		last = StateRedSpark4
	}
	if en.State >= last {
		w.despawnEnemy(i, true)
		return
	}
	en.State++
}

// despawnEnemy resets slot i to Despawned with a countdown drawn from the
// shared respawn cycle {20,40,60,80,100}, advancing the cycle index.
func (w *World) despawnEnemy(i int, fromDeathAnimation bool) {
	en := &w.Enemies[i]
	if fromDeathAnimation && w.Events != nil {
		w.Events.EmitSimple(EventTypeEnemyKilled, w.TickCount, EnemyKilledPayload{
			Slot:     i,
			Behavior: en.Behavior.Kind(),
			ByFire:   en.State <= StateWhiteSpark4,
		})
	}
	en.State = StateDespawned
	en.AnimOrTimer = uint8(respawnCycle[w.respawnCycleIndex])
	w.respawnCycleIndex = (w.respawnCycleIndex + 1) % len(respawnCycle)
}

func facingFromVel(xVel int) Facing {
	if xVel >= 0 {
		return FacingRight
	}
	return FacingLeft
}
