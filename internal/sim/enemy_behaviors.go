package sim

// dispatchBehavior runs the tagged-variant AI for enemy slot i, per section
// 4.7. FAST-modified enemies always move; the rest honor the shared
// restraint throttle.
func dispatchBehavior(w *World, i int) {
	en := &w.Enemies[i]
	if en.Behavior.Fast() {
		en.Restraint = RestraintMoveEveryTick
	}

	switch en.Behavior.Kind() {
	case BehaviorBounce:
		behaviorBounce(w, en)
	case BehaviorLeap:
		behaviorLeap(w, en)
	case BehaviorRoll:
		behaviorRoll(w, en)
	case BehaviorSeek:
		behaviorSeek(w, en)
	case BehaviorShy:
		behaviorShy(w, en)
	}
}

// behaviorBounce: independent +-1 per tick in each axis, inverting on solid
// tile or playfield edge.
func behaviorBounce(w *World, en *Enemy) {
	if !en.Restraint.normalize() {
		return
	}
	grid := w.Grid()

	if en.XVel > 0 {
		if grid != nil && widthAwareSolid(grid, en.X+2, en.Y) {
			en.XVel = -1
		} else {
			en.X++
			if en.X-w.CameraX >= PlayfieldWidth-2 {
				en.XVel = -1
			}
		}
	} else {
		if en.X == 0 {
			en.XVel = 1
		} else if grid != nil && widthAwareSolid(grid, en.X-1, en.Y) {
			en.XVel = 1
		} else {
			en.X--
			if en.X-w.CameraX <= 0 {
				en.XVel = 1
			}
		}
	}

	if en.YVel > 0 {
		if grid != nil && heightAwareSolid(grid, en.X, en.Y+2) {
			en.YVel = -1
		} else {
			en.Y++
			if en.Y >= PlayfieldHeight-2 {
				en.YVel = -1
			}
		}
	} else {
		if en.Y == 0 {
			en.YVel = 1
		} else if grid != nil && heightAwareSolid(grid, en.X, en.Y-1) {
			en.YVel = 1
		} else {
			en.Y--
			if en.Y <= 0 {
				en.YVel = 1
			}
		}
	}

	en.Facing = facingFromVel(en.XVel)
}

// behaviorLeap: gravity-ballistic jump driven by the sign of y_vel.
func behaviorLeap(w *World, en *Enemy) {
	grid := w.Grid()
	proposedY := en.Y
	skipGravity := false

	switch {
	case en.YVel < 0:
		proposedY = en.Y + (en.YVel >> 3)
		if proposedY < 0 {
			proposedY = 0
		}
		if grid != nil && heightAwareSolid(grid, en.X, proposedY) {
			proposedY = en.Y
		}
	case en.YVel > 0:
		proposedY = en.Y + (en.YVel >> 3)
		if proposedY >= PlayfieldHeight-2 {
			en.State = StateWhiteSpark0
			en.AnimOrTimer = 5
			return
		}
		if grid != nil && heightAwareSolid(grid, en.X, proposedY+1) {
			proposedY = en.Y
		}
	default:
		if grid != nil && heightAwareSolid(grid, en.X, en.Y+2) {
			en.YVel = -10
			skipGravity = true
			if en.X < w.Player.X {
				en.XVel = 1
			} else if en.X > w.Player.X {
				en.XVel = -1
			}
		} else {
			en.YVel = 8
		}
	}

	if !skipGravity {
		en.YVel += 2
		if en.YVel > TerminalVelocity {
			en.YVel = TerminalVelocity
		}
	}

	if en.Restraint.normalize() {
		if en.XVel > 0 {
			if grid != nil && widthAwareSolid(grid, en.X+2, proposedY) {
				en.XVel = -1
			} else {
				en.X++
				if en.X-w.CameraX >= PlayfieldWidth-2 {
					en.XVel = -1
				}
			}
		} else if en.XVel < 0 {
			if grid != nil && widthAwareSolid(grid, en.X-2, proposedY) {
				en.XVel = 1
			} else {
				en.X--
				if en.X-w.CameraX <= 0 {
					en.XVel = 1
				}
			}
		}
	}

	if en.YVel > 0 {
		if grid != nil && heightAwareSolid(grid, en.X, proposedY+3) {
			proposedY = (proposedY + 1) &^ 1
			en.YVel = 0
		}
	}

	en.Y = proposedY
	en.Facing = facingFromVel(en.XVel)
}

// behaviorRoll: purely horizontal motion toward the player, falling when
// unsupported.
func behaviorRoll(w *World, en *Enemy) {
	grid := w.Grid()

	if en.YVel > 0 && en.Y+(en.YVel>>3) >= PlayfieldHeight-3 {
		en.State = StateWhiteSpark0
		en.AnimOrTimer = 5
		return
	}

	if en.X < w.Player.X {
		en.XVel = 1
	} else if en.X > w.Player.X {
		en.XVel = -1
	} else {
		en.XVel = 0
	}

	if en.XVel != 0 {
		if !en.Restraint.normalize() {
			return
		}
		destX := en.X + 2
		if en.XVel < 0 {
			destX = en.X - 1
		}
		if grid == nil || !widthAwareSolid(grid, destX, en.Y) {
			en.X += en.XVel
		}
	}

	if grid != nil && !heightAwareSolid(grid, en.X, en.Y+3) {
		en.YVel = 1
		return
	}

	if en.YVel != 0 {
		en.Y = (en.Y + 1) &^ 1
		en.YVel = 0
	}
	en.Facing = facingFromVel(en.XVel)
}

// behaviorSeek: prefer horizontal alignment; fall through to vertical only
// when horizontal is aligned or blocked.
func behaviorSeek(w *World, en *Enemy) {
	if !en.Restraint.normalize() {
		return
	}
	grid := w.Grid()

	if en.X != w.Player.X {
		dir := 1
		if en.X > w.Player.X {
			dir = -1
		}
		destX := en.X + 2*dir
		if grid == nil || !widthAwareSolid(grid, destX, en.Y) {
			en.X += dir
			en.XVel = dir
			if en.X-w.CameraX <= 0 {
				en.X = w.CameraX
			} else if en.X-w.CameraX >= PlayfieldWidth-2 {
				en.X = w.CameraX + PlayfieldWidth - 2
			}
			en.Facing = facingFromVel(en.XVel)
			return
		}
		en.XVel = dir
	}

	if en.Y != w.Player.Y {
		dir := 1
		if en.Y > w.Player.Y {
			dir = -1
		}
		destY := en.Y + dir
		if dir > 0 && destY >= PlayfieldHeight-2 {
			en.State = StateWhiteSpark0
			en.AnimOrTimer = 5
			return
		}
		if dir < 0 && destY < 0 {
			destY = 0
		}
		if grid == nil || !heightAwareSolid(grid, en.X, destY) {
			en.Y = destY
		}
	}

	en.Facing = facingFromVel(en.XVel)
}

// behaviorShy: y velocity recomputed every tick from the player's facing and
// position; x velocity carries over and is inverted only by bounces.
func behaviorShy(w *World, en *Enemy) {
	p := w.Player
	facingEnemy := (p.Facing == FacingRight && en.X > p.X) || (p.Facing == FacingLeft && en.X < p.X)
	if facingEnemy {
		en.YVel = -1
	} else if en.Y > p.Y {
		en.YVel = -1
	} else if en.Y < p.Y {
		en.YVel = 1
	} else {
		en.YVel = 0
	}

	if !en.Restraint.normalize() {
		return
	}

	grid := w.Grid()

	if en.YVel > 0 {
		if grid != nil && heightAwareSolid(grid, en.X, en.Y+1) {
			en.YVel = -en.YVel
		} else if en.Y >= PlayfieldHeight-2 {
			en.YVel = -en.YVel
		} else {
			en.Y++
		}
	} else if en.YVel < 0 {
		if grid != nil && heightAwareSolid(grid, en.X, en.Y) {
			en.YVel = -en.YVel
		} else if en.Y <= 0 {
			en.YVel = -en.YVel
		} else {
			en.Y--
		}
	}

	if en.XVel > 0 {
		if (grid != nil && widthAwareSolid(grid, en.X+2, en.Y)) || en.X-w.CameraX >= PlayfieldWidth-2 {
			en.XVel = -en.XVel
		} else {
			en.X++
		}
	} else if en.XVel < 0 {
		if (grid != nil && widthAwareSolid(grid, en.X-2, en.Y)) || en.X-w.CameraX <= 0 {
			en.XVel = -en.XVel
		} else {
			en.X--
		}
	}

	en.Facing = facingFromVel(en.XVel)
}
