package sim

// applyPlayerPhysics dispatches to the airborne or grounded frame per
// section 4.2 and runs every tick, including while a door transition
// animation is in progress.
func (w *World) applyPlayerPhysics(in InputSnapshot) TickOutcome {
	p := w.Player
	p.LandedThisTick = false

	if p.IsAirborne {
		return w.airborneFrame(in)
	}
	w.groundedFrame(in)
	return OutcomeContinue
}

// groundedFrame implements section 4.2's Grounded frame.
func (w *World) groundedFrame(in InputSnapshot) {
	p := w.Player
	grid := w.Grid()

	if in.Jump {
		p.YVel = -p.JumpPower * JumpAcceleration
		p.JumpCounter = JumpCounterStart
		p.IsAirborne = true
		return
	}

	if in.Left {
		p.Facing = FacingLeft
		w.stepLeft()
	} else if in.Right {
		p.Facing = FacingRight
		w.stepRight()
	}

	if grid != nil && !widthAwareSolid(grid, p.X, p.Y+5) {
		p.YVel = 0
		p.IsAirborne = true
	}
}

// airborneFrame implements section 4.2's Airborne frame, steps 1-7.
func (w *World) airborneFrame(in InputSnapshot) TickOutcome {
	p := w.Player
	grid := w.Grid()

	// 1. jump counter / ceiling stick.
	p.JumpCounter--
	if p.JumpCounter <= 0 {
		p.JumpCounter = 1
		p.CeilingStick = false
	} else if in.Jump {
		p.YVel -= JumpAcceleration
	} else {
		p.CeilingStick = false
	}

	// 2. integrate y.
	p.Y += p.YVel >> 3
	if p.Y >= PlayfieldHeight-3 {
		return OutcomeGameOver
	}

	// 3. ceiling stick push.
	if p.CeilingStick {
		p.Y++
		p.CeilingStick = false
	}

	// 4. gravity.
	gravity := GravityNormal
	if w.CurrentLevel != nil && w.CurrentLevelNumber == LevelSpace {
		gravity = GravitySpace
	}
	p.YVel += gravity
	if p.YVel > TerminalVelocity {
		p.YVel = TerminalVelocity
	}

	// 5. horizontal momentum.
	if in.Left {
		p.XMomentum--
		if p.XMomentum < -5 {
			p.XMomentum = -5
		}
		p.Facing = FacingLeft
	} else if in.Right {
		p.XMomentum++
		if p.XMomentum > 5 {
			p.XMomentum = 5
		}
		p.Facing = FacingRight
	}
	if p.XMomentum < 0 {
		p.XMomentum++
		w.stepLeft()
	} else if p.XMomentum > 0 {
		p.XMomentum--
		w.stepRight()
	}

	// 6. ceiling test.
	if grid != nil && p.YVel < 0 {
		if widthAwareSolid(grid, p.X, p.Y) {
			p.CeilingStick = true
			p.YVel = 0
		}
	}

	// 7. ground test.
	if grid != nil && p.YVel > 0 {
		if widthAwareSolid(grid, p.X, p.Y+5) {
			if p.Y < PlayfieldHeight-5 {
				p.Y = (p.Y + 1) &^ 1
				p.YVel = 0
				p.IsAirborne = false
				p.LandedThisTick = true
			}
		}
	}

	return OutcomeContinue
}

// stepLeft implements the step_left horizontal primitive.
func (w *World) stepLeft() {
	p := w.Player
	if p.X == 0 {
		w.crossSideExit(w.CurrentStage.ExitL, MapWidth-2)
		return
	}

	grid := w.Grid()
	if grid != nil {
		destX := p.X - 1
		if widthAwareSolid(grid, destX, p.Y+3) {
			p.XMomentum = 0
			return
		}
	}

	p.X--
	w.scrollCamera()
}

// stepRight implements the step_right horizontal primitive.
func (w *World) stepRight() {
	p := w.Player
	if p.X >= MapWidth-2 {
		w.crossSideExit(w.CurrentStage.ExitR, 0)
		return
	}

	grid := w.Grid()
	if grid != nil {
		destX := p.X + 1
		if widthAwareSolid(grid, destX, p.Y+3) {
			p.XMomentum = 0
			return
		}
	}

	p.X++
	w.scrollCamera()
}

// crossSideExit handles a stage-edge crossing: if the stage has no side
// exit at this edge, zero momentum and stay put; otherwise teleport to the
// far side of the adjacent stage and load it.
func (w *World) crossSideExit(exitTarget uint8, farSideX int) {
	p := w.Player
	if exitTarget == ExitUnused {
		p.XMomentum = 0
		return
	}
	p.X = farSideX
	p.YVel = 0
	w.CurrentStageNumber = exitTarget
	w.loadStage()
}

// scrollCamera keeps the player roughly centered: scroll left when the
// player nears the left edge of the playfield, right when nearing the right.
func (w *World) scrollCamera() {
	relX := w.Player.X - w.CameraX
	if relX < PlayfieldWidth/2-2 && w.CameraX > 0 {
		w.CameraX--
	} else if relX > PlayfieldWidth/2 {
		maxCamera := MapWidth - PlayfieldWidth
		if w.CameraX < maxCamera {
			w.CameraX++
		}
	}
}

// loadStage asks the collaborator loader to reload the current stage,
// repositioning the player's tile data without resetting inventory/score.
func (w *World) loadStage() {
	if w.Loader == nil {
		return
	}
	stage, err := w.Loader.LoadStage(w.CurrentLevelNumber, w.CurrentStageNumber)
	if err != nil {
		return
	}
	w.CurrentStage = stage
}
