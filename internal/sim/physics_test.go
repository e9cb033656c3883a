package sim

import "testing"

func TestJumpArc(t *testing.T) {
	w := newTestWorld(20, 12)

	outcome := w.Tick(InputSnapshot{Jump: true})
	if outcome != OutcomeContinue {
		t.Fatalf("jump tick outcome = %v, want OutcomeContinue", outcome)
	}
	if !w.Player.IsAirborne {
		t.Fatalf("player should be airborne immediately after a jump input")
	}
	if w.Player.YVel >= 0 {
		t.Fatalf("initial jump YVel = %d, want negative (rising)", w.Player.YVel)
	}

	startY := w.Player.Y
	minY := startY
	landed := false
	for tick := 0; tick < 60 && !landed; tick++ {
		w.Tick(InputSnapshot{})
		if w.Player.Y < minY {
			minY = w.Player.Y
		}
		if !w.Player.IsAirborne {
			landed = true
		}
	}

	if minY >= startY {
		t.Fatalf("player never rose above spawn height: minY=%d startY=%d", minY, startY)
	}
	if !landed {
		t.Fatalf("player did not land within 60 ticks of a jump")
	}
	if !w.Player.LandedThisTick {
		t.Fatalf("LandedThisTick should be set on the tick the player lands")
	}
}

func TestFallOffBottomIsGameOver(t *testing.T) {
	w := newTestWorld(20, 0)
	w.CurrentStage.Tiles = NewTileGrid(make([]uint8, MapWidthTiles*MapHeightTiles), 0) // no floor anywhere

	w.Player.IsAirborne = true
	w.Player.YVel = TerminalVelocity

	var outcome TickOutcome
	for tick := 0; tick < 40; tick++ {
		outcome = w.Tick(InputSnapshot{})
		if outcome != OutcomeContinue {
			break
		}
	}

	if outcome != OutcomeGameOver {
		t.Fatalf("falling through an open floor = %v, want OutcomeGameOver", outcome)
	}
}

func TestCameraScrollFollowsPlayer(t *testing.T) {
	w := newTestWorld(PlayfieldWidth/2, 12)
	startCamera := w.CameraX

	for i := 0; i < 10; i++ {
		w.Tick(InputSnapshot{Right: true})
	}

	if w.CameraX <= startCamera {
		t.Fatalf("camera did not scroll right as the player advanced: CameraX=%d start=%d", w.CameraX, startCamera)
	}
}
