package sim

import "testing"

func TestEnemyDespawnByDistance(t *testing.T) {
	w := newTestWorld(10, 8)
	en := &w.Enemies[0]
	en.State = StateSpawned
	en.Behavior = NewBehavior(BehaviorBounce, false)
	// Bounce with XVel 0 steps one unit left before the distance check, so
	// start two units beyond the radius to end the tick one unit beyond it.
	en.X = w.Player.X + EnemyDespawnRadius + 2
	en.Y = w.Player.Y
	en.NumAnimFrames = 1
	en.Restraint = RestraintMoveEveryTick

	outcome := w.animateAndDispatch(0)

	if outcome != OutcomeContinue {
		t.Fatalf("despawn-by-distance outcome = %v, want OutcomeContinue", outcome)
	}
	if w.Enemies[0].State != StateDespawned {
		t.Fatalf("enemy beyond despawn radius should be despawned, got state=%v", w.Enemies[0].State)
	}
}

func TestEnemyCollisionDamagesPlayer(t *testing.T) {
	w := newTestWorld(10, 8)
	en := &w.Enemies[0]
	en.State = StateSpawned
	en.Behavior = NewBehavior(BehaviorBounce, false)
	// Bounce with zero velocities steps one unit left and one unit up before
	// the collision check, which leaves it at (X-1, Y): inside the hit box.
	en.X = w.Player.X
	en.Y = w.Player.Y + 1
	en.NumAnimFrames = 1
	en.Restraint = RestraintMoveEveryTick

	startHP := w.Player.HP
	w.animateAndDispatch(0)

	if w.Player.HP != startHP-1 {
		t.Fatalf("player HP = %d, want %d after colliding with an enemy", w.Player.HP, startHP-1)
	}
	if w.Enemies[0].State != StateRedSpark0 {
		t.Fatalf("colliding enemy should enter the red-spark death animation, got state=%v", w.Enemies[0].State)
	}
}

func TestDeathAnimationRespawnsOnCycle(t *testing.T) {
	w := newTestWorld(10, 8)
	en := &w.Enemies[0]
	en.State = StateWhiteSpark0
	en.Behavior = NewBehavior(BehaviorBounce, false)
	en.AnimOrTimer = 0

	for i := 0; i < 10 && w.Enemies[0].State.IsDeathAnimation(); i++ {
		w.advanceDeathAnimation(0)
	}

	if w.Enemies[0].State != StateDespawned {
		t.Fatalf("enemy should be despawned after its death animation completes, got state=%v", w.Enemies[0].State)
	}
	if w.Enemies[0].AnimOrTimer != uint8(respawnCycle[0]) {
		t.Fatalf("first respawn countdown should be the respawn cycle's first entry, got %d", w.Enemies[0].AnimOrTimer)
	}
}
