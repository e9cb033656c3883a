package sim

import "testing"

func TestFireballFlight(t *testing.T) {
	w := newTestWorld(10, 8)
	w.Player.Firepower = 1
	w.Player.Facing = FacingRight

	w.trySpawnFireball()

	fb := &w.Fireballs[0]
	if fb.dead() {
		t.Fatalf("fireball should be alive immediately after spawning")
	}
	if fb.X != w.Player.X || fb.Y != w.Player.Y+1 {
		t.Fatalf("fireball spawn position = (%d,%d), want (%d,%d)", fb.X, fb.Y, w.Player.X, w.Player.Y+1)
	}
	if fb.Vel != FireballVelocity {
		t.Fatalf("fireball facing right should have positive velocity, got %d", fb.Vel)
	}

	startX := fb.X
	w.updateFireballs()
	if fb.X != startX+FireballVelocity {
		t.Fatalf("fireball X after one update = %d, want %d", fb.X, startX+FireballVelocity)
	}
}

func TestFireballHitsEnemy(t *testing.T) {
	w := newTestWorld(10, 8)
	w.Player.Firepower = 1
	w.Player.Facing = FacingRight
	w.trySpawnFireball()

	en := &w.Enemies[0]
	en.State = StateSpawned
	en.Behavior = NewBehavior(BehaviorBounce, false)
	en.X = w.Fireballs[0].X + FireballVelocity
	en.Y = w.Fireballs[0].Y

	startScore := w.Score.Value()
	w.updateFireballs()

	if !w.Fireballs[0].dead() {
		t.Fatalf("fireball should despawn on hitting an enemy")
	}
	if w.Enemies[0].State != StateWhiteSpark0 {
		t.Fatalf("enemy hit by a fireball should enter the white-spark death animation, got state=%v", w.Enemies[0].State)
	}
	if w.Score.Value() != startScore+300 {
		t.Fatalf("score after a fireball kill = %d, want %d", w.Score.Value(), startScore+300)
	}
}

func TestFireballDespawnsOffCamera(t *testing.T) {
	w := newTestWorld(10, 8)
	w.Player.Firepower = 1
	w.Player.Facing = FacingLeft
	w.trySpawnFireball()

	fb := &w.Fireballs[0]
	for i := 0; i < 20 && !fb.dead(); i++ {
		w.updateFireballs()
	}

	if !fb.dead() {
		t.Fatalf("fireball flying off the left edge of the playfield should despawn")
	}
}
