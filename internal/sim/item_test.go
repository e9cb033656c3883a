package sim

import "testing"

func TestShieldPickupAtMaxHP(t *testing.T) {
	w := newTestWorld(10, 8)
	w.Player.HP = MaxHP
	w.CurrentStage.Item = Item{Type: ItemShield, X: 11, Y: 8}
	w.CameraX = 0

	startLives := w.Player.Lives
	w.updateItem()

	if !w.itemCollected {
		t.Fatalf("item should have been collected")
	}
	if !w.Player.HasShield {
		t.Fatalf("player should have a shield after pickup")
	}
	if w.Player.Lives != startLives+1 {
		t.Fatalf("shield at max HP should award an extra life: lives=%d want=%d", w.Player.Lives, startLives+1)
	}
	if w.Player.HPPendingIncrease != 0 {
		t.Fatalf("HPPendingIncrease should stay 0 when HP was already full")
	}
}

func TestShieldPickupBelowMaxHP(t *testing.T) {
	w := newTestWorld(10, 8)
	w.Player.HP = MaxHP - 2
	w.CurrentStage.Item = Item{Type: ItemShield, X: 11, Y: 8}

	w.updateItem()

	if w.Player.HPPendingIncrease != 2 {
		t.Fatalf("HPPendingIncrease = %d, want 2", w.Player.HPPendingIncrease)
	}
}

func TestTreasureTriggersWin(t *testing.T) {
	w := newTestWorld(10, 8)
	w.CurrentStage.Item = Item{Type: ItemGems, X: 11, Y: 8}

	w.updateItem()
	if w.Player.Treasures != 1 || w.Player.WinCounter != 0 {
		t.Fatalf("first treasure should not yet trigger a win: treasures=%d winCounter=%d", w.Player.Treasures, w.Player.WinCounter)
	}

	w.itemCollected = false
	w.CurrentStage.Item = Item{Type: ItemCrown, X: 11, Y: 8}
	w.updateItem()
	if w.Player.Treasures != 2 {
		t.Fatalf("second treasure count = %d, want 2", w.Player.Treasures)
	}

	w.itemCollected = false
	w.CurrentStage.Item = Item{Type: ItemGold, X: 11, Y: 8}
	w.updateItem()

	if w.Player.Treasures != 3 {
		t.Fatalf("third treasure count = %d, want 3", w.Player.Treasures)
	}
	if w.Player.WinCounter != 200 {
		t.Fatalf("collecting the third treasure should set WinCounter=200, got %d", w.Player.WinCounter)
	}
}

func TestWinCountdownBlocksInventoryMutation(t *testing.T) {
	w := newTestWorld(10, 8)
	w.Player.WinCounter = 10
	w.Player.HasShield = false
	w.Player.Treasures = 3
	w.CurrentStage.Item = Item{Type: ItemShield, X: 10, Y: 8}

	outcome := w.Tick(InputSnapshot{})

	if outcome != OutcomeContinue {
		t.Fatalf("outcome = %v, want OutcomeContinue while the countdown is still running", outcome)
	}
	if w.Player.WinCounter != 9 {
		t.Fatalf("WinCounter = %d, want 9 after one tick of countdown", w.Player.WinCounter)
	}
	if w.Player.HasShield {
		t.Fatalf("item pickup should not run while win_counter > 0")
	}
	if w.itemCollected {
		t.Fatalf("item should remain uncollected while the win countdown owns the tick")
	}
}

func TestAwardPointsCrossesExtraLifeThreshold(t *testing.T) {
	w := newTestWorld(10, 8)
	w.Score.SetValue(ExtraLifeInterval - 100)
	startLives := w.Player.Lives

	w.AwardPoints(20) // +2000 points, crossing the 20000 boundary

	if w.Player.Lives != startLives+1 {
		t.Fatalf("crossing the extra-life threshold should award exactly one life: lives=%d want=%d", w.Player.Lives, startLives+1)
	}
}
