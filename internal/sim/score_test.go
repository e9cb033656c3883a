package sim

import "testing"

func TestScoreValueRoundTrip(t *testing.T) {
	var s Score
	s.SetValue(1234567)
	if got := s.Value(); got != 1234567 {
		t.Fatalf("Value() = %d, want 1234567", got)
	}
}

func TestScoreSetValueWrapsAt24Bits(t *testing.T) {
	var s Score
	s.SetValue(0xFFFFFF + 42)
	if got := s.Value(); got != 41 {
		t.Fatalf("Value() = %d, want 41 after wrapping past 0xFFFFFF", got)
	}
}

func TestAwardPointsMultipleThresholdCrossings(t *testing.T) {
	w := newTestWorld(10, 8)
	w.Score.SetValue(0)
	startLives := w.Player.Lives

	// 500 * 100 = 50000 points in one award, crossing the 20000 boundary
	// twice (at 20000 and 40000).
	w.AwardPoints(500)

	if w.Player.Lives != startLives+2 {
		t.Fatalf("awarding 50000 points in one call should cross two extra-life boundaries: lives=%d want=%d", w.Player.Lives, startLives+2)
	}
}
