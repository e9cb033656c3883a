package leveldata

import (
	"testing"

	"comicsim/internal/sim"
)

func TestLevelsIndexedByNumber(t *testing.T) {
	for i, ld := range Levels {
		if ld == nil {
			t.Fatalf("Levels[%d] is nil", i)
		}
		if int(ld.Number) != i {
			t.Fatalf("Levels[%d].Number = %v, want %d", i, ld.Number, i)
		}
	}
}

func TestLakeStage0DoorsAreReachableTargets(t *testing.T) {
	stage := Lake.Stages[0]
	found := 0
	for _, d := range stage.Doors {
		if d.unused() {
			continue
		}
		found++
		if int(d.TargetLevel) < 0 || int(d.TargetLevel) >= len(Levels) {
			t.Fatalf("door target level %v out of range", d.TargetLevel)
		}
	}
	if found != 2 {
		t.Fatalf("lake stage 0 should have exactly 2 active doors, found %d", found)
	}
}

func TestStubLevelsHaveNoStageData(t *testing.T) {
	for _, ld := range []LevelDescriptor{Space, Base, Cave, Shed, Castle, Comp} {
		for i, st := range ld.Stages {
			if st.PTFilename != "" {
				t.Fatalf("stub level %s stage %d unexpectedly has map data", ld.TT2Filename, i)
			}
			if st.Item.Type != sim.ItemUnused {
				t.Fatalf("stub level %s stage %d should have no item", ld.TT2Filename, i)
			}
		}
	}
}

func TestForestEnemySpawnsReferenceValidShpSlots(t *testing.T) {
	for s, stage := range Forest.Stages {
		for e, enemy := range stage.Enemies {
			if enemy.Behavior.Kind() == sim.BehaviorUnused {
				continue
			}
			if int(enemy.ShpIndex) >= len(Forest.Shp) {
				t.Fatalf("forest stage %d enemy %d references out-of-range shp index %d", s, e, enemy.ShpIndex)
			}
			if Forest.Shp[enemy.ShpIndex].unused() {
				t.Fatalf("forest stage %d enemy %d references an unused shp slot %d", s, e, enemy.ShpIndex)
			}
		}
	}
}
