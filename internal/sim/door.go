package sim

const (
	doorEntryFrames = 4
	doorExitFrames  = 5
)

// checkDoorActivation implements section 4.5: scan the current stage's
// doors in order, stop at the first position match, and activate it if the
// player holds the key. Returns true if a door fired this tick or a door
// entry/exit animation is in progress, in which case the remainder of the
// tick's actor updates must be skipped.
func (w *World) checkDoorActivation(in InputSnapshot) bool {
	if w.doorActive {
		w.advanceDoorAnimation()
		return true
	}
	if !in.Open || w.CurrentStage == nil {
		return false
	}

	p := w.Player
	for _, d := range w.CurrentStage.Doors {
		if d.Unused() {
			continue
		}
		if int(d.Y) != p.Y {
			continue
		}
		rel := p.X - int(d.X)
		if rel < 0 || rel > 2 {
			continue
		}
		if !p.HasDoorKey {
			return false
		}
		w.beginDoorEntry(d)
		return true
	}
	return false
}

// beginDoorEntry starts the 4-frame entry animation; the target mutation and
// reload happen once the animation completes, in advanceDoorAnimation.
func (w *World) beginDoorEntry(d Door) {
	w.doorActive = true
	w.doorExiting = false
	w.doorAnimTimer = 0
	w.doorAnimFrames = doorEntryFrames
	w.pendingDoorTarget = d
	if w.Sound != nil {
		w.Sound.Play(SoundDoor, 1)
	}
}

// advanceDoorAnimation steps the active entry or exit animation by one
// frame; on entry completion it performs the target-level/stage mutation
// and load, per the exact ordering in section 4.5.
func (w *World) advanceDoorAnimation() {
	w.doorAnimTimer++
	if w.doorAnimTimer < w.doorAnimFrames {
		return
	}

	if w.doorExiting {
		w.doorActive = false
		return
	}

	p := w.Player
	d := w.pendingDoorTarget

	// Step 2: record source door, captured after the entry animation,
	// before the state mutation.
	p.SourceDoorLevel = w.CurrentLevelNumber
	p.SourceDoorStage = w.CurrentStageNumber

	sourceLevel := w.CurrentLevelNumber
	w.CurrentLevelNumber = d.TargetLevel
	w.CurrentStageNumber = d.TargetStage

	if d.TargetLevel != sourceLevel && w.Loader != nil {
		if lvl, err := w.Loader.LoadLevel(d.TargetLevel); err == nil {
			w.CurrentLevel = lvl
		}
	}
	w.loadStage()

	if w.Events != nil {
		w.Events.EmitSimple(EventTypeDoorTransition, w.TickCount, DoorTransitionPayload{
			FromLevel: sourceLevel,
			FromStage: p.SourceDoorStage,
			ToLevel:   w.CurrentLevelNumber,
			ToStage:   w.CurrentStageNumber,
		})
	}

	w.beginDoorExit()
}

// beginDoorExit starts the 5-frame exit animation played on stage entry
// through a door.
func (w *World) beginDoorExit() {
	w.doorActive = true
	w.doorExiting = true
	w.doorAnimTimer = 0
	w.doorAnimFrames = doorExitFrames
}
