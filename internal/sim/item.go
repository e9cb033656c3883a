package sim

// updateItem implements section 4.4: at most one item per stage, visibility
// clamped to the playfield, toggled animation, pickup, and effect.
func (w *World) updateItem() {
	stage := w.CurrentStage
	if stage == nil || stage.Item.Type == ItemUnused || w.itemCollected {
		return
	}

	relX := int(stage.Item.X) - w.CameraX
	if relX < 0 || relX > 22 {
		return
	}

	w.itemAnimFrame ^= 1

	p := w.Player
	itemX, itemY := int(stage.Item.X), int(stage.Item.Y)
	if abs(itemX-p.X) <= 1 && itemY-p.Y >= 0 && itemY-p.Y < 4 {
		w.itemCollected = true
		w.AwardPoints(20)
		if w.Sound != nil {
			w.Sound.Play(SoundCollectItem, 1)
		}
		if w.Events != nil {
			w.Events.EmitSimple(EventTypeItemPickup, w.TickCount, ItemPickupPayload{Type: stage.Item.Type, X: stage.Item.X, Y: stage.Item.Y})
		}
		w.applyItemEffect(stage.Item.Type)
	}
}

// applyItemEffect implements the effect table from section 4.4.
func (w *World) applyItemEffect(t ItemType) {
	p := w.Player
	switch t {
	case ItemCorkscrew:
		p.HasCorkscrew = true
	case ItemBlastolaCola:
		p.Firepower++
		if p.Firepower > MaxFireballs {
			p.Firepower = MaxFireballs
		}
	case ItemBoots:
		p.JumpPower = JumpPowerBoots
	case ItemLantern:
		p.HasLantern = true
	case ItemShield:
		p.HasShield = true
		if p.HP == MaxHP {
			w.AwardExtraLife()
		} else {
			p.HPPendingIncrease = MaxHP - p.HP
		}
	case ItemTeleportWand:
		p.HasTeleportWand = true
	case ItemDoorKey:
		p.HasDoorKey = true
	case ItemGems, ItemCrown, ItemGold:
		if p.Treasures < 3 {
			p.Treasures++
		}
		if p.Treasures == 3 {
			p.WinCounter = 200
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
