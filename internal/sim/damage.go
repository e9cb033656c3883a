package sim

// damagePlayer implements take_damage from section 4.8, the sole path for
// player harm.
func (w *World) damagePlayer() TickOutcome {
	p := w.Player

	if p.HasShield {
		p.HasShield = false
		if w.Sound != nil {
			w.Sound.Play(SoundDamage, 2)
		}
		return OutcomeContinue
	}

	if p.HP == 0 {
		if p.inhibitDeathByEnemyCollision {
			return OutcomeContinue
		}
		p.inhibitDeathByEnemyCollision = true
		if w.Sound != nil {
			w.Sound.Play(SoundDeath, 3)
		}
		return w.heroDies()
	}

	p.HP--
	if w.Sound != nil {
		w.Sound.Play(SoundDamage, 2)
	}
	if w.Events != nil {
		w.Events.EmitSimple(EventTypeDamage, w.TickCount, DamagePayload{HP: p.HP, Source: "enemy"})
	}
	return OutcomeContinue
}

// heroDies decrements lives and either reloads the stage or ends the game.
func (w *World) heroDies() TickOutcome {
	p := w.Player
	p.Lives--
	p.inhibitDeathByEnemyCollision = false
	if w.Events != nil {
		w.Events.EmitSimple(EventTypeDeath, w.TickCount, nil)
	}
	if p.Lives < 0 {
		return OutcomeGameOver
	}
	p.HP = MaxHP
	w.loadStage()
	return OutcomeContinue
}
