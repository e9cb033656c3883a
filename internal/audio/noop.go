package audio

import "comicsim/internal/sim"

// NoopDriver implements sim.SoundDriver with no output, used when the audio
// device cannot be initialized (missing clips alone do not cause it) — the core treats
// sound as fire-and-forget, so a silent driver is a legitimate collaborator.
type NoopDriver struct{}

func (NoopDriver) Play(sim.SoundID, int) {}
func (NoopDriver) Stop()                 {}
