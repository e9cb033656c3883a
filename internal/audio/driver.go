// Package audio implements sim.SoundDriver by decoding short OGG Vorbis
// clips and playing them through the system's audio output, adapted from
// the corpus's MusicPlayer streaming-decode idiom — but for fixed, tiny
// sound effects rather than a multi-minute background track, clips are
// decoded once at startup and replayed from memory instead of re-streamed.
package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"comicsim/internal/sim"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/vorbis"
)

const sampleRate = beep.SampleRate(44100)

var clipFilenames = map[sim.SoundID]string{
	sim.SoundFire:        "fire.ogg",
	sim.SoundHitEnemy:    "hit_enemy.ogg",
	sim.SoundDamage:      "damage.ogg",
	sim.SoundDeath:       "death.ogg",
	sim.SoundCollectItem: "collect_item.ogg",
	sim.SoundDoor:        "door.ogg",
}

// Driver plays fixed sound-effect clips loaded from an on-disk directory,
// with simple priority preemption: a higher-or-equal priority sound cuts
// off whatever is currently playing.
type Driver struct {
	mu             sync.Mutex
	clips          map[sim.SoundID]*beep.Buffer
	currentPriority int
	speakerReady   bool
}

// NewDriver loads every clip named in clipFilenames from dir. A missing
// clip is logged and skipped — Play on that SoundID becomes a silent no-op,
// matching the core's "missing asset renders as no-op" failure semantics.
func NewDriver(dir string) (*Driver, error) {
	d := &Driver{clips: make(map[sim.SoundID]*beep.Buffer)}

	var format beep.Format
	for id, filename := range clipFilenames {
		buf, f, err := loadClip(filepath.Join(dir, filename))
		if err != nil {
			fmt.Fprintf(os.Stderr, "audio: skipping %s: %v\n", filename, err)
			continue
		}
		d.clips[id] = buf
		format = f
	}

	if format.SampleRate == 0 {
		format = beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}
	}
	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("audio: init speaker: %w", err)
	}
	d.speakerReady = true

	return d, nil
}

func loadClip(path string) (*beep.Buffer, beep.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, err
	}
	defer f.Close()

	streamer, format, err := vorbis.Decode(f)
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("decode: %w", err)
	}
	defer streamer.Close()

	buf := beep.NewBuffer(format)
	buf.Append(streamer)
	return buf, format, nil
}

// Play starts id's clip, preempting whatever is currently playing only if
// priority is at least as high as what triggered it.
func (d *Driver) Play(id sim.SoundID, priority int) {
	if !d.speakerReady {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	buf, ok := d.clips[id]
	if !ok {
		return
	}
	if priority < d.currentPriority {
		return
	}
	d.currentPriority = priority

	speaker.Clear()
	speaker.Play(buf.Streamer(0, buf.Len()))
}

// Stop silences any currently playing clip.
func (d *Driver) Stop() {
	if !d.speakerReady {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.currentPriority = 0
	speaker.Clear()
}
