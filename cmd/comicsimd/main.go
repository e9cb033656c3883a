// Command comicsimd runs the deterministic simulation core as a standalone
// daemon: it loads the starting level, drives World.Tick at a fixed rate,
// publishes snapshots for the HTTP/WebSocket observation surface, and exits
// with a status code reflecting how the run ended.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"comicsim/internal/api"
	"comicsim/internal/audio"
	"comicsim/internal/config"
	"comicsim/internal/leveldata"
	"comicsim/internal/render"
	"comicsim/internal/sim"
)

// Exit codes: 0 normal quit, 1 victory, 2 game over, 3 startup failure.
const (
	exitQuit = iota
	exitVictory
	exitGameOver
	exitStartupFailure
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.Load()

	loader := leveldata.NewLoader(cfg.Asset.DataPath)
	level, err := loader.LoadLevel(sim.LevelLake)
	if err != nil {
		log.Printf("startup: load level: %v", err)
		return exitStartupFailure
	}
	stage := &level.Stages[0]

	sound := newSoundDriver(cfg.Asset.DataPath)

	world := sim.NewWorld(level, stage, sim.LevelLake, 0, 4, 16, loader, sound)
	pool := sim.NewSnapshotPool()

	if cfg.EventLog.Enabled {
		world.Events = sim.NewEventLog()
		if err := world.Events.Start(cfg.EventLog.FilePath); err != nil {
			log.Printf("startup: event log: %v", err)
			world.Events = nil
		}
	}

	server := api.NewServer(pool)
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		if err := server.Start(addr); err != nil {
			log.Printf("api server stopped: %v", err)
		}
	}()

	var debugRenderer *render.DebugRenderer
	if dir := os.Getenv("DEBUG_FRAME_DIR"); dir != "" {
		dr, err := render.NewDebugRenderer(dir)
		if err != nil {
			log.Printf("debug renderer: %v", err)
		} else {
			debugRenderer = dr
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	inputs := sim.NewRingBuffer[sim.InputSnapshot](cfg.Tick.InputBuffer)
	go runInputProducer(ctx, inputs)

	outcome := runTickLoop(ctx, world, pool, inputs, debugRenderer, cfg.Tick.RateHz)

	if world.Events != nil {
		world.Events.Stop()
	}

	switch outcome {
	case sim.OutcomeVictory:
		return exitVictory
	case sim.OutcomeGameOver:
		return exitGameOver
	default:
		return exitQuit
	}
}

func newSoundDriver(assetDataPath string) sim.SoundDriver {
	clipDir := assetDataPath + "/sfx"
	driver, err := audio.NewDriver(clipDir)
	if err != nil {
		log.Printf("audio: falling back to silent driver: %v", err)
		return audio.NoopDriver{}
	}
	return driver
}

// runTickLoop drives World.Tick at a fixed rate until ctx is cancelled or a
// tick returns a terminal TickOutcome.
func runTickLoop(ctx context.Context, world *sim.World, pool *sim.SnapshotPool, inputs *sim.RingBuffer[sim.InputSnapshot], renderer *render.DebugRenderer, rateHz int) sim.TickOutcome {
	if rateHz <= 0 {
		rateHz = 18
	}
	ticker := time.NewTicker(time.Second / time.Duration(rateHz))
	defer ticker.Stop()

	var last sim.InputSnapshot
	for {
		select {
		case <-ctx.Done():
			return sim.OutcomeQuit
		case <-ticker.C:
			if in, ok := inputs.DrainLatest(); ok {
				last = in
			}

			outcome := world.Tick(last)
			world.Publish(pool)

			if renderer != nil {
				renderer.RenderTileMap(pool.AcquireRead())
				renderer.RenderPlayer(pool.AcquireRead())
			}

			if last.Escape {
				return sim.OutcomeQuit
			}
			if outcome != sim.OutcomeContinue {
				return outcome
			}
		}
	}
}

// runInputProducer reads newline-delimited control tokens from stdin (l/r/j/f/o/t/p/q)
// and latches them into a bitmask-style InputSnapshot pushed to the ring
// buffer; the tick loop only ever consumes the most recent one via
// DrainLatest, so a flood of input lines never backs up the simulation.
func runInputProducer(ctx context.Context, inputs *sim.RingBuffer[sim.InputSnapshot]) {
	scanner := bufio.NewScanner(os.Stdin)
	var state sim.InputSnapshot

	lines := make(chan string)
	go func() {
		defer close(lines)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case line, ok := <-lines:
			if !ok {
				return
			}
			applyInputTokens(&state, line)
			inputs.TryPush(state)
		}
	}
}

func applyInputTokens(state *sim.InputSnapshot, line string) {
	*state = sim.InputSnapshot{}
	for _, tok := range strings.Fields(line) {
		switch strings.ToLower(tok) {
		case "l", "left":
			state.Left = true
		case "r", "right":
			state.Right = true
		case "j", "jump":
			state.Jump = true
		case "f", "fire":
			state.Fire = true
		case "o", "open":
			state.Open = true
		case "t", "teleport":
			state.Teleport = true
		case "p", "pause":
			state.Pause = true
		case "q", "quit", "escape":
			state.Escape = true
		}
	}
}
