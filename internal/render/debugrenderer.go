// Package render provides a debug Renderer implementation that rasterizes
// published snapshots to PNG frames, adapted from the corpus's gg.Context
// frame-drawing idiom for a non-streaming, single-player playfield.
package render

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"comicsim/internal/sim"

	"github.com/fogleman/gg"
)

const (
	unitPixels   = 8
	playfieldCols = sim.PlayfieldWidth
	playfieldRows = sim.PlayfieldHeight
	canvasWidth  = playfieldCols * unitPixels
	canvasHeight = playfieldRows * unitPixels
)

// DebugRenderer implements sim.Renderer by drawing each published snapshot
// to a PNG file under outDir, one frame per call to RenderPlayer (the last
// render hook the daemon calls after each tick). It never touches
// the live World — only the Snapshot it's handed.
type DebugRenderer struct {
	outDir string
	mu     sync.Mutex
	dc     *gg.Context
	frame  uint64
}

// NewDebugRenderer returns a renderer that writes numbered PNG frames to
// outDir, creating it if necessary.
func NewDebugRenderer(outDir string) (*DebugRenderer, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("render: create output dir: %w", err)
	}
	return &DebugRenderer{
		outDir: outDir,
		dc:     gg.NewContext(canvasWidth, canvasHeight),
	}, nil
}

// RenderTileMap clears the frame and draws vertical grid lines at each tile
// column; it has no access to tile graphics or tile solidity, so it paints a
// placeholder grid rather than decoded sprite pixels.
func (r *DebugRenderer) RenderTileMap(snap *sim.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.dc.SetColor(color.RGBA{20, 20, 30, 255})
	r.dc.Clear()

	r.dc.SetColor(color.RGBA{60, 60, 70, 255})
	for col := 0; col < playfieldCols; col += 2 {
		x := float64(col * unitPixels)
		r.dc.DrawLine(x, 0, x, canvasHeight)
	}
	r.dc.SetLineWidth(1)
	r.dc.Stroke()
}

// RenderPlayer draws the Hero and every active enemy/fireball, then flushes
// the frame to disk. This is the last render hook invoked per tick, so it
// also advances the frame counter.
func (r *DebugRenderer) RenderPlayer(snap *sim.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()

	relX := float64((snap.Player.X - snap.CameraX) * unitPixels)
	relY := float64(snap.Player.Y * unitPixels)
	r.drawActor(relX, relY, color.RGBA{220, 200, 40, 255})

	for i := range snap.Enemies {
		en := &snap.Enemies[i]
		if en.State == sim.StateDespawned {
			continue
		}
		ex := float64((en.X - snap.CameraX) * unitPixels)
		ey := float64(en.Y * unitPixels)
		c := color.RGBA{200, 60, 60, 255}
		if en.State.IsDeathAnimation() {
			c = color.RGBA{240, 240, 240, 255}
		}
		r.drawActor(ex, ey, c)
	}

	for i := range snap.Fireballs {
		fb := &snap.Fireballs[i]
		if fb.X == sim.FireballDead && fb.Y == sim.FireballDead {
			continue
		}
		fx := float64((fb.X - snap.CameraX) * unitPixels)
		fy := float64(fb.Y * unitPixels)
		r.dc.SetColor(color.RGBA{255, 140, 0, 255})
		r.dc.DrawCircle(fx, fy, 3)
		r.dc.Fill()
	}

	frame := atomic.AddUint64(&r.frame, 1)
	path := filepath.Join(r.outDir, fmt.Sprintf("frame_%08d.png", frame))
	_ = r.dc.SavePNG(path)
}

// RenderSpriteMasked is a no-op here: without decoded sprite pixel data, the
// debug renderer draws flat actor markers in RenderPlayer instead. A real
// renderer would composite frame.Data/frame.Mask at (x, y).
func (r *DebugRenderer) RenderSpriteMasked(x, y int, frame sim.SpriteFrame) {}

func (r *DebugRenderer) drawActor(x, y float64, c color.Color) {
	r.dc.SetColor(c)
	r.dc.DrawRectangle(x, y, unitPixels*2, unitPixels*4)
	r.dc.Fill()
}
