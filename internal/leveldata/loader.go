package leveldata

import (
	"fmt"
	"os"
	"path/filepath"

	"comicsim/internal/assets"
	"comicsim/internal/sim"
)

// Loader is a sim.StageLoader backed by PT/TT2 asset files on disk, resolved
// against the compile-time LevelDescriptor tables. Sprite sheets (SHP) are
// not needed to build a sim.Level/sim.Stage pair — the core only consults
// ShpDescriptor metadata, never pixel data — so SHP files are not decoded
// here; assets.DecodeSHP is the decoder for them.
type Loader struct {
	dataPath string

	// tilesetCache avoids re-decoding a level's TT2 file on every stage
	// load within that level; keyed by sim.LevelNumber.
	tilesetCache map[sim.LevelNumber]*assets.Tileset
}

// NewLoader builds a Loader that resolves asset filenames under dataPath.
func NewLoader(dataPath string) *Loader {
	return &Loader{
		dataPath:     dataPath,
		tilesetCache: make(map[sim.LevelNumber]*assets.Tileset),
	}
}

func descriptorFor(level sim.LevelNumber) (*LevelDescriptor, error) {
	if int(level) < 0 || int(level) >= len(Levels) {
		return nil, fmt.Errorf("leveldata: level number %d out of range", level)
	}
	return Levels[level], nil
}

func (l *Loader) tilesetFor(level sim.LevelNumber, ld *LevelDescriptor) (*assets.Tileset, error) {
	if ts, ok := l.tilesetCache[level]; ok {
		return ts, nil
	}
	f, err := os.Open(filepath.Join(l.dataPath, ld.TT2Filename))
	if err != nil {
		return nil, fmt.Errorf("open tileset %s: %w", ld.TT2Filename, err)
	}
	defer f.Close()

	ts, err := assets.DecodeTT2(f)
	if err != nil {
		return nil, fmt.Errorf("decode tileset %s: %w", ld.TT2Filename, err)
	}
	l.tilesetCache[level] = ts
	return ts, nil
}

func buildLevel(ld *LevelDescriptor) *sim.Level {
	sl := &sim.Level{
		Number:       ld.Number,
		LastPassable: ld.LastPassable,
		DoorTileUL:   ld.DoorTileUL,
		DoorTileUR:   ld.DoorTileUR,
		DoorTileLL:   ld.DoorTileLL,
		DoorTileLR:   ld.DoorTileLR,
	}
	for i, shp := range ld.Shp {
		if shp.unused() {
			continue
		}
		sl.Shp[i] = sim.ShpDescriptor{
			NumDistinctFrames: shp.NumDistinctFrames,
			Horizontal:        shp.Horizontal,
			Animation:         shp.Animation,
		}
	}
	return sl
}

func buildStage(sd *StageDescriptor, tiles *sim.TileGrid) sim.Stage {
	st := sim.Stage{
		Item:  sd.Item,
		ExitL: sd.ExitL,
		ExitR: sd.ExitR,
		Tiles: tiles,
	}
	for i, d := range sd.Doors {
		st.Doors[i] = sim.Door{
			X: d.X, Y: d.Y,
			TargetLevel: d.TargetLevel,
			TargetStage: d.TargetStage,
		}
	}
	for i, e := range sd.Enemies {
		st.Enemies[i] = sim.EnemyRecord{
			ShpIndex: e.ShpIndex,
			Behavior: e.Behavior,
		}
	}
	return st
}

// LoadLevel decodes a level's tileset and all three of its stage maps,
// returning a fully populated sim.Level.
func (l *Loader) LoadLevel(level sim.LevelNumber) (*sim.Level, error) {
	ld, err := descriptorFor(level)
	if err != nil {
		return nil, err
	}
	if _, err := l.tilesetFor(level, ld); err != nil {
		return nil, err
	}

	sl := buildLevel(ld)
	for i := range ld.Stages {
		grid, err := l.loadTileGrid(ld, uint8(i))
		if err != nil {
			return nil, err
		}
		sl.Stages[i] = buildStage(&ld.Stages[i], grid)
	}
	return sl, nil
}

func (l *Loader) loadTileGrid(ld *LevelDescriptor, stageNumber uint8) (*sim.TileGrid, error) {
	filename := ld.stageFilename(stageNumber)
	if filename == "" {
		return nil, fmt.Errorf("leveldata: level %q stage %d has no map data", ld.TT2Filename, stageNumber)
	}

	f, err := os.Open(filepath.Join(l.dataPath, filename))
	if err != nil {
		return nil, fmt.Errorf("open map %s: %w", filename, err)
	}
	defer f.Close()

	pt, err := assets.DecodePT(f)
	if err != nil {
		return nil, fmt.Errorf("decode map %s: %w", filename, err)
	}
	return sim.NewTileGrid(pt.Tiles, ld.LastPassable), nil
}

// LoadStage decodes a single stage's map and returns it paired with the
// parent level's static data, without re-reading the other two stages.
func (l *Loader) LoadStage(level sim.LevelNumber, stage uint8) (*sim.Stage, error) {
	ld, err := descriptorFor(level)
	if err != nil {
		return nil, err
	}
	if int(stage) >= len(ld.Stages) {
		return nil, fmt.Errorf("leveldata: stage number %d out of range for level %d", stage, level)
	}
	if _, err := l.tilesetFor(level, ld); err != nil {
		return nil, err
	}

	grid, err := l.loadTileGrid(ld, stage)
	if err != nil {
		return nil, err
	}
	st := buildStage(&ld.Stages[stage], grid)
	return &st, nil
}
