package leveldata

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"comicsim/internal/assets"
	"comicsim/internal/sim"
)

func writeTT2(t *testing.T, path string, numTiles uint16) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	binary.Write(f, binary.LittleEndian, numTiles)
	f.Write(make([]byte, int(numTiles)*assets.TileBitmapSize))
}

func writePT(t *testing.T, path string, width, height uint16) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	binary.Write(f, binary.LittleEndian, width)
	binary.Write(f, binary.LittleEndian, height)
	f.Write(make([]byte, int(width)*int(height)))
}

func setupLakeAssets(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeTT2(t, filepath.Join(dir, Lake.TT2Filename), 64)
	writePT(t, filepath.Join(dir, "lake0.pt"), 32, 16)
	writePT(t, filepath.Join(dir, "lake1.pt"), 32, 16)
	writePT(t, filepath.Join(dir, "lake2.pt"), 32, 16)
	return dir
}

func TestLoaderLoadLevelDecodesAllStages(t *testing.T) {
	dir := setupLakeAssets(t)
	loader := NewLoader(dir)

	level, err := loader.LoadLevel(sim.LevelLake)
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}
	if level.Number != sim.LevelLake {
		t.Fatalf("Number = %v, want LevelLake", level.Number)
	}
	if level.LastPassable != Lake.LastPassable {
		t.Fatalf("LastPassable = %d, want %d", level.LastPassable, Lake.LastPassable)
	}
	for i, st := range level.Stages {
		if st.Tiles == nil {
			t.Fatalf("stage %d has no tile grid", i)
		}
	}
}

func TestLoaderLoadStageCachesTileset(t *testing.T) {
	dir := setupLakeAssets(t)
	loader := NewLoader(dir)

	if _, err := loader.LoadStage(sim.LevelLake, 0); err != nil {
		t.Fatalf("LoadStage(0): %v", err)
	}
	if _, ok := loader.tilesetCache[sim.LevelLake]; !ok {
		t.Fatalf("expected tileset to be cached after first LoadStage")
	}

	// Remove the tileset file; a second LoadStage for the same level must
	// still succeed because it should hit the cache, not re-open the file.
	if err := os.Remove(filepath.Join(dir, Lake.TT2Filename)); err != nil {
		t.Fatalf("remove tt2: %v", err)
	}
	if _, err := loader.LoadStage(sim.LevelLake, 1); err != nil {
		t.Fatalf("LoadStage(1) should reuse cached tileset: %v", err)
	}
}

func TestLoaderLoadStageOutOfRange(t *testing.T) {
	dir := setupLakeAssets(t)
	loader := NewLoader(dir)

	if _, err := loader.LoadStage(sim.LevelLake, 200); err == nil {
		t.Fatalf("expected an error for an out-of-range stage number")
	}
}

func TestLoaderStubLevelStageHasNoMapData(t *testing.T) {
	dir := t.TempDir()
	writeTT2(t, filepath.Join(dir, Space.TT2Filename), 1)
	loader := NewLoader(dir)

	if _, err := loader.LoadStage(sim.LevelSpace, 0); err == nil {
		t.Fatalf("expected an error loading a stub level with no PT filename")
	}
}

func TestLoaderUnknownLevelNumber(t *testing.T) {
	loader := NewLoader(t.TempDir())
	if _, err := loader.LoadLevel(sim.LevelNumber(200)); err == nil {
		t.Fatalf("expected an error for an out-of-range level number")
	}
}
