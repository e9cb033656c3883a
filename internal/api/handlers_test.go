package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"comicsim/internal/sim"
)

func TestHandleGetStateReturnsPublishedSnapshot(t *testing.T) {
	pool := sim.NewSnapshotPool()
	w := sim.NewWorld(&sim.Level{}, &sim.Stage{Tiles: sim.NewTileGrid(nil, 0)}, sim.LevelLake, 0, 5, 5, nil, nil)
	w.Player.HP = 4
	w.Publish(pool)

	router := NewRouter(RouterConfig{Pool: pool, DisableLogging: true})

	srv := httptest.NewServer(router)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/state")
	if err != nil {
		t.Fatalf("GET /api/state: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if _, ok := body["player"]; !ok {
		t.Fatalf("response missing \"player\" key: %v", body)
	}
}

func TestHandleGetStatsReturnsSummary(t *testing.T) {
	pool := sim.NewSnapshotPool()
	w := sim.NewWorld(&sim.Level{}, &sim.Stage{Tiles: sim.NewTileGrid(nil, 0)}, sim.LevelLake, 0, 5, 5, nil, nil)
	w.Publish(pool)

	router := NewRouter(RouterConfig{Pool: pool, DisableLogging: true})
	srv := httptest.NewServer(router)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/stats")
	if err != nil {
		t.Fatalf("GET /api/stats: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}
