package api

import (
	"encoding/json"
	"net/http"

	"comicsim/internal/sim"
)

// Handler methods for routerHandlers. Used by both the standalone router
// (for testing) and the full Server.

func (h *routerHandlers) handleGetState(w http.ResponseWriter, r *http.Request) {
	snap := h.pool.AcquireRead()
	writeJSON(w, snapshotToJSON(snap))
}

func (h *routerHandlers) handleGetStats(w http.ResponseWriter, r *http.Request) {
	snap := h.pool.AcquireRead()
	writeJSON(w, map[string]interface{}{
		"tick":   snap.TickNumber,
		"score":  snap.Score,
		"lives":  snap.Player.Lives,
		"hp":     snap.Player.HP,
		"level":  snap.LevelNumber,
		"stage":  snap.StageNumber,
	})
}

func snapshotToJSON(snap *sim.Snapshot) map[string]interface{} {
	enemies := make([]map[string]interface{}, 0, len(snap.Enemies))
	for _, en := range snap.Enemies {
		if en.State == sim.StateDespawned {
			continue
		}
		enemies = append(enemies, map[string]interface{}{
			"x": en.X, "y": en.Y, "state": en.State, "frame": en.Frame,
		})
	}

	return map[string]interface{}{
		"tick": snap.TickNumber,
		"player": map[string]interface{}{
			"x": snap.Player.X, "y": snap.Player.Y,
			"facing": snap.Player.Facing,
			"hp":     snap.Player.HP,
			"lives":  snap.Player.Lives,
		},
		"enemies": enemies,
		"camera":  snap.CameraX,
		"score":   snap.Score,
		"level":   snap.LevelNumber,
		"stage":   snap.StageNumber,
	}
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, message string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
