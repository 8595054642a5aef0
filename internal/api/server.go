// Package api serves read-only observation endpoints over the game state.
// All mutation stays on the in-process store API; nothing here writes.
package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/talgya/whoo-works/internal/store"
)

// Server exposes the current simulation state over HTTP.
type Server struct {
	Store *store.Store
	Port  int
}

// Start begins serving in a goroutine.
func (s *Server) Start() {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/status", s.handleStatus)
	mux.HandleFunc("/api/v1/player", s.handlePlayer)
	mux.HandleFunc("/api/v1/buildings", s.handleBuildings)
	mux.HandleFunc("/api/v1/building/", s.handleBuildingDetail)

	addr := fmt.Sprintf(":%d", s.Port)
	slog.Info("observation API starting", "addr", addr)

	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	snap := s.Store.Snapshot()
	started := time.UnixMilli(snap.GameStartTime)

	writeJSON(w, map[string]any{
		"revision":          s.Store.Revision(),
		"game_started":      humanize.Time(started),
		"is_day_time":       snap.IsDayTime,
		"income_per_second": snap.Player.IncomePerSecond,
		"owl_cash":          humanize.CommafWithDigits(snap.Player.Currencies.OwlCash, 1),
		"power":             fmt.Sprintf("%d/%d", snap.Player.PowerUsed, snap.Player.PowerCapacity),
	})
}

func (s *Server) handlePlayer(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Store.Player())
}

func (s *Server) handleBuildings(w http.ResponseWriter, r *http.Request) {
	snap := s.Store.Snapshot()

	type buildingSummary struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Unlocked bool   `json:"unlocked"`
		Rooms    int    `json:"rooms"`
		Occupied int    `json:"occupied"`
	}

	out := make([]buildingSummary, 0, len(snap.Buildings))
	for _, b := range snap.Buildings {
		occupied := 0
		for _, room := range b.Rooms {
			if room.Company != nil {
				occupied++
			}
		}
		out = append(out, buildingSummary{
			ID: b.ID, Name: b.Name, Unlocked: b.Unlocked,
			Rooms: len(b.Rooms), Occupied: occupied,
		})
	}
	writeJSON(w, out)
}

func (s *Server) handleBuildingDetail(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/v1/building/")
	snap := s.Store.Snapshot()

	building := snap.Building(id)
	if building == nil {
		http.Error(w, "building not found", http.StatusNotFound)
		return
	}
	writeJSON(w, building)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}
