package server

import (
	"encoding/json"
	"net/http"

	"github.com/tmdict/stargazer-sub002/internal/engine"
)

// DebugHandler предоставляет доступ к внутреннему состоянию движка
type DebugHandler struct {
	Service *engine.Service
}

func NewDebugHandler(s *engine.Service) *DebugHandler {
	return &DebugHandler{Service: s}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/state", h.handleState)
	mux.HandleFunc("/debug/symmetry", h.handleSymmetry)
}

// /debug/state - полный снимок: ячейки, занятость, кэш целей
func (h *DebugHandler) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Service.State())
}

// /debug/symmetry - зеркальная карта арены, пара на ячейку
func (h *DebugHandler) handleSymmetry(w http.ResponseWriter, r *http.Request) {
	sym := h.Service.Symmetry()
	if sym == nil {
		http.Error(w, "symmetry table unavailable for this arena", http.StatusNotFound)
		return
	}

	type pair struct {
		HexID  int `json:"hexId"`
		Mirror int `json:"mirror"`
	}

	arena := h.Service.Arena()
	pairs := make([]pair, 0, arena.Size())
	for _, id := range arena.IDs() {
		if m, ok := sym.MirrorOf(id); ok {
			pairs = append(pairs, pair{HexID: id, Mirror: m})
		}
	}
	writeJSON(w, pairs)
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	// Разрешаем запросы с любого источника (нужно для локальной отладки)
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	w.Header().Set("Content-Type", "application/json")

	if data == nil {
		w.Write([]byte("[]"))
		return
	}

	json.NewEncoder(w).Encode(data)
}
