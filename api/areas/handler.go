// Package areas exposes demand-area CRUD via /api/areas.
package areas

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gridshed/gridshed/api/httpx"
	"github.com/gridshed/gridshed/core/engine"
	"github.com/gridshed/gridshed/core/grid"
)

// Register mounts the area routes on the mux.
func Register(mux *http.ServeMux, eng *engine.Engine) {
	mux.HandleFunc("GET /api/areas", func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, map[string]any{"areas": eng.Areas()})
	})

	mux.HandleFunc("POST /api/areas", func(w http.ResponseWriter, r *http.Request) {
		var in grid.AreaInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		a, err := eng.CreateArea(in)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, a)
	})

	mux.HandleFunc("DELETE /api/areas/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(r.PathValue("id"))
		if err != nil {
			http.Error(w, "invalid area id", http.StatusBadRequest)
			return
		}
		if err := eng.DeleteArea(id); err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
	})
}
