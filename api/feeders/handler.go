// Package feeders exposes feeder CRUD via /api/feeders.
package feeders

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gridshed/gridshed/api/httpx"
	"github.com/gridshed/gridshed/core/engine"
)

type createRequest struct {
	Name       string  `json:"name"`
	CapacityKW float64 `json:"capacity_kw"`
}

// Register mounts the feeder routes on the mux.
func Register(mux *http.ServeMux, eng *engine.Engine) {
	mux.HandleFunc("GET /api/feeders", func(w http.ResponseWriter, r *http.Request) {
		load, count := eng.FeederLoads()
		httpx.WriteJSON(w, http.StatusOK, map[string]any{
			"feeders":          eng.Feeders(),
			"load_per_feeder":  load,
			"areas_per_feeder": count,
		})
	})

	mux.HandleFunc("POST /api/feeders", func(w http.ResponseWriter, r *http.Request) {
		var req createRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		f, err := eng.CreateFeeder(req.Name, req.CapacityKW)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, f)
	})

	mux.HandleFunc("DELETE /api/feeders/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(r.PathValue("id"))
		if err != nil {
			http.Error(w, "invalid feeder id", http.StatusBadRequest)
			return
		}
		if err := eng.DeleteFeeder(id); err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
	})
}
