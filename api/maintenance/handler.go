// Package maintenance exposes maintenance tasks via /api/maintenance.
package maintenance

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gridshed/gridshed/api/httpx"
	"github.com/gridshed/gridshed/core/engine"
)

type createRequest struct {
	AreaID int    `json:"area_id"`
	Issue  string `json:"issue"`
}

// Register mounts the maintenance routes on the mux.
func Register(mux *http.ServeMux, eng *engine.Engine) {
	mux.HandleFunc("GET /api/maintenance", func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, map[string]any{"tasks": eng.ListMaintenanceTasks()})
	})

	mux.HandleFunc("POST /api/maintenance", func(w http.ResponseWriter, r *http.Request) {
		var req createRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		task, err := eng.CreateMaintenanceTask(req.AreaID, req.Issue)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, task)
	})

	mux.HandleFunc("POST /api/maintenance/{id}/resolve", func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(r.PathValue("id"))
		if err != nil {
			http.Error(w, "invalid task id", http.StatusBadRequest)
			return
		}
		if err := eng.ResolveMaintenanceTask(id); err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
	})
}
