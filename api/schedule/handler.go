// Package schedule exposes daily plan generation and retrieval.
package schedule

import (
	"encoding/json"
	"net/http"

	"github.com/gridshed/gridshed/api/httpx"
	"github.com/gridshed/gridshed/core/engine"
)

type generateRequest struct {
	DailyEnergyKWh float64 `json:"daily_energy_kwh"`
}

// Register mounts the schedule routes on the mux.
func Register(mux *http.ServeMux, eng *engine.Engine) {
	mux.HandleFunc("POST /api/schedule/generate", func(w http.ResponseWriter, r *http.Request) {
		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		dp, err := eng.GenerateDailySchedule(req.DailyEnergyKWh)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, dp)
	})

	mux.HandleFunc("GET /api/schedule", func(w http.ResponseWriter, r *http.Request) {
		dp, ok := eng.CurrentPlan()
		if !ok {
			httpx.WriteJSON(w, http.StatusOK, map[string]any{"plan": nil})
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]any{"plan": dp})
	})
}
