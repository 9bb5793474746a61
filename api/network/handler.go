// Package network exposes the hierarchy and energy-distribution views.
package network

import (
	"net/http"

	"github.com/gridshed/gridshed/api/httpx"
	"github.com/gridshed/gridshed/core/engine"
)

// Register mounts the network routes on the mux.
func Register(mux *http.ServeMux, eng *engine.Engine) {
	// Distribution is the plant -> substation -> feeder daily energy
	// roll-up under the current plan.
	mux.HandleFunc("GET /api/network/distribution", func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, eng.EnergyDistribution())
	})

	// Graph returns the raw hierarchy so clients can draw it.
	mux.HandleFunc("GET /api/network/graph", func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, map[string]any{
			"substations": eng.Substations(),
			"feeders":     eng.Feeders(),
			"areas":       eng.Areas(),
		})
	})
}
