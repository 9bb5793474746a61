// Package dashboard exposes the summary view consumed by the front page.
package dashboard

import (
	"net/http"

	"github.com/gridshed/gridshed/api/httpx"
	"github.com/gridshed/gridshed/core/engine"
)

// Register mounts the dashboard and health routes on the mux.
func Register(mux *http.ServeMux, eng *engine.Engine) {
	mux.HandleFunc("GET /api/dashboard", func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, eng.DashboardView())
	})

	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
}
