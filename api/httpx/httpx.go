// Package httpx holds the JSON helpers shared by the API handlers.
package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gridshed/gridshed/core/grid"
)

// WriteJSON encodes v as the response body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// WriteError maps core errors onto HTTP statuses: validation failures
// are 400, unknown ids are 404, anything else is 500.
func WriteError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, grid.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, grid.ErrNotFound):
		status = http.StatusNotFound
	}
	WriteJSON(w, status, map[string]string{"error": err.Error()})
}
