package handlers

import (
	"net/http"

	"github.com/DanielPopoola/ficmart-payments-service/internal/interfaces/rest"
)

// Health handles GET /health. Pure liveness; touches no service or store
// state.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	rest.WriteJSON(w, http.StatusOK, rest.HealthResponse{Status: "ok"}, h.logger)
}
