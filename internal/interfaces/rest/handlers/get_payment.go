package handlers

import (
	"net/http"

	"github.com/DanielPopoola/ficmart-payments-service/internal/application"
	"github.com/DanielPopoola/ficmart-payments-service/internal/interfaces/rest"
)

// GetPayment handles GET /v1/payments/{id}. Absence becomes a 404 naming the
// missing id; inside the core it was never an error.
func (h *Handlers) GetPayment(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	payment, found, err := h.service.GetPayment(r.Context(), id)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}
	if !found {
		rest.WriteError(w, application.NewPaymentNotFoundError(id), h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, rest.GetPaymentResponse{
		Success: true,
		Data:    rest.ToPaymentData(payment),
	}, h.logger)
}
