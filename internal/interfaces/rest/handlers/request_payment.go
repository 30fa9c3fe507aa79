package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/DanielPopoola/ficmart-payments-service/internal/application/services"
	"github.com/DanielPopoola/ficmart-payments-service/internal/domain"
	"github.com/DanielPopoola/ficmart-payments-service/internal/interfaces/rest"
)

// RequestPayment handles POST /v1/payments. A retried request with a known
// idempotency key replies with the originally stored payment and the same
// status code as the first attempt.
func (h *Handlers) RequestPayment(w http.ResponseWriter, r *http.Request) {
	var req rest.RequestPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.WriteError(w, &domain.ValidationError{
			Field:   "body",
			Message: "Request body is not valid JSON",
			Err:     err,
		}, h.logger)
		return
	}

	cmd := services.RequestPaymentCommand{
		AmountMinor:    req.AmountMinor,
		Currency:       req.Currency,
		OrderID:        req.OrderID,
		IdempotencyKey: req.IdempotencyKey,
		Metadata:       req.Metadata,
	}

	payment, err := h.service.RequestPayment(r.Context(), cmd)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusCreated, rest.RequestPaymentResponse{
		Success: true,
		Data:    rest.ToRequestPaymentData(payment),
	}, h.logger)
}
