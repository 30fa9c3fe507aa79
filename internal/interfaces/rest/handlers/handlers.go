// Package handlers exposes the payment operations over HTTP.
package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/ficmart-payments-service/internal/application/services"
	"github.com/DanielPopoola/ficmart-payments-service/internal/domain"
)

// PaymentService is the slice of the orchestrator the transport needs.
type PaymentService interface {
	RequestPayment(ctx context.Context, cmd services.RequestPaymentCommand) (domain.Payment, error)
	GetPayment(ctx context.Context, id string) (domain.Payment, bool, error)
}

type Handlers struct {
	service PaymentService
	logger  *slog.Logger
}

func NewHandlers(service PaymentService, logger *slog.Logger) *Handlers {
	return &Handlers{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes mounts the payment API on the mux.
func (h *Handlers) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/payments", h.RequestPayment)
	mux.HandleFunc("GET /v1/payments/{id}", h.GetPayment)
	mux.HandleFunc("GET /health", h.Health)
}
