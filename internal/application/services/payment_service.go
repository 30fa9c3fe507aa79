// Package services implements the payment orchestration workflows on top of
// the validator and the store.
package services

import (
	"context"
	"log/slog"

	"github.com/DanielPopoola/ficmart-payments-service/internal/application"
	"github.com/DanielPopoola/ficmart-payments-service/internal/domain"
	"github.com/DanielPopoola/ficmart-payments-service/internal/infrastructure/metrics"
)

// RequestPaymentCommand carries the caller-supplied fields of a payment
// creation request.
type RequestPaymentCommand struct {
	AmountMinor    int64
	Currency       string
	OrderID        string
	IdempotencyKey string
	Metadata       map[string]string
}

// PaymentService is the only component that composes the validator, the
// store, and the payment entity. It owns the idempotent create-or-return
// workflow and the plain lookup workflow.
type PaymentService struct {
	repo    domain.PaymentRepository
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func NewPaymentService(repo domain.PaymentRepository, logger *slog.Logger, m *metrics.Metrics) *PaymentService {
	return &PaymentService{
		repo:    repo,
		logger:  logger,
		metrics: m,
	}
}

// RequestPayment validates the request, then creates a payment or returns
// the one already stored under the same idempotency key.
//
// The idempotency key is the sole identity for deduplication: when a key is
// already known, the stored payment is returned as-is even if the current
// request's amount, currency, order or metadata differ. First write wins;
// mismatched payloads under a reused key are not an error.
//
// The find and the save are two separate store calls, each atomic on its own.
// Two racing requests with the same fresh key can both construct a payment;
// the later save wins both indices and callers get back whichever payment
// their own call produced. Callers only learn an id from this call's return
// value, so the transiently unreachable loser is never observable by key.
func (s *PaymentService) RequestPayment(ctx context.Context, cmd RequestPaymentCommand) (domain.Payment, error) {
	s.logger.Info("payment request received",
		"amount_minor", cmd.AmountMinor,
		"currency", cmd.Currency,
		"order_id", cmd.OrderID,
		"idempotency_key", cmd.IdempotencyKey,
	)

	if err := domain.ValidatePaymentRequest(cmd.AmountMinor, cmd.Currency, cmd.OrderID, cmd.IdempotencyKey); err != nil {
		s.logger.Warn("payment request validation failed",
			"error", err,
			"idempotency_key", cmd.IdempotencyKey,
		)
		s.metrics.PaymentRequests.WithLabelValues(metrics.OutcomeRejected).Inc()
		return domain.Payment{}, err
	}

	existing, found, err := s.repo.FindByIdempotencyKey(ctx, cmd.IdempotencyKey)
	if err != nil {
		s.metrics.PaymentRequests.WithLabelValues(metrics.OutcomeError).Inc()
		return domain.Payment{}, application.NewInternalError(err)
	}
	if found {
		s.logger.Info("returning existing payment for idempotency key",
			"payment_id", existing.ID,
			"idempotency_key", cmd.IdempotencyKey,
			"status", existing.Status,
		)
		s.metrics.PaymentRequests.WithLabelValues(metrics.OutcomeDeduplicated).Inc()
		return existing, nil
	}

	payment, err := domain.NewPayment(
		cmd.AmountMinor,
		cmd.Currency,
		cmd.OrderID,
		cmd.IdempotencyKey,
		"",
		cmd.Metadata,
	)
	if err != nil {
		s.logger.Error("failed to create payment",
			"error", err,
			"idempotency_key", cmd.IdempotencyKey,
		)
		s.metrics.PaymentRequests.WithLabelValues(metrics.OutcomeRejected).Inc()
		return domain.Payment{}, err
	}

	saved, err := s.repo.Save(ctx, payment)
	if err != nil {
		s.logger.Error("failed to save payment",
			"error", err,
			"payment_id", payment.ID,
			"idempotency_key", cmd.IdempotencyKey,
		)
		s.metrics.PaymentRequests.WithLabelValues(metrics.OutcomeError).Inc()
		return domain.Payment{}, application.NewInternalError(err)
	}

	s.logger.Info("payment saved",
		"payment_id", saved.ID,
		"amount_minor", saved.AmountMinor,
		"currency", saved.Currency,
		"status", saved.Status,
	)
	s.metrics.PaymentRequests.WithLabelValues(metrics.OutcomeCreated).Inc()
	return saved, nil
}

// GetPayment retrieves a payment by its identifier. Absence is a normal
// outcome reported through the bool, not a failure.
func (s *PaymentService) GetPayment(ctx context.Context, id string) (domain.Payment, bool, error) {
	payment, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.metrics.PaymentLookups.WithLabelValues(metrics.OutcomeError).Inc()
		return domain.Payment{}, false, application.NewInternalError(err)
	}

	if found {
		s.logger.Info("payment found", "payment_id", id, "status", payment.Status)
		s.metrics.PaymentLookups.WithLabelValues(metrics.OutcomeFound).Inc()
	} else {
		s.logger.Info("payment not found", "payment_id", id)
		s.metrics.PaymentLookups.WithLabelValues(metrics.OutcomeMissing).Inc()
	}

	return payment, found, nil
}
