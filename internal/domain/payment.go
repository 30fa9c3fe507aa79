// Package domain encodes the payment entity, its validation rules, and the
// storage contract it is persisted through.
package domain

import (
	"fmt"
	"maps"
	"time"

	"github.com/google/uuid"
)

// PaymentStatus represents the current state of a payment in its lifecycle
type PaymentStatus string

const (
	StatusPending   PaymentStatus = "PENDING"
	StatusSucceeded PaymentStatus = "SUCCEEDED"
	StatusFailed    PaymentStatus = "FAILED"
)

const (
	// DefaultInitiatedMessage is attached to a freshly created payment when
	// the caller did not supply one.
	DefaultInitiatedMessage = "Payment initiated"

	// DefaultSucceededMessage is attached when a payment is marked succeeded.
	DefaultSucceededMessage = "Payment successful"
)

// Payment is an immutable snapshot of a single payment. Only Status and
// Message ever change, and a change produces a new snapshot; holders of an
// older snapshot are unaffected unless they re-fetch from the store.
type Payment struct {
	ID             string
	AmountMinor    int64
	Currency       string
	OrderID        string
	IdempotencyKey string
	Status         PaymentStatus
	Message        string
	CreatedAt      time.Time
	Metadata       map[string]string
}

// NewPayment builds a valid PENDING payment with a generated ID and a UTC
// creation timestamp. Currency is normalized to uppercase. The invariants are
// re-checked here even though callers validate first, so an invalid payment
// can never be constructed through this factory.
func NewPayment(
	amountMinor int64,
	currency string,
	orderID string,
	idempotencyKey string,
	message string,
	metadata map[string]string,
) (Payment, error) {
	currency = NormalizeCurrency(currency)

	if amountMinor <= 0 {
		return Payment{}, &ValidationError{
			Field:   "amount_minor",
			Message: fmt.Sprintf("amount_minor must be positive, got %d", amountMinor),
		}
	}
	if len(currency) != 3 {
		return Payment{}, &ValidationError{
			Field:   "currency",
			Message: fmt.Sprintf("currency must be a 3-letter ISO 4217 code, got '%s'", currency),
		}
	}
	if orderID == "" {
		return Payment{}, &ValidationError{
			Field:   "order_id",
			Message: "order_id cannot be empty",
		}
	}
	if idempotencyKey == "" {
		return Payment{}, &ValidationError{
			Field:   "idempotency_key",
			Message: "idempotency_key cannot be empty",
		}
	}

	if message == "" {
		message = DefaultInitiatedMessage
	}

	return Payment{
		ID:             uuid.NewString(),
		AmountMinor:    amountMinor,
		Currency:       currency,
		OrderID:        orderID,
		IdempotencyKey: idempotencyKey,
		Status:         StatusPending,
		Message:        message,
		CreatedAt:      time.Now().UTC(),
		Metadata:       cloneMetadata(metadata),
	}, nil
}

// WithStatus returns a new snapshot with the given status and message. The
// receiver is left untouched.
func (p Payment) WithStatus(status PaymentStatus, message string) Payment {
	next := p
	next.Status = status
	next.Message = message
	next.Metadata = cloneMetadata(p.Metadata)
	return next
}

// MarkSucceeded returns a SUCCEEDED snapshot with the default success message.
func (p Payment) MarkSucceeded() Payment {
	return p.WithStatus(StatusSucceeded, DefaultSucceededMessage)
}

// MarkFailed returns a FAILED snapshot carrying the failure reason.
func (p Payment) MarkFailed(message string) Payment {
	return p.WithStatus(StatusFailed, message)
}

func (p Payment) IsPending() bool   { return p.Status == StatusPending }
func (p Payment) IsSucceeded() bool { return p.Status == StatusSucceeded }
func (p Payment) IsFailed() bool    { return p.Status == StatusFailed }

// AmountDecimal renders the amount in major units (e.g. 1250 -> 12.50).
// Display only; all arithmetic stays in minor units.
func (p Payment) AmountDecimal() float64 {
	return float64(p.AmountMinor) / 100.0
}

func (p Payment) String() string {
	return fmt.Sprintf("Payment(%s, %s %.2f, %s)", p.ID, p.Currency, p.AmountDecimal(), p.Status)
}

func cloneMetadata(metadata map[string]string) map[string]string {
	if len(metadata) == 0 {
		return map[string]string{}
	}
	return maps.Clone(metadata)
}
