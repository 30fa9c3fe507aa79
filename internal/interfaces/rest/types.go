// Package rest defines the wire types of the payments API and the mapping
// from application errors to HTTP responses.
package rest

import (
	"maps"
	"time"

	"github.com/DanielPopoola/ficmart-payments-service/internal/domain"
)

// Timestamp is the wire encoding for points in time: seconds plus nanoseconds
// since the Unix epoch, UTC. Never a formatted string, never a float.
type Timestamp struct {
	Seconds int64 `json:"seconds"`
	Nanos   int32 `json:"nanos"`
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{
		Seconds: t.Unix(),
		Nanos:   int32(t.Nanosecond()),
	}
}

// Time converts the wire encoding back to a UTC time.Time.
func (ts Timestamp) Time() time.Time {
	return time.Unix(ts.Seconds, int64(ts.Nanos)).UTC()
}

// RequestPaymentRequest is the creation request body. Currency is accepted
// case-insensitively; responses always report the normalized uppercase form.
type RequestPaymentRequest struct {
	AmountMinor    int64             `json:"amount_minor"`
	Currency       string            `json:"currency"`
	OrderID        string            `json:"order_id"`
	IdempotencyKey string            `json:"idempotency_key"`
	Metadata       map[string]string `json:"metadata,omitempty"`
}

// RequestPaymentData is the creation reply payload.
type RequestPaymentData struct {
	ID             string    `json:"id"`
	Status         string    `json:"status"`
	Message        string    `json:"message"`
	IdempotencyKey string    `json:"idempotency_key"`
	CreatedAt      Timestamp `json:"created_at"`
}

// PaymentData is the full payment representation returned by lookups.
type PaymentData struct {
	ID             string            `json:"id"`
	Status         string            `json:"status"`
	AmountMinor    int64             `json:"amount_minor"`
	Currency       string            `json:"currency"`
	OrderID        string            `json:"order_id"`
	IdempotencyKey string            `json:"idempotency_key"`
	CreatedAt      Timestamp         `json:"created_at"`
	Message        string            `json:"message"`
	Metadata       map[string]string `json:"metadata,omitempty"`
}

// RequestPaymentResponse wraps a successful creation reply.
type RequestPaymentResponse struct {
	Success bool               `json:"success"`
	Data    RequestPaymentData `json:"data"`
}

// GetPaymentResponse wraps a successful lookup reply.
type GetPaymentResponse struct {
	Success bool        `json:"success"`
	Data    PaymentData `json:"data"`
}

// HealthResponse is the liveness reply.
type HealthResponse struct {
	Status string `json:"status"`
}

// ToRequestPaymentData projects a payment onto the creation reply shape.
func ToRequestPaymentData(p domain.Payment) RequestPaymentData {
	return RequestPaymentData{
		ID:             p.ID,
		Status:         string(p.Status),
		Message:        p.Message,
		IdempotencyKey: p.IdempotencyKey,
		CreatedAt:      NewTimestamp(p.CreatedAt),
	}
}

// ToPaymentData projects a payment onto the full lookup reply shape.
func ToPaymentData(p domain.Payment) PaymentData {
	return PaymentData{
		ID:             p.ID,
		Status:         string(p.Status),
		AmountMinor:    p.AmountMinor,
		Currency:       p.Currency,
		OrderID:        p.OrderID,
		IdempotencyKey: p.IdempotencyKey,
		CreatedAt:      NewTimestamp(p.CreatedAt),
		Message:        p.Message,
		Metadata:       maps.Clone(p.Metadata),
	}
}
