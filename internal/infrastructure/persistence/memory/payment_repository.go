// Package memory provides the process-local implementation of the payment
// repository. Data lives for the lifetime of the process only.
package memory

import (
	"context"
	"sync"

	"github.com/DanielPopoola/ficmart-payments-service/internal/domain"
)

// PaymentRepository is a concurrency-safe, dual-indexed in-memory payment
// store. A single lock covers both indices, so the two writes of a Save are
// observed atomically: no reader can see the id index updated but not the
// idempotency index, or vice versa. Readers take the same lock (shared mode);
// there are no lock-free reads.
type PaymentRepository struct {
	mu               sync.RWMutex
	byID             map[string]domain.Payment
	byIdempotencyKey map[string]domain.Payment
}

var _ domain.PaymentRepository = (*PaymentRepository)(nil)

func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{
		byID:             make(map[string]domain.Payment),
		byIdempotencyKey: make(map[string]domain.Payment),
	}
}

// Save inserts or overwrites the payment under both its id and its
// idempotency key, last writer wins on both indices. It never validates;
// callers are expected to have done that before persisting.
func (r *PaymentRepository) Save(_ context.Context, payment domain.Payment) (domain.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[payment.ID] = payment
	r.byIdempotencyKey[payment.IdempotencyKey] = payment
	return payment, nil
}

// FindByID looks a payment up by its identifier. Absence is reported through
// the bool, never as an error.
func (r *PaymentRepository) FindByID(_ context.Context, id string) (domain.Payment, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	payment, ok := r.byID[id]
	return payment, ok, nil
}

// FindByIdempotencyKey looks a payment up by the caller-supplied
// deduplication key.
func (r *PaymentRepository) FindByIdempotencyKey(_ context.Context, key string) (domain.Payment, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	payment, ok := r.byIdempotencyKey[key]
	return payment, ok, nil
}

// Clear drops every stored payment. Test and ops tooling only.
func (r *PaymentRepository) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clear(r.byID)
	clear(r.byIdempotencyKey)
	return nil
}

// Count reports the number of stored payments, counted over the id index.
func (r *PaymentRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.byID), nil
}
