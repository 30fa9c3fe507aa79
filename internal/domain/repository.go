package domain

import "context"

// PaymentRepository defines the contract for payment storage.
//
// Lookups report absence through the bool return; the error slot is reserved
// for backend faults (a memory-resident implementation never produces one).
// Save overwrites both the id index and the idempotency-key index under one
// exclusion scope, so the two are always observed consistently.
type PaymentRepository interface {
	Save(ctx context.Context, payment Payment) (Payment, error)
	FindByID(ctx context.Context, id string) (Payment, bool, error)
	FindByIdempotencyKey(ctx context.Context, key string) (Payment, bool, error)

	// Clear and Count exist for tests and operational tooling only.
	Clear(ctx context.Context) error
	Count(ctx context.Context) (int, error)
}
