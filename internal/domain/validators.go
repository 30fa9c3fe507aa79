package domain

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// AllowedCurrencies is the fixed set of ISO 4217 codes the service accepts.
var AllowedCurrencies = map[string]struct{}{
	"USD": {},
	"EUR": {},
	"GBP": {},
	"JPY": {},
	"CAD": {},
	"AUD": {},
}

// MinIdempotencyKeyLength is the minimum length of a caller-supplied
// idempotency key.
const MinIdempotencyKeyLength = 8

var allowedCurrencyList = strings.Join(slices.Sorted(maps.Keys(AllowedCurrencies)), ", ")

// NormalizeCurrency returns the canonical uppercase form of a currency code.
func NormalizeCurrency(currency string) string {
	return strings.ToUpper(currency)
}

// ValidateAmount checks that the amount, in minor units, is strictly positive.
func ValidateAmount(amountMinor int64) error {
	if amountMinor <= 0 {
		return &ValidationError{
			Field: "amount_minor",
			Message: fmt.Sprintf(
				"Payment amount must be positive, got %d minor units. "+
					"Amount should be specified in cents (e.g., 1250 for $12.50).",
				amountMinor,
			),
		}
	}
	return nil
}

// ValidateCurrency checks the currency code, case-insensitively, against the
// allow-list.
func ValidateCurrency(currency string) error {
	if currency == "" {
		return &ValidationError{
			Field:   "currency",
			Message: "Currency code cannot be empty",
		}
	}

	if _, ok := AllowedCurrencies[NormalizeCurrency(currency)]; !ok {
		return &ValidationError{
			Field: "currency",
			Message: fmt.Sprintf(
				"Unsupported currency '%s'. Allowed currencies: %s",
				currency, allowedCurrencyList,
			),
		}
	}
	return nil
}

// ValidateOrderID checks that the order identifier is present.
func ValidateOrderID(orderID string) error {
	if orderID == "" {
		return &ValidationError{
			Field:   "order_id",
			Message: "Order ID cannot be empty",
		}
	}
	return nil
}

// ValidateIdempotencyKey checks that the idempotency key is present and long
// enough to be a plausible deduplication token.
func ValidateIdempotencyKey(key string) error {
	if key == "" {
		return &ValidationError{
			Field:   "idempotency_key",
			Message: "Idempotency key cannot be empty",
		}
	}
	if len(key) < MinIdempotencyKeyLength {
		return &ValidationError{
			Field: "idempotency_key",
			Message: fmt.Sprintf(
				"Idempotency key must be at least %d characters long, got %d",
				MinIdempotencyKeyLength, len(key),
			),
		}
	}
	return nil
}

// ValidatePaymentRequest runs all request checks in a fixed order (amount,
// currency, order ID, idempotency key) and fails fast on the first
// violation. Callers rely on that precedence: an amount error is always
// reported before a currency error, and so on.
func ValidatePaymentRequest(amountMinor int64, currency, orderID, idempotencyKey string) error {
	if err := ValidateAmount(amountMinor); err != nil {
		return prefixValidation("Invalid amount", err)
	}
	if err := ValidateCurrency(currency); err != nil {
		return prefixValidation("Invalid currency", err)
	}
	if err := ValidateOrderID(orderID); err != nil {
		return prefixValidation("Invalid order ID", err)
	}
	if err := ValidateIdempotencyKey(idempotencyKey); err != nil {
		return prefixValidation("Invalid idempotency key", err)
	}
	return nil
}

func prefixValidation(prefix string, err error) error {
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		return err
	}
	return &ValidationError{
		Field:   vErr.Field,
		Message: fmt.Sprintf("%s: %s", prefix, vErr.Message),
		Err:     vErr,
	}
}
