// Package application carries the orchestration layer: the payment service
// and the error taxonomy the transport boundary maps to wire status codes.
package application

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/DanielPopoola/ficmart-payments-service/internal/domain"
)

// ServiceError is an application-level error with an HTTP mapping attached.
type ServiceError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *ServiceError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeValidation      = "VALIDATION_ERROR"
	ErrCodePaymentNotFound = "PAYMENT_NOT_FOUND"
	ErrCodeInternal        = "INTERNAL_ERROR"
	ErrCodeTimeout         = "TIMEOUT"
)

// NewPaymentNotFoundError shapes an absent lookup result for the transport
// boundary. Inside the core, absence is a plain bool, never an error.
func NewPaymentNotFoundError(id string) *ServiceError {
	return &ServiceError{
		Code:       ErrCodePaymentNotFound,
		Message:    fmt.Sprintf("Payment not found: %s", id),
		HTTPStatus: http.StatusNotFound,
	}
}

func NewInternalError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInternal,
		Message:    "An internal error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func IsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	ok := errors.As(err, &svcErr)
	return svcErr, ok
}

// ToHTTPStatus maps an error to the HTTP status the transport reports.
// Validation failures are the caller's fault (400); shaped service errors
// carry their own status; everything else is internal (500).
func ToHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.HTTPStatus
	}
	if domain.IsValidationError(err) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// ToErrorCode maps an error to the stable machine-readable code exposed on
// the wire.
func ToErrorCode(err error) string {
	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.Code
	}
	if domain.IsValidationError(err) {
		return ErrCodeValidation
	}
	return ErrCodeInternal
}
