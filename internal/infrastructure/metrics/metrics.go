// Package metrics holds the Prometheus instruments for the payments service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Request outcomes recorded on the payment-creation path.
const (
	OutcomeCreated      = "created"
	OutcomeDeduplicated = "deduplicated"
	OutcomeRejected     = "rejected"
	OutcomeError        = "error"
)

// Lookup outcomes recorded on the payment-retrieval path.
const (
	OutcomeFound   = "found"
	OutcomeMissing = "missing"
)

// Metrics aggregates the service-level counters. One instance is registered
// per process; tests pass their own prometheus.NewRegistry().
type Metrics struct {
	PaymentRequests *prometheus.CounterVec
	PaymentLookups  *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	paymentRequests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payments_service_requests_total",
			Help: "Total number of payment creation requests by outcome",
		},
		[]string{"outcome"},
	)

	paymentLookups := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payments_service_lookups_total",
			Help: "Total number of payment lookups by outcome",
		},
		[]string{"outcome"},
	)

	reg.MustRegister(paymentRequests)
	reg.MustRegister(paymentLookups)

	return &Metrics{
		PaymentRequests: paymentRequests,
		PaymentLookups:  paymentLookups,
	}
}
