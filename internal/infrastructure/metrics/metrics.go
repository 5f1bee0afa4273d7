package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "garage_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "garage_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// JobTransitionsTotal counts transition attempts by outcome:
	// applied, noop, payment_required, rejected, conflict.
	JobTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "garage_job_transitions_total",
			Help: "Job status transition attempts",
		},
		[]string{"from", "to", "outcome"},
	)

	SettlementFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "garage_job_settlement_failures_total",
			Help: "Stock settlements that failed after a committed job transition",
		},
		[]string{"status"},
	)

	InventoryOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "garage_inventory_operations_total",
			Help: "Inventory reserve/consume/release operations",
		},
		[]string{"operation", "outcome"},
	)

	CASRetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "garage_cas_retries_total",
			Help: "Conditional writes lost to a concurrent writer and retried",
		},
		[]string{"entity"},
	)

	PaymentsRecordedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "garage_payments_recorded_total",
			Help: "Payments recorded against invoices",
		},
		[]string{"method", "status"},
	)

	NotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "garage_notifications_total",
			Help: "Notification dispatch attempts",
		},
		[]string{"event", "outcome"},
	)
)
