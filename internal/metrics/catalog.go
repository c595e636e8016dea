package metrics

import "github.com/prometheus/client_golang/prometheus"

// Outbound catalog API metrics.
var (
	CatalogRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "coursegate",
			Name:      "catalog_requests_total",
			Help:      "Total number of remote catalog requests",
		},
		[]string{"operation", "status"},
	)

	CatalogRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "coursegate",
			Name:      "catalog_request_duration_seconds",
			Help:      "Remote catalog request duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"operation"},
	)

	CatalogErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "coursegate",
			Name:      "catalog_errors_total",
			Help:      "Total remote catalog errors",
		},
		[]string{"operation", "error_type"},
	)

	FallbackServedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "coursegate",
			Name:      "fallback_served_total",
			Help:      "Times a request was answered from the offline dataset",
		},
	)
)

var catalogMetricsRegistered bool

// RegisterCatalogMetrics registers catalog metrics. Must be called once from main.
func RegisterCatalogMetrics() {
	if catalogMetricsRegistered {
		return
	}
	prometheus.MustRegister(CatalogRequestsTotal)
	prometheus.MustRegister(CatalogRequestDuration)
	prometheus.MustRegister(CatalogErrorsTotal)
	prometheus.MustRegister(FallbackServedTotal)
	catalogMetricsRegistered = true
}
