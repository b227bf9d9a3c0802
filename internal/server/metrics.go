// internal/server/metrics.go
package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus instruments for the API.
type Metrics struct {
	Requests       *prometheus.CounterVec
	DesignDuration prometheus.Histogram
	PairsReturned  prometheus.Histogram
}

// NewMetrics registers all instruments on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "primedesign_requests_total",
			Help: "API requests by endpoint and status code.",
		}, []string{"endpoint", "code"}),
		DesignDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "primedesign_design_duration_seconds",
			Help:    "Wall time of primer design runs.",
			Buckets: prometheus.DefBuckets,
		}),
		PairsReturned: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "primedesign_pairs_returned",
			Help:    "Primer pairs returned per design request.",
			Buckets: []float64{0, 1, 2, 5, 10},
		}),
	}
}
