package http

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics agrupa os coletores do servidor.
type Metrics struct {
	Projections *prometheus.CounterVec
	Duration    prometheus.Histogram
}

// NewMetrics cria e registra os coletores em reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Projections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bizcase_projections_total",
			Help: "Projection requests served, by cache outcome.",
		}, []string{"cache"}),
		Duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "bizcase_projection_duration_seconds",
			Help:    "Time spent computing projections on cache misses.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
		}),
	}
	reg.MustRegister(m.Projections, m.Duration)
	return m
}
