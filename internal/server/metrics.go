package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics holds the route service collectors on a private registry.
type Metrics struct {
	Registry *prometheus.Registry
	searches *prometheus.CounterVec
	expanded prometheus.Histogram
}

func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		searches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gridpath_searches_total",
				Help: "Total number of route searches by outcome",
			},
			[]string{"outcome"},
		),
		expanded: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "gridpath_expanded_nodes",
				Help:    "Cells expanded per route search",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
		),
	}
	m.Registry.MustRegister(
		m.searches,
		m.expanded,
		collectors.NewGoCollector(),
	)
	return m
}

func (m *Metrics) observe(found bool, expanded int) {
	outcome := "unreachable"
	if found {
		outcome = "found"
	}
	m.searches.WithLabelValues(outcome).Inc()
	m.expanded.Observe(float64(expanded))
}
