package app

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the store's prometheus instrumentation. A nil *Metrics
// disables counting.
type Metrics struct {
	Mutations       *prometheus.CounterVec
	PersistFailures prometheus.Counter
}

// NewMetrics creates the store metrics and registers them on reg when reg is
// non-nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "habitlog_mutations_total",
			Help: "Record mutations by operation.",
		}, []string{"op"}),
		PersistFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "habitlog_persist_failures_total",
			Help: "Collection writes that failed and were logged as non-fatal.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Mutations, m.PersistFailures)
	}
	return m
}
