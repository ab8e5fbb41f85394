// SPDX-License-Identifier: MIT

package experiment

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Solve outcomes used as the "status" label.
const (
	StatusOK         = "ok"
	StatusInfeasible = "infeasible"
	StatusError      = "error"
)

// Metrics holds the collectors a Runner updates, registered on a private
// registry so several runners never collide.
type Metrics struct {
	registry *prometheus.Registry

	Instances     prometheus.Counter
	Solves        *prometheus.CounterVec   // algorithm, status
	SolveDuration *prometheus.HistogramVec // algorithm
	Profit        *prometheus.HistogramVec // algorithm
}

// NewMetrics creates and registers the experiment collectors.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{registry: reg}

	m.Instances = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "qmkp",
		Name:      "instances_generated_total",
		Help:      "Number of random instances generated.",
	})
	m.Solves = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "qmkp",
		Name:      "solves_total",
		Help:      "Number of solver invocations by outcome.",
	}, []string{"algorithm", "status"})
	m.SolveDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "qmkp",
		Name:      "solve_duration_seconds",
		Help:      "Wall time of one solver invocation.",
		Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
	}, []string{"algorithm"})
	m.Profit = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "qmkp",
		Name:      "total_profit",
		Help:      "Total profit of feasible solutions.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 20),
	}, []string{"algorithm"})

	reg.MustRegister(m.Instances, m.Solves, m.SolveDuration, m.Profit)
	return m
}

// Registry exposes the registry for scraping or gathering.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

func (m *Metrics) observe(alg, status string, elapsed time.Duration, profit float64) {
	if m == nil {
		return
	}
	m.Solves.WithLabelValues(alg, status).Inc()
	m.SolveDuration.WithLabelValues(alg).Observe(elapsed.Seconds())
	if status == StatusOK {
		m.Profit.WithLabelValues(alg).Observe(profit)
	}
}

func (m *Metrics) instanceGenerated() {
	if m == nil {
		return
	}
	m.Instances.Inc()
}
