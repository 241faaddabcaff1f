package simrunner

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics exposes the runner's Prometheus instrumentation: study volume,
// cycle counts, and batch latency.
type Metrics struct {
	trialsTotal   prometheus.Counter
	cyclesTotal   prometheus.Counter
	batchDuration prometheus.Histogram
}

// NewMetrics creates and registers the runner metrics with the given
// registerer. Pass prometheus.DefaultRegisterer for the global registry,
// or a private registry in tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		trialsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "voteforge_trials_simulated_total",
			Help: "Total number of simulated elections completed.",
		}),
		cyclesTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "voteforge_condorcet_cycles_total",
			Help: "Total number of simulated elections without a Condorcet winner.",
		}),
		batchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "voteforge_batch_duration_seconds",
			Help:    "Wall time spent simulating one batch of trials.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

func (m *Metrics) observeBatch(elapsed time.Duration) {
	if m == nil {
		return
	}
	m.batchDuration.Observe(elapsed.Seconds())
}

func (m *Metrics) recordStudy(trials, cycles int) {
	if m == nil {
		return
	}
	m.trialsTotal.Add(float64(trials))
	m.cyclesTotal.Add(float64(cycles))
}
