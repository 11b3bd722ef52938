package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// StoreMetrics records store mutation, snapshot, and lead scorer metadata.
type StoreMetrics struct {
	mutations      *prometheus.CounterVec
	snapshotFails  prometheus.Counter
	scorerDuration *prometheus.HistogramVec
	scorerFailures *prometheus.CounterVec
}

// NewStoreMetrics registers the store metrics on the provided registerer.
func NewStoreMetrics(reg prometheus.Registerer) *StoreMetrics {
	if reg == nil {
		return &StoreMetrics{}
	}
	mutations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "store_mutations_total",
		Help: "Store mutations by operation.",
	}, []string{"operation"})
	snapshotFails := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "store_snapshot_save_failures_total",
		Help: "Snapshot persistence failures.",
	})
	scorerDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "lead_scorer_duration_seconds",
		Help:    "Duration of lead scoring calls in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"model"})
	scorerFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "lead_scorer_failures_total",
		Help: "Failed lead scoring calls.",
	}, []string{"model"})
	reg.MustRegister(mutations, snapshotFails, scorerDuration, scorerFailures)
	return &StoreMetrics{
		mutations:      mutations,
		snapshotFails:  snapshotFails,
		scorerDuration: scorerDuration,
		scorerFailures: scorerFailures,
	}
}

// IncMutation increments the mutation counter for the named operation.
func (s *StoreMetrics) IncMutation(operation string) {
	if s == nil || s.mutations == nil {
		return
	}
	s.mutations.WithLabelValues(normalizeLabel(operation)).Inc()
}

// IncSnapshotFailure increments the snapshot failure counter.
func (s *StoreMetrics) IncSnapshotFailure() {
	if s == nil || s.snapshotFails == nil {
		return
	}
	s.snapshotFails.Inc()
}

// ObserveScorerDuration records the duration of a scoring call.
func (s *StoreMetrics) ObserveScorerDuration(model string, duration time.Duration) {
	if s == nil || s.scorerDuration == nil {
		return
	}
	s.scorerDuration.WithLabelValues(normalizeLabel(model)).Observe(duration.Seconds())
}

// IncScorerFailure increments the scorer failure counter.
func (s *StoreMetrics) IncScorerFailure(model string) {
	if s == nil || s.scorerFailures == nil {
		return
	}
	s.scorerFailures.WithLabelValues(normalizeLabel(model)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
