package metrics

import (
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestStoreMetricsExportsCountersAndHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewStoreMetrics(reg)

	metrics.IncMutation("createSale")
	metrics.IncMutation("createSale")
	metrics.IncSnapshotFailure()
	metrics.ObserveScorerDuration("gemini-3-flash-preview", 250*time.Millisecond)
	metrics.IncScorerFailure("gemini-3-flash-preview")

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	if got, err := fetchCounterValue(mfs, "store_mutations_total", "operation", "createSale"); err != nil {
		t.Fatalf("fetch mutations: %v", err)
	} else if got != 2 {
		t.Fatalf("expected mutations=2, got %f", got)
	}

	if mf := findMetricFamily(mfs, "store_snapshot_save_failures_total"); mf == nil {
		t.Fatal("snapshot failure counter not registered")
	} else if got := mf.GetMetric()[0].GetCounter().GetValue(); got != 1 {
		t.Fatalf("expected snapshot failures=1, got %f", got)
	}

	if got, err := fetchCounterValue(mfs, "lead_scorer_failures_total", "model", "gemini-3-flash-preview"); err != nil {
		t.Fatalf("fetch scorer failures: %v", err)
	} else if got != 1 {
		t.Fatalf("expected scorer failures=1, got %f", got)
	}

	if got, err := fetchHistogramSum(mfs, "lead_scorer_duration_seconds", "model", "gemini-3-flash-preview"); err != nil {
		t.Fatalf("fetch scorer duration: %v", err)
	} else if got <= 0 {
		t.Fatalf("expected duration sum > 0, got %f", got)
	}
}

func TestStoreMetricsNilSafe(t *testing.T) {
	var metrics *StoreMetrics
	metrics.IncMutation("addMoto")
	metrics.IncSnapshotFailure()
	metrics.ObserveScorerDuration("m", time.Second)
	metrics.IncScorerFailure("m")

	empty := NewStoreMetrics(nil)
	empty.IncMutation("addMoto")
	empty.IncSnapshotFailure()
}

func fetchCounterValue(mfs []*dto.MetricFamily, name, label, value string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		if hasLabel(metric, label, value) {
			return metric.GetCounter().GetValue(), nil
		}
	}
	return 0, fmt.Errorf("metric %q with %s=%s not found", name, label, value)
}

func fetchHistogramSum(mfs []*dto.MetricFamily, name, label, value string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		if hasLabel(metric, label, value) {
			return metric.GetHistogram().GetSampleSum(), nil
		}
	}
	return 0, fmt.Errorf("metric %q with %s=%s not found", name, label, value)
}

func findMetricFamily(mfs []*dto.MetricFamily, name string) *dto.MetricFamily {
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func hasLabel(metric *dto.Metric, label, value string) bool {
	for _, pair := range metric.GetLabel() {
		if pair.GetName() == label && pair.GetValue() == value {
			return true
		}
	}
	return false
}
