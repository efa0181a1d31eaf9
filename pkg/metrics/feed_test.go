package metrics

import (
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestFeedMetricsExportsCountersAndHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewFeedMetrics(reg)

	metrics.ObserveRefresh(250 * time.Millisecond)
	metrics.IncRefreshSuccess()
	metrics.AddRowsIngested("sheet", 40)
	metrics.AddRowsRejected("invalid_date", 3)
	metrics.SetSnapshotSize(37)

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	if got, err := fetchCounterValue(mfs, "feed_rows_ingested_total", "source", "sheet"); err != nil {
		t.Fatalf("fetch ingested: %v", err)
	} else if got != 40 {
		t.Fatalf("expected ingested=40, got %f", got)
	}

	if got, err := fetchCounterValue(mfs, "feed_rows_rejected_total", "reason", "invalid_date"); err != nil {
		t.Fatalf("fetch rejected: %v", err)
	} else if got != 3 {
		t.Fatalf("expected rejected=3, got %f", got)
	}

	if mf := findMetricFamily(mfs, "sales_snapshot_size"); mf == nil {
		t.Fatalf("snapshot size gauge not found")
	} else if got := mf.GetMetric()[0].GetGauge().GetValue(); got != 37 {
		t.Fatalf("expected snapshot size 37, got %f", got)
	}

	if mf := findMetricFamily(mfs, "feed_refresh_duration_seconds"); mf == nil {
		t.Fatalf("refresh duration histogram not found")
	} else if sum := mf.GetMetric()[0].GetHistogram().GetSampleSum(); sum <= 0 {
		t.Fatalf("expected duration sum > 0, got %f", sum)
	}
}

func TestFeedMetricsNilSafe(t *testing.T) {
	var metrics *FeedMetrics
	metrics.IncRefreshFailure()
	metrics.AddRowsIngested("fallback", 1)

	empty := NewFeedMetrics(nil)
	empty.ObserveRefresh(time.Second)
	empty.SetSnapshotSize(1)
}

func fetchCounterValue(mfs []*dto.MetricFamily, name, label, value string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		if matchesLabel(metric.GetLabel(), label, value) {
			return metric.GetCounter().GetValue(), nil
		}
	}
	return 0, fmt.Errorf("metric %q missing label %s=%s", name, label, value)
}

func findMetricFamily(mfs []*dto.MetricFamily, name string) *dto.MetricFamily {
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func matchesLabel(labels []*dto.LabelPair, name, value string) bool {
	for _, label := range labels {
		if label.GetName() == name && label.GetValue() == value {
			return true
		}
	}
	return false
}
