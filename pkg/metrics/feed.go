package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// FeedMetrics records feed ingestion outcomes per refresh cycle.
type FeedMetrics struct {
	refreshDuration prometheus.Histogram
	refreshSuccess  prometheus.Counter
	refreshFailure  prometheus.Counter
	rowsIngested    *prometheus.CounterVec
	rowsRejected    *prometheus.CounterVec
	snapshotSize    prometheus.Gauge
}

// NewFeedMetrics registers the feed metrics on the provided registerer.
func NewFeedMetrics(reg prometheus.Registerer) *FeedMetrics {
	if reg == nil {
		return &FeedMetrics{}
	}
	refreshDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "feed_refresh_duration_seconds",
		Help:    "Duration of feed refresh cycles in seconds.",
		Buckets: prometheus.DefBuckets,
	})
	refreshSuccess := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "feed_refresh_success_total",
		Help: "Successful feed refresh cycles.",
	})
	refreshFailure := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "feed_refresh_failure_total",
		Help: "Failed feed refresh cycles.",
	})
	rowsIngested := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "feed_rows_ingested_total",
		Help: "Raw feed rows ingested, labeled by feed source.",
	}, []string{"source"})
	rowsRejected := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "feed_rows_rejected_total",
		Help: "Feed rows rejected during normalization, labeled by reason.",
	}, []string{"reason"})
	snapshotSize := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "sales_snapshot_size",
		Help: "Number of normalized sales in the current snapshot.",
	})
	reg.MustRegister(refreshDuration, refreshSuccess, refreshFailure, rowsIngested, rowsRejected, snapshotSize)
	return &FeedMetrics{
		refreshDuration: refreshDuration,
		refreshSuccess:  refreshSuccess,
		refreshFailure:  refreshFailure,
		rowsIngested:    rowsIngested,
		rowsRejected:    rowsRejected,
		snapshotSize:    snapshotSize,
	}
}

// ObserveRefresh records the duration of one refresh cycle.
func (f *FeedMetrics) ObserveRefresh(duration time.Duration) {
	if f == nil || f.refreshDuration == nil {
		return
	}
	f.refreshDuration.Observe(duration.Seconds())
}

// IncRefreshSuccess increments the refresh success counter.
func (f *FeedMetrics) IncRefreshSuccess() {
	if f == nil || f.refreshSuccess == nil {
		return
	}
	f.refreshSuccess.Inc()
}

// IncRefreshFailure increments the refresh failure counter.
func (f *FeedMetrics) IncRefreshFailure() {
	if f == nil || f.refreshFailure == nil {
		return
	}
	f.refreshFailure.Inc()
}

// AddRowsIngested records how many raw rows the named source produced.
func (f *FeedMetrics) AddRowsIngested(source string, count int) {
	if f == nil || f.rowsIngested == nil || count <= 0 {
		return
	}
	f.rowsIngested.WithLabelValues(normalizeLabel(source)).Add(float64(count))
}

// AddRowsRejected records rejected rows for a normalization reason.
func (f *FeedMetrics) AddRowsRejected(reason string, count int) {
	if f == nil || f.rowsRejected == nil || count <= 0 {
		return
	}
	f.rowsRejected.WithLabelValues(normalizeLabel(reason)).Add(float64(count))
}

// SetSnapshotSize records the size of the active snapshot.
func (f *FeedMetrics) SetSnapshotSize(size int) {
	if f == nil || f.snapshotSize == nil {
		return
	}
	f.snapshotSize.Set(float64(size))
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
