// Package metrics exposes Prometheus instrumentation for the relayer's
// components.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ingesterFetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ikarelayer",
		Subsystem: "ingester",
		Name:      "fetch_events_total",
		Help:      "Count of attempts to fetch seal events from the source ledger.",
	}, []string{"status"})

	ingesterFetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ikarelayer",
		Subsystem: "ingester",
		Name:      "fetch_events_duration_seconds",
		Help:      "Duration of fetching seal events.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	ingesterBatchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ikarelayer",
		Subsystem: "ingester",
		Name:      "process_batch_total",
		Help:      "Count of seal event batches dispatched to workers.",
	}, []string{"status"})

	ingesterBatchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ikarelayer",
		Subsystem: "ingester",
		Name:      "process_batch_duration_seconds",
		Help:      "Duration of processing one seal event batch.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	ingesterBatchSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "ikarelayer",
		Subsystem: "ingester",
		Name:      "process_batch_size",
		Help:      "Number of work items per dispatched batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
	})

	ingesterCursor = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "ikarelayer",
		Subsystem: "ingester",
		Name:      "cursor",
		Help:      "Last durable source ledger cursor.",
	})
)

// Ingester tracks metrics for the seal event ingestion loop.
type Ingester struct{}

// NewIngester constructs an Ingester metrics recorder.
func NewIngester() *Ingester {
	return &Ingester{}
}

// ObserveFetch records one event log poll.
func (m Ingester) ObserveFetch(err error, started time.Time) {
	status := statusLabel(err)
	ingesterFetchTotal.WithLabelValues(status).Inc()
	ingesterFetchDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
}

// ObserveBatch records processing of one dispatched batch.
func (m Ingester) ObserveBatch(err error, items int, started time.Time) {
	status := statusLabel(err)
	ingesterBatchTotal.WithLabelValues(status).Inc()
	ingesterBatchDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	ingesterBatchSize.Observe(float64(items))
}

// SetCursor publishes the last durable cursor position.
func (m Ingester) SetCursor(cursor uint64) {
	ingesterCursor.Set(float64(cursor))
}

func statusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
