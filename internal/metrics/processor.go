package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	processorStageTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ikarelayer",
		Subsystem: "processor",
		Name:      "stage_total",
		Help:      "Count of work item stage executions by stage and outcome.",
	}, []string{"stage", "status"})

	processorStageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ikarelayer",
		Subsystem: "processor",
		Name:      "stage_duration_seconds",
		Help:      "Duration of work item stage executions.",
		Buckets:   prometheus.ExponentialBuckets(0.05, 2, 14),
	}, []string{"stage", "status"})

	processorShortCircuits = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ikarelayer",
		Subsystem: "processor",
		Name:      "short_circuit_total",
		Help:      "Count of idempotency short-circuits by stage.",
	}, []string{"stage"})

	processorItemsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "ikarelayer",
		Subsystem: "processor",
		Name:      "items_failed_total",
		Help:      "Count of work items moved to the failed status.",
	})

	processorItemsClosed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "ikarelayer",
		Subsystem: "processor",
		Name:      "items_closed_total",
		Help:      "Count of work items driven to closure.",
	})
)

// Processor tracks metrics for the per-item stage driver.
type Processor struct{}

// NewProcessor constructs a Processor metrics recorder.
func NewProcessor() *Processor {
	return &Processor{}
}

// ObserveStage records a stage execution.
func (m Processor) ObserveStage(stage string, err error, started time.Time) {
	status := statusLabel(err)
	processorStageTotal.WithLabelValues(stage, status).Inc()
	processorStageDuration.WithLabelValues(stage, status).Observe(time.Since(started).Seconds())
}

// ObserveShortCircuit records an idempotency short-circuit at a stage.
func (m Processor) ObserveShortCircuit(stage string) {
	processorShortCircuits.WithLabelValues(stage).Inc()
}

// ObserveItemFailed records a work item entering the failed status.
func (m Processor) ObserveItemFailed() {
	processorItemsFailed.Inc()
}

// ObserveItemClosed records a fully completed cycle.
func (m Processor) ObserveItemClosed() {
	processorItemsClosed.Inc()
}
