package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ledgerOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ikarelayer",
		Subsystem: "ledger_client",
		Name:      "operations_total",
		Help:      "Count of ledger RPC operations.",
	}, []string{"ledger", "operation", "status"})

	ledgerOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ikarelayer",
		Subsystem: "ledger_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of ledger RPC operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"ledger", "operation", "status"})
)

// LedgerClient tracks metrics for RPC calls against one ledger.
type LedgerClient struct {
	ledger string
}

// NewLedgerClient constructs a LedgerClient recorder for the named ledger.
func NewLedgerClient(ledger string) *LedgerClient {
	if ledger == "" {
		ledger = "unknown"
	}
	return &LedgerClient{ledger: ledger}
}

// Observe records an operation outcome and duration.
func (m LedgerClient) Observe(operation string, err error, started time.Time) {
	status := statusLabel(err)
	ledgerOperationsTotal.WithLabelValues(m.ledger, operation, status).Inc()
	ledgerOperationDuration.WithLabelValues(m.ledger, operation, status).
		Observe(time.Since(started).Seconds())
}
