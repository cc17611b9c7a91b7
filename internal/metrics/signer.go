package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	signerRoundTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ikarelayer",
		Subsystem: "signer",
		Name:      "round_total",
		Help:      "Count of threshold-signing rounds by round and outcome.",
	}, []string{"round", "status"})

	signerRoundDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ikarelayer",
		Subsystem: "signer",
		Name:      "round_duration_seconds",
		Help:      "Wall-clock duration of one signing round including polling.",
		Buckets:   prometheus.ExponentialBuckets(0.1, 2, 12),
	}, []string{"round", "status"})

	signerSessionRestarts = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "ikarelayer",
		Subsystem: "signer",
		Name:      "session_restarts_total",
		Help:      "Count of signing sessions restarted after a round timeout.",
	})
)

// Signer tracks metrics for the threshold-sign orchestrator.
type Signer struct{}

// NewSigner constructs a Signer metrics recorder.
func NewSigner() *Signer {
	return &Signer{}
}

// ObserveRound records one presign or sign round.
func (m Signer) ObserveRound(round string, err error, started time.Time) {
	status := statusLabel(err)
	signerRoundTotal.WithLabelValues(round, status).Inc()
	signerRoundDuration.WithLabelValues(round, status).Observe(time.Since(started).Seconds())
}

// ObserveSessionRestart records a full session restart after a timeout.
func (m Signer) ObserveSessionRestart() {
	signerSessionRestarts.Inc()
}
