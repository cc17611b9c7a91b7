// Package relay defines the error taxonomy shared by the relayer's stages.
package relay

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrAlreadyProcessed signals an idempotency short-circuit: the durable
	// state for this seal hash already covers the attempted step. Not a
	// failure.
	ErrAlreadyProcessed = errors.New("already processed")

	// ErrReplayRejected signals the ledger has already consumed this
	// identifier under different content. Fatal.
	ErrReplayRejected = errors.New("replay rejected")

	// ErrPresignTimeout and ErrSignTimeout mark the two signing rounds'
	// deadline expiries. Retryable once by restarting the session.
	ErrPresignTimeout = errors.New("presign timeout")
	ErrSignTimeout    = errors.New("sign timeout")
)

// LedgerCallError is a ledger round-trip that kept failing past the retry
// ceiling. Fatal for the WorkItem.
type LedgerCallError struct {
	Ledger string
	Op     string
	Err    error
}

func (e *LedgerCallError) Error() string {
	return fmt.Sprintf("%s ledger call %s failed: %v", e.Ledger, e.Op, e.Err)
}

func (e *LedgerCallError) Unwrap() error {
	return e.Err
}

// Fatal reports whether err must move the WorkItem to failed. Idempotency
// short-circuits are not failures, and a shutdown mid-stage leaves the item
// resumable rather than failed.
func Fatal(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrAlreadyProcessed) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return true
}
