// Package coordinator serializes all processing for one seal hash and
// answers "where should this work item resume from" using the durable status
// journal and on-chain account existence as ground truth.
package coordinator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ikatensei/relayer-backend/internal/model"
	"github.com/ikatensei/relayer-backend/internal/relay"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// StatusStore is the durable status journal.
	StatusStore interface {
		LatestStatus(ctx context.Context, hash model.SealHash) (model.Status, string, error)
		AppendStatus(ctx context.Context, hash model.SealHash, status model.Status, reason string, at time.Time) error
	}

	// RecordChecker queries the destination ledger for the reincarnation
	// record keyed by the seal hash. On-chain existence overrides whatever
	// the local journal believes.
	RecordChecker interface {
		RecordExists(ctx context.Context, hash model.SealHash) (*DestinationRecord, error)
	}
)

// DestinationRecord is the coordinator's view of the on-chain record.
type DestinationRecord struct {
	Minted  bool
	MintRef string
}

// Coordinator owns the per-hash lock arena and replay state.
type Coordinator struct {
	locks   *KeyedLocks
	store   StatusStore
	checker RecordChecker
	logger  *zap.Logger
}

// New constructs a Coordinator.
func New(store StatusStore, checker RecordChecker, logger *zap.Logger) (*Coordinator, error) {
	if store == nil {
		return nil, errors.New("status store is required")
	}
	if checker == nil {
		return nil, errors.New("record checker is required")
	}
	return &Coordinator{
		locks:   NewKeyedLocks(),
		store:   store,
		checker: checker,
		logger:  logger.Named("coordinator"),
	}, nil
}

// Lease is exclusive ownership of one seal hash for the duration of its
// processing. Release must always be called; it is safe to call more than
// once.
type Lease struct {
	coord   *Coordinator
	hash    model.SealHash
	status  model.Status
	release func()
}

// Begin acquires the per-hash lock and reconciles local and on-chain state.
// It returns relay.ErrAlreadyProcessed when the cycle is already closed, in
// which case no lease is held.
func (c *Coordinator) Begin(ctx context.Context, hash model.SealHash) (*Lease, error) {
	release := c.locks.Acquire(hash)

	status, err := c.resumePoint(ctx, hash)
	if err != nil {
		release()
		return nil, err
	}
	if status == model.StatusClosed {
		release()
		return nil, fmt.Errorf("seal %s: %w", hash, relay.ErrAlreadyProcessed)
	}
	if status == model.StatusFailed {
		// A failed item is terminal until an operator intervenes; treat a
		// re-observation like a closed one.
		release()
		return nil, fmt.Errorf("seal %s previously failed: %w", hash, relay.ErrAlreadyProcessed)
	}

	return &Lease{coord: c, hash: hash, status: status, release: release}, nil
}

// resumePoint reconciles the journal with the destination ledger. The ledger
// wins: a record that exists on-chain proves verification happened even if
// the journal write was lost in a crash.
func (c *Coordinator) resumePoint(ctx context.Context, hash model.SealHash) (model.Status, error) {
	status, _, err := c.store.LatestStatus(ctx, hash)
	if err != nil {
		return "", fmt.Errorf("load status for %s: %w", hash, err)
	}

	record, err := c.checker.RecordExists(ctx, hash)
	if err != nil {
		return "", fmt.Errorf("check destination record for %s: %w", hash, err)
	}
	if record != nil {
		onChain := model.StatusVerified
		if record.Minted {
			onChain = model.StatusMinted
		}
		if onChain.Rank() > status.Rank() {
			c.logger.Info("journal behind destination ledger, resuming from on-chain state",
				zap.String("sealHash", hash.String()),
				zap.String("journal", string(status)),
				zap.String("onChain", string(onChain)))
			status = onChain
		}
	}

	if status == "" {
		status = model.StatusObserved
	}
	return status, nil
}

// Status is the lease's current resume point.
func (l *Lease) Status() model.Status {
	return l.status
}

// SealHash identifies the leased unit of work.
func (l *Lease) SealHash() model.SealHash {
	return l.hash
}

// Advance persists a monotonic status transition.
func (l *Lease) Advance(ctx context.Context, next model.Status) error {
	if !l.status.CanTransitionTo(next) {
		return fmt.Errorf("illegal transition %s -> %s for seal %s", l.status, next, l.hash)
	}
	if err := l.coord.store.AppendStatus(ctx, l.hash, next, "", time.Now().UTC()); err != nil {
		return fmt.Errorf("persist status %s for %s: %w", next, l.hash, err)
	}
	l.status = next
	return nil
}

// Fail moves the item to the terminal failed status with a reason. Fatal
// outcomes are never silent: the caller logs, this records.
func (l *Lease) Fail(ctx context.Context, reason string) error {
	if l.status.Terminal() {
		return nil
	}
	if err := l.coord.store.AppendStatus(ctx, l.hash, model.StatusFailed, reason, time.Now().UTC()); err != nil {
		return fmt.Errorf("persist failure for %s: %w", l.hash, err)
	}
	l.status = model.StatusFailed
	return nil
}

// Release drops the per-hash lock. Idempotent.
func (l *Lease) Release() {
	l.release()
}
