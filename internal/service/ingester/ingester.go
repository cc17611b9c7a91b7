// Package ingester polls the source ledger's seal event log, turns each
// event into a durable work item, and dispatches the batch to the processor
// over a worker pool. The durable cursor only advances after the batch has
// been processed; the event log is forward-only, so a cursor that led
// processing would strand items interrupted mid-stage.
package ingester

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ikatensei/relayer-backend/internal/clock"
	"github.com/ikatensei/relayer-backend/internal/ledger/source"
	"github.com/ikatensei/relayer-backend/internal/model"
	"github.com/ikatensei/relayer-backend/internal/protocol"
	"github.com/ikatensei/relayer-backend/pkg/workerpool"
)

const (
	defaultFetchLimit   = 100
	defaultWorkerCount  = 8
	defaultPollInterval = 5 * time.Second
	defaultIdleInterval = 30 * time.Second
)

// Config tunes the ingestion loop.
type Config struct {
	// SourceChain is the chain the relayer ingests sealings from.
	SourceChain model.ChainID
	// EmitterAddress is the sealing contract's 32-byte emitter identity in
	// guardian envelopes.
	EmitterAddress [32]byte
	// FetchLimit caps events per poll.
	FetchLimit int
	// WorkerCount is the processing pool size.
	WorkerCount int
	// PollInterval between polls after a non-empty batch; IdleInterval after
	// an empty one.
	PollInterval time.Duration
	IdleInterval time.Duration
}

func (c *Config) applyDefaults() {
	if c.FetchLimit <= 0 {
		c.FetchLimit = defaultFetchLimit
	}
	if c.WorkerCount <= 0 {
		c.WorkerCount = defaultWorkerCount
	}
	if c.PollInterval <= 0 {
		c.PollInterval = defaultPollInterval
	}
	if c.IdleInterval <= 0 {
		c.IdleInterval = defaultIdleInterval
	}
}

// Ingester runs the poll-decode-dispatch loop.
type Ingester struct {
	source    SourceLedger
	guardian  EnvelopeFetcher
	metadata  MetadataResolver
	repo      Repository
	journal   Journal
	processor Processor
	metrics   Metrics
	logger    *zap.Logger
	cfg       Config

	sleep func(ctx context.Context, d time.Duration) error
}

// New constructs an Ingester.
func New(
	sourceLedger SourceLedger,
	guardian EnvelopeFetcher,
	metadata MetadataResolver,
	repo Repository,
	journal Journal,
	processor Processor,
	metrics Metrics,
	logger *zap.Logger,
	cfg Config,
) (*Ingester, error) {
	if sourceLedger == nil || guardian == nil || metadata == nil || repo == nil || journal == nil || processor == nil || metrics == nil {
		return nil, errors.New("all ingester dependencies are required")
	}
	if cfg.SourceChain == 0 {
		return nil, errors.New("source chain is required")
	}
	cfg.applyDefaults()
	return &Ingester{
		source:    sourceLedger,
		guardian:  guardian,
		metadata:  metadata,
		repo:      repo,
		journal:   journal,
		processor: processor,
		metrics:   metrics,
		logger:    logger.Named("ingester"),
		cfg:       cfg,
		sleep:     clock.SleepWithContext,
	}, nil
}

// Run polls until the context is canceled. Errors inside one batch are
// logged and retried on the next poll; only a context error ends the loop.
func (i *Ingester) Run(ctx context.Context) error {
	cursor, found, err := i.repo.LatestCursor(ctx)
	if err != nil {
		return fmt.Errorf("load ingest cursor: %w", err)
	}
	if found {
		i.logger.Info("resuming from durable cursor", zap.Uint64("cursor", cursor))
	} else {
		i.logger.Info("no durable cursor, starting from the log head")
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		next, processed, err := i.runOnce(ctx, cursor)
		switch {
		case err != nil && errors.Is(err, context.Canceled), err != nil && errors.Is(err, context.DeadlineExceeded):
			return err
		case err != nil:
			i.logger.Error("ingest batch failed, cursor not advanced",
				zap.Uint64("cursor", cursor), zap.Error(err))
		default:
			cursor = next
		}

		interval := i.cfg.PollInterval
		if err == nil && processed == 0 {
			interval = i.cfg.IdleInterval
		}
		if sleepErr := i.sleep(ctx, interval); sleepErr != nil {
			return sleepErr
		}
	}
}

// runOnce fetches one batch, persists its work items, dispatches processing,
// and advances the durable cursor once the whole batch has completed. It
// returns the new cursor and the batch size.
func (i *Ingester) runOnce(ctx context.Context, cursor uint64) (uint64, int, error) {
	fetchStarted := time.Now()
	events, next, err := i.source.SealEvents(ctx, cursor, i.cfg.FetchLimit)
	i.metrics.ObserveFetch(err, fetchStarted)
	if err != nil {
		return cursor, 0, fmt.Errorf("fetch seal events: %w", err)
	}
	if len(events) == 0 {
		return next, 0, nil
	}

	batchStarted := time.Now()
	items, err := i.buildWorkItems(ctx, events)
	if err != nil {
		i.metrics.ObserveBatch(err, 0, batchStarted)
		return cursor, 0, err
	}

	if len(items) > 0 {
		if err := i.repo.InsertWorkItems(ctx, items); err != nil {
			i.metrics.ObserveBatch(err, len(items), batchStarted)
			return cursor, 0, fmt.Errorf("persist work items: %w", err)
		}
		i.journalObserved(ctx, items)
	}

	err = workerpool.Process(ctx, i.cfg.WorkerCount, items, i.processor.Process,
		func(item model.WorkItem, err error) bool {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return true
			}
			// The processor has already journaled the failure; the rest of
			// the batch proceeds.
			i.logger.Error("work item processing failed",
				zap.String("sealHash", item.SealHash.String()),
				zap.Error(err))
			return false
		})
	if err != nil {
		i.metrics.ObserveBatch(err, len(items), batchStarted)
		return cursor, len(items), fmt.Errorf("process batch: %w", err)
	}

	// The durable cursor must trail completion. It is only written once every
	// item in the batch has finished its current stage; a crash before this
	// point re-reads the batch from the old cursor instead of stranding
	// in-flight items, and the coordinator drops the already-closed ones.
	if err := i.repo.InsertCursor(ctx, next); err != nil {
		i.metrics.ObserveBatch(err, len(items), batchStarted)
		return cursor, len(items), fmt.Errorf("persist cursor %d: %w", next, err)
	}
	i.metrics.SetCursor(next)
	i.metrics.ObserveBatch(nil, len(items), batchStarted)

	i.logger.Info("ingested batch",
		zap.Int("events", len(events)),
		zap.Int("workItems", len(items)),
		zap.Uint64("cursor", next))
	return next, len(items), nil
}

// journalObserved queues an observed row per persisted item. The rows go
// through the buffered writer; a queue failure skips that row only, logged
// and ignored, because an absent observed row is indistinguishable from a
// fresh item.
func (i *Ingester) journalObserved(ctx context.Context, items []model.WorkItem) {
	for _, item := range items {
		row := model.StatusRow{
			SealHash:   item.SealHash,
			Status:     model.StatusObserved,
			RecordedAt: item.ObservedAt,
		}
		if err := i.journal.Add(ctx, row); err != nil {
			i.logger.Warn("queue observed status row",
				zap.String("sealHash", item.SealHash.String()),
				zap.Error(err))
		}
	}
}

// buildWorkItems decodes and cross-checks each event. A malformed or
// mismatching payload fails that one seal and is dropped from the batch; an
// envelope fetch failure aborts the batch so it can be retried.
func (i *Ingester) buildWorkItems(ctx context.Context, events []source.SealEvent) ([]model.WorkItem, error) {
	items := make([]model.WorkItem, 0, len(events))
	for _, event := range events {
		item, err := i.buildWorkItem(ctx, event)
		if err != nil {
			if !errors.Is(err, protocol.ErrMalformedPayload) {
				return nil, err
			}
			i.failMalformed(ctx, event, err)
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func (i *Ingester) buildWorkItem(ctx context.Context, event source.SealEvent) (model.WorkItem, error) {
	var item model.WorkItem

	envelope, err := i.guardian.FetchEnvelope(ctx, i.cfg.SourceChain, i.cfg.EmitterAddress, event.Sequence)
	if err != nil {
		if errors.Is(err, protocol.ErrMalformedPayload) {
			return item, fmt.Errorf("envelope for sequence %d: %w", event.Sequence, err)
		}
		return item, fmt.Errorf("fetch envelope for sequence %d: %w", event.Sequence, err)
	}

	deposit, err := protocol.DecodeDepositNotification(envelope.Payload)
	if err != nil {
		return item, fmt.Errorf("deposit notification for sequence %d: %w", event.Sequence, err)
	}
	if err := i.crossCheck(event, envelope, deposit); err != nil {
		return item, err
	}

	hash, err := protocol.ComputeSealHash(protocol.SealMessage{
		SourceChain:       i.cfg.SourceChain,
		DestinationChain:  model.DestinationChain,
		SourceContract:    event.SourceContract,
		TokenID:           event.TokenID,
		AttestationPubKey: event.AttestationPubKey,
		Nonce:             event.Nonce,
	})
	if err != nil {
		return item, fmt.Errorf("%w: seal message for sequence %d: %v",
			protocol.ErrMalformedPayload, event.Sequence, err)
	}

	meta, err := i.metadata.Resolve(ctx, i.cfg.SourceChain, event.SourceContract, event.TokenID)
	if err != nil {
		// Metadata is advisory; the rebirth proceeds with the fallback.
		i.logger.Warn("metadata resolution failed, using fallback",
			zap.String("sealHash", hash.String()),
			zap.Error(err))
	}

	return model.WorkItem{
		SealHash:          hash,
		SourceChain:       i.cfg.SourceChain,
		DestinationChain:  model.DestinationChain,
		SourceContract:    event.SourceContract,
		TokenID:           event.TokenID,
		AttestationPubKey: event.AttestationPubKey,
		Nonce:             event.Nonce,
		Recipient:         event.Recipient,
		Sequence:          event.Sequence,
		Metadata:          meta,
		SourceTxRef:       event.TxRef,
		ObservedAt:        time.Now().UTC(),
	}, nil
}

// crossCheck compares the guardian-attested deposit against the event the
// relayer read from the ledger itself. Any disagreement means one of the two
// sources is lying or corrupt, and the seal must not be signed.
func (i *Ingester) crossCheck(event source.SealEvent, envelope *protocol.Envelope, deposit *protocol.DepositNotification) error {
	if envelope.EmitterChain != i.cfg.SourceChain {
		return fmt.Errorf("envelope emitter chain %d, expected %d: %w",
			envelope.EmitterChain, i.cfg.SourceChain, protocol.ErrMalformedPayload)
	}
	if deposit.SourceChain != i.cfg.SourceChain {
		return fmt.Errorf("deposit source chain %d, expected %d: %w",
			deposit.SourceChain, i.cfg.SourceChain, protocol.ErrMalformedPayload)
	}
	if deposit.SealNonce != event.Nonce {
		return fmt.Errorf("deposit nonce %d disagrees with event nonce %d: %w",
			deposit.SealNonce, event.Nonce, protocol.ErrMalformedPayload)
	}
	if !paddedEqual(deposit.SourceContract, event.SourceContract) {
		return fmt.Errorf("deposit contract disagrees with event contract: %w", protocol.ErrMalformedPayload)
	}
	if !paddedEqual(deposit.TokenID, event.TokenID) {
		return fmt.Errorf("deposit token id disagrees with event token id: %w", protocol.ErrMalformedPayload)
	}
	return nil
}

// paddedEqual compares a variable-length field against its fixed 32-byte
// zero-padded wire form.
func paddedEqual(fixed [32]byte, variable []byte) bool {
	if len(variable) > len(fixed) {
		return false
	}
	for idx, b := range variable {
		if fixed[idx] != b {
			return false
		}
	}
	for _, b := range fixed[len(variable):] {
		if b != 0 {
			return false
		}
	}
	return true
}

// failMalformed journals a terminal failure for the seal so the defect is
// visible and the event is never retried.
func (i *Ingester) failMalformed(ctx context.Context, event source.SealEvent, cause error) {
	i.logger.Error("rejecting malformed seal event",
		zap.Uint64("sequence", event.Sequence),
		zap.String("txRef", event.TxRef),
		zap.Error(cause))

	hash, err := protocol.ComputeSealHash(protocol.SealMessage{
		SourceChain:       i.cfg.SourceChain,
		DestinationChain:  model.DestinationChain,
		SourceContract:    event.SourceContract,
		TokenID:           event.TokenID,
		AttestationPubKey: event.AttestationPubKey,
		Nonce:             event.Nonce,
	})
	if err != nil {
		// Without a hash there is no journal key; the log line above is the
		// only trace.
		return
	}
	if err := i.repo.AppendStatus(ctx, hash, model.StatusFailed, cause.Error(), time.Now().UTC()); err != nil {
		i.logger.Error("journal malformed-seal failure",
			zap.String("sealHash", hash.String()),
			zap.Error(err))
	}
}
