// Package processor drives one work item through its remaining lifecycle
// stages: sign and verify, mint, close. Every stage consults durable state
// before submitting, so a crash at any point resumes without duplicating
// ledger effects.
package processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ikatensei/relayer-backend/internal/model"
	"github.com/ikatensei/relayer-backend/internal/relay"
)

// Processor executes work items stage by stage.
type Processor struct {
	coordinator Coordinator
	signer      SignatureProvider
	source      SourceLedger
	destination DestinationLedger
	metrics     Metrics
	logger      *zap.Logger
}

// New constructs a Processor.
func New(
	coordinator Coordinator,
	signer SignatureProvider,
	source SourceLedger,
	destination DestinationLedger,
	metrics Metrics,
	logger *zap.Logger,
) (*Processor, error) {
	if coordinator == nil || signer == nil || source == nil || destination == nil || metrics == nil {
		return nil, errors.New("all processor dependencies are required")
	}
	return &Processor{
		coordinator: coordinator,
		signer:      signer,
		source:      source,
		destination: destination,
		metrics:     metrics,
		logger:      logger.Named("processor"),
	}, nil
}

// Process drives item from its durable resume point to closure. An item
// that is already closed, failed, or being worked elsewhere is dropped
// silently. Fatal errors move the item to the failed status before
// returning.
func (p *Processor) Process(ctx context.Context, item model.WorkItem) error {
	lease, err := p.coordinator.Begin(ctx, item.SealHash)
	if err != nil {
		if errors.Is(err, relay.ErrAlreadyProcessed) {
			p.logger.Debug("work item already processed",
				zap.String("sealHash", item.SealHash.String()))
			return nil
		}
		return fmt.Errorf("begin lease for %s: %w", item.SealHash, err)
	}
	defer lease.Release()

	err = p.drive(ctx, lease, item)
	if err == nil {
		return nil
	}
	if !relay.Fatal(err) {
		// Shutdown mid-stage: the item resumes from its journal next run.
		return err
	}

	p.metrics.ObserveItemFailed()
	p.logger.Error("work item failed",
		zap.String("sealHash", item.SealHash.String()),
		zap.String("status", string(lease.Status())),
		zap.Error(err))
	if failErr := lease.Fail(ctx, err.Error()); failErr != nil {
		return errors.Join(err, failErr)
	}
	return err
}

func (p *Processor) drive(ctx context.Context, lease Lease, item model.WorkItem) error {
	for lease.Status() != model.StatusClosed {
		var err error
		switch lease.Status() {
		case model.StatusObserved:
			err = lease.Advance(ctx, model.StatusSigning)
		case model.StatusSigning:
			err = p.signAndVerify(ctx, lease, item)
		case model.StatusVerified:
			err = p.mint(ctx, lease, item)
		case model.StatusMinted:
			err = p.close(ctx, lease, item)
		default:
			return fmt.Errorf("work item %s in unexpected status %s", item.SealHash, lease.Status())
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// signAndVerify obtains the threshold signature and lands the verification
// record. The record existence check runs before the signing session: a
// crash after a landed verify must not spend another session.
func (p *Processor) signAndVerify(ctx context.Context, lease Lease, item model.WorkItem) (err error) {
	started := time.Now()
	defer func() {
		p.metrics.ObserveStage("verify", err, started)
	}()

	record, err := p.destination.RecordExists(ctx, item.SealHash)
	if err != nil {
		return err
	}
	if record != nil {
		p.metrics.ObserveShortCircuit("verify")
		return lease.Advance(ctx, model.StatusVerified)
	}

	signature, err := p.signer.ObtainSignature(ctx, item.SealHash)
	if err != nil {
		return fmt.Errorf("obtain signature for %s: %w", item.SealHash, err)
	}

	if _, err = p.destination.VerifySeal(ctx, item, signature); err != nil {
		if !errors.Is(err, relay.ErrAlreadyProcessed) {
			return err
		}
		// Lost the race to another submission of the same seal hash.
		p.metrics.ObserveShortCircuit("verify")
		err = nil
	}
	return lease.Advance(ctx, model.StatusVerified)
}

func (p *Processor) mint(ctx context.Context, lease Lease, item model.WorkItem) (err error) {
	started := time.Now()
	defer func() {
		p.metrics.ObserveStage("mint", err, started)
	}()

	record, err := p.destination.RecordExists(ctx, item.SealHash)
	if err != nil {
		return err
	}
	if record == nil {
		return fmt.Errorf("work item %s is verified but has no destination record", item.SealHash)
	}
	if record.Minted {
		p.metrics.ObserveShortCircuit("mint")
		return lease.Advance(ctx, model.StatusMinted)
	}

	if _, err = p.destination.MintReborn(ctx, item); err != nil {
		if !errors.Is(err, relay.ErrAlreadyProcessed) {
			return err
		}
		p.metrics.ObserveShortCircuit("mint")
		err = nil
	}
	return lease.Advance(ctx, model.StatusMinted)
}

// close publishes the cycle's closure to the source ledger, carrying the
// mint reference read back from the destination record.
func (p *Processor) close(ctx context.Context, lease Lease, item model.WorkItem) (err error) {
	started := time.Now()
	defer func() {
		p.metrics.ObserveStage("close", err, started)
	}()

	record, err := p.destination.RecordExists(ctx, item.SealHash)
	if err != nil {
		return err
	}
	if record == nil || !record.Minted {
		return fmt.Errorf("work item %s is minted but destination record disagrees", item.SealHash)
	}

	if _, err = p.source.RecordClosure(ctx, item.SealHash, record.MintRef); err != nil {
		if !errors.Is(err, relay.ErrAlreadyProcessed) {
			return err
		}
		p.metrics.ObserveShortCircuit("close")
		err = nil
	}
	if err = lease.Advance(ctx, model.StatusClosed); err != nil {
		return err
	}
	p.metrics.ObserveItemClosed()
	return nil
}
