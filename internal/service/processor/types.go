package processor

import (
	"context"
	"time"

	"github.com/ikatensei/relayer-backend/internal/ledger/destination"
	"github.com/ikatensei/relayer-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Lease is exclusive ownership of one seal hash with its durable status.
	Lease interface {
		Status() model.Status
		Advance(ctx context.Context, next model.Status) error
		Fail(ctx context.Context, reason string) error
		Release()
	}

	// Coordinator hands out leases and answers replay checks.
	Coordinator interface {
		Begin(ctx context.Context, hash model.SealHash) (Lease, error)
	}

	// SignatureProvider produces the threshold signature over a seal hash.
	SignatureProvider interface {
		ObtainSignature(ctx context.Context, hash model.SealHash) ([]byte, error)
	}

	// DestinationLedger is the finalization surface: record lookup,
	// verification, and minting.
	DestinationLedger interface {
		RecordExists(ctx context.Context, hash model.SealHash) (*destination.Record, error)
		VerifySeal(ctx context.Context, item model.WorkItem, signature []byte) (string, error)
		MintReborn(ctx context.Context, item model.WorkItem) (string, error)
	}

	// SourceLedger closes the cycle back on the originating chain.
	SourceLedger interface {
		RecordClosure(ctx context.Context, hash model.SealHash, destRef string) (string, error)
	}

	// Metrics records stage outcomes, short-circuits, and terminal counts.
	Metrics interface {
		ObserveStage(stage string, err error, started time.Time)
		ObserveShortCircuit(stage string)
		ObserveItemFailed()
		ObserveItemClosed()
	}
)
