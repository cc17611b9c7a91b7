package ingester

import (
	"context"
	"time"

	"github.com/ikatensei/relayer-backend/internal/ledger/source"
	"github.com/ikatensei/relayer-backend/internal/model"
	"github.com/ikatensei/relayer-backend/internal/protocol"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// SourceLedger is the seal event log read surface.
	SourceLedger interface {
		SealEvents(ctx context.Context, cursor uint64, limit int) ([]source.SealEvent, uint64, error)
	}

	// EnvelopeFetcher retrieves the guardian-signed envelope for one emitted
	// message.
	EnvelopeFetcher interface {
		FetchEnvelope(ctx context.Context, emitterChain model.ChainID, emitterAddress [32]byte, sequence uint64) (*protocol.Envelope, error)
	}

	// MetadataResolver looks up display metadata for the sealed token.
	MetadataResolver interface {
		Resolve(ctx context.Context, chain model.ChainID, contract, tokenID []byte) (model.Metadata, error)
	}

	// Repository persists work items, status rows, and the ingest cursor.
	Repository interface {
		LatestCursor(ctx context.Context) (uint64, bool, error)
		InsertCursor(ctx context.Context, cursor uint64) error
		InsertWorkItems(ctx context.Context, items []model.WorkItem) error
		AppendStatus(ctx context.Context, hash model.SealHash, status model.Status, reason string, at time.Time) error
	}

	// Journal is the buffered status-journal writer. Rows queued here are
	// advisory: the coordinator treats an item with no journal entry as
	// freshly observed, so a row lost to a crash changes nothing.
	Journal interface {
		Add(ctx context.Context, row model.StatusRow) error
	}

	// Processor drives one work item through its lifecycle.
	Processor interface {
		Process(ctx context.Context, item model.WorkItem) error
	}

	// Metrics records poll and batch outcomes plus the cursor position.
	Metrics interface {
		ObserveFetch(err error, started time.Time)
		ObserveBatch(err error, items int, started time.Time)
		SetCursor(cursor uint64)
	}
)
