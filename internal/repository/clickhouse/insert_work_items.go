package clickhouse

import (
	"context"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/ikatensei/relayer-backend/internal/model"
)

// InsertWorkItems appends a batch of observed work items. Re-inserting the
// same seal hash is harmless; readers always key by seal_hash and take the
// oldest row.
func (r *Repository) InsertWorkItems(ctx context.Context, items []model.WorkItem) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_work_items", err, start)
	}()

	if len(items) == 0 {
		return nil
	}

	const query = `
INSERT INTO work_items (
	seal_hash,
	source_chain,
	destination_chain,
	source_contract,
	token_id,
	attestation_pubkey,
	nonce,
	recipient,
	sequence,
	metadata_name,
	metadata_description,
	metadata_uri,
	metadata_collection,
	source_tx_ref,
	observed_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare work items batch: %w", err)
	}

	for _, item := range items {
		if err = batch.Append(
			item.SealHash.String(),
			uint16(item.SourceChain),
			uint16(item.DestinationChain),
			hex.EncodeToString(item.SourceContract),
			hex.EncodeToString(item.TokenID),
			hex.EncodeToString(item.AttestationPubKey[:]),
			item.Nonce,
			hex.EncodeToString(item.Recipient[:]),
			item.Sequence,
			item.Metadata.Name,
			item.Metadata.Description,
			item.Metadata.URI,
			item.Metadata.Collection,
			item.SourceTxRef,
			item.ObservedAt,
		); err != nil {
			return fmt.Errorf("append work item: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert work items: %w", err)
	}
	return nil
}
