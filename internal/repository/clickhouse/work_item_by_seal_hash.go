package clickhouse

import (
	"context"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/ikatensei/relayer-backend/internal/model"
)

// WorkItemBySealHash loads one work item for operator tooling and replay
// checks. The oldest row wins when duplicates were ingested.
func (r *Repository) WorkItemBySealHash(ctx context.Context, hash model.SealHash) (model.WorkItem, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("work_item_by_seal_hash", err, start)
	}()

	const query = `
SELECT
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
FROM work_items
WHERE seal_hash = ?
ORDER BY observed_at ASC
LIMIT 1`

	var item model.WorkItem
	rows, err := r.conn.Query(ctx, query, hash.String())
	if err != nil {
		return item, false, fmt.Errorf("query work item: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		return item, false, nil
	}

	var sourceChain, destinationChain uint16
	var contractHex, tokenHex, pubKeyHex, recipientHex string
	if err = rows.Scan(
		&sourceChain,
		&destinationChain,
		&contractHex,
		&tokenHex,
		&pubKeyHex,
		&item.Nonce,
		&recipientHex,
		&item.Sequence,
		&item.Metadata.Name,
		&item.Metadata.Description,
		&item.Metadata.URI,
		&item.Metadata.Collection,
		&item.SourceTxRef,
		&item.ObservedAt,
	); err != nil {
		return item, false, fmt.Errorf("scan work item: %w", err)
	}
	if err = rows.Err(); err != nil {
		return item, false, fmt.Errorf("iterate work item: %w", err)
	}

	item.SealHash = hash
	item.SourceChain = model.ChainID(sourceChain)
	item.DestinationChain = model.ChainID(destinationChain)
	if item.SourceContract, err = hex.DecodeString(contractHex); err != nil {
		return item, false, fmt.Errorf("decode stored contract: %w", err)
	}
	if item.TokenID, err = hex.DecodeString(tokenHex); err != nil {
		return item, false, fmt.Errorf("decode stored token id: %w", err)
	}
	if err = decodeHex32(pubKeyHex, &item.AttestationPubKey); err != nil {
		return item, false, fmt.Errorf("decode stored attestation pubkey: %w", err)
	}
	if err = decodeHex32(recipientHex, &item.Recipient); err != nil {
		return item, false, fmt.Errorf("decode stored recipient: %w", err)
	}
	return item, true, nil
}

func decodeHex32(s string, out *[32]byte) error {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return err
	}
	if len(raw) != 32 {
		return fmt.Errorf("expected 32 bytes, got %d", len(raw))
	}
	copy(out[:], raw)
	return nil
}
