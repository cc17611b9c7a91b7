// Package source talks to the source ledger: it reads the seal event log
// and writes the closure record at the end of a cycle.
//
// The closure write is submitted under the relayer's own identity; the
// on-chain contract is expected to allow-list that identity. Without it any
// caller could race the legitimate closer with a false destination
// reference.
package source

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ikatensei/relayer-backend/internal/ledger/rpc"
	"github.com/ikatensei/relayer-backend/internal/model"
	"github.com/ikatensei/relayer-backend/internal/relay"
	"github.com/ikatensei/relayer-backend/pkg/safe"
)

// SealEvent is one sealing observed in the source ledger's event log.
type SealEvent struct {
	SourceContract    []byte
	TokenID           []byte
	AttestationPubKey [32]byte
	Nonce             uint64
	Recipient         [32]byte
	Sequence          uint64
	TxRef             string
	Cursor            uint64
}

// Client is the source ledger client.
type Client struct {
	caller   *rpc.Caller
	identity string
}

// NewClient constructs a source ledger client. identity is the relaying
// account the closure write is signed with.
func NewClient(caller *rpc.Caller, identity string) (*Client, error) {
	if caller == nil {
		return nil, fmt.Errorf("rpc caller is required")
	}
	if identity == "" {
		return nil, fmt.Errorf("relayer identity is required")
	}
	return &Client{caller: caller, identity: identity}, nil
}

type sealEventWire struct {
	Contract          string      `json:"contract"`
	TokenID           string      `json:"token_id"`
	AttestationPubKey string      `json:"attestation_pubkey"`
	Nonce             json.Number `json:"nonce"`
	Recipient         string      `json:"recipient"`
	Sequence          json.Number `json:"sequence"`
	TxRef             string      `json:"tx_ref"`
	Cursor            json.Number `json:"cursor"`
}

type sealEventsResult struct {
	Events     []sealEventWire `json:"events"`
	NextCursor json.Number     `json:"next_cursor"`
}

// SealEvents returns the sealing events after cursor, oldest first, plus the
// next cursor position. The cursor only moves forward.
func (c *Client) SealEvents(ctx context.Context, cursor uint64, limit int) ([]SealEvent, uint64, error) {
	var result sealEventsResult
	params := map[string]any{
		"after_cursor": cursor,
		"limit":        limit,
	}
	if err := c.caller.Call(ctx, "seal_events", params, &result); err != nil {
		return nil, 0, &relay.LedgerCallError{Ledger: "source", Op: "seal_events", Err: err}
	}

	events := make([]SealEvent, 0, len(result.Events))
	for _, wire := range result.Events {
		event, err := decodeSealEvent(wire)
		if err != nil {
			return nil, 0, fmt.Errorf("decode seal event (tx %s): %w", wire.TxRef, err)
		}
		events = append(events, event)
	}

	next, err := safe.Uint64FromJSON(result.NextCursor)
	if err != nil {
		return nil, 0, fmt.Errorf("decode next cursor: %w", err)
	}
	if next < cursor {
		return nil, 0, fmt.Errorf("ledger returned regressing cursor %d (have %d)", next, cursor)
	}
	return events, next, nil
}

func decodeSealEvent(wire sealEventWire) (SealEvent, error) {
	var event SealEvent

	contract, err := hex.DecodeString(wire.Contract)
	if err != nil {
		return event, fmt.Errorf("contract: %w", err)
	}
	tokenID, err := hex.DecodeString(wire.TokenID)
	if err != nil {
		return event, fmt.Errorf("token id: %w", err)
	}
	pubKey, err := decode32(wire.AttestationPubKey)
	if err != nil {
		return event, fmt.Errorf("attestation pubkey: %w", err)
	}
	recipient, err := decode32(wire.Recipient)
	if err != nil {
		return event, fmt.Errorf("recipient: %w", err)
	}
	nonce, err := safe.Uint64FromJSON(wire.Nonce)
	if err != nil {
		return event, fmt.Errorf("nonce: %w", err)
	}
	sequence, err := safe.Uint64FromJSON(wire.Sequence)
	if err != nil {
		return event, fmt.Errorf("sequence: %w", err)
	}
	eventCursor, err := safe.Uint64FromJSON(wire.Cursor)
	if err != nil {
		return event, fmt.Errorf("cursor: %w", err)
	}

	event.SourceContract = contract
	event.TokenID = tokenID
	event.AttestationPubKey = pubKey
	event.Recipient = recipient
	event.Nonce = nonce
	event.Sequence = sequence
	event.TxRef = wire.TxRef
	event.Cursor = eventCursor
	return event, nil
}

func decode32(s string) ([32]byte, error) {
	var out [32]byte
	raw, err := hex.DecodeString(s)
	if err != nil {
		return out, err
	}
	if len(raw) != 32 {
		return out, fmt.Errorf("expected 32 bytes, got %d", len(raw))
	}
	copy(out[:], raw)
	return out, nil
}

type recordClosureResult struct {
	TxRef string `json:"tx_ref"`
}

// RecordClosure writes the cycle's closure to the source ledger, carrying
// the destination mint reference as evidence. Re-closing an already closed
// seal is reported as relay.ErrAlreadyProcessed.
func (c *Client) RecordClosure(ctx context.Context, hash model.SealHash, destRef string) (string, error) {
	var result recordClosureResult
	params := map[string]any{
		"seal_hash":             hash.String(),
		"destination_reference": destRef,
		"closer":                c.identity,
	}
	err := c.caller.Call(ctx, "record_closure", params, &result)
	if err != nil {
		var rpcErr *rpc.Error
		if errors.As(err, &rpcErr) && rpcErr.Code == codeAlreadyClosed {
			return "", fmt.Errorf("seal %s: %w", hash, relay.ErrAlreadyProcessed)
		}
		return "", &relay.LedgerCallError{Ledger: "source", Op: "record_closure", Err: err}
	}
	return result.TxRef, nil
}

// codeAlreadyClosed is the source contract's error for a seal whose closure
// record already exists.
const codeAlreadyClosed = -32021
