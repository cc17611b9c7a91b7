// Package destination talks to the destination ledger, where a signature is
// verified into a record account and the reborn asset is minted against it.
//
// Both writes are idempotent through account existence: the record account
// is keyed by the seal hash, so a resubmitted verify collides with the
// existing account and a resubmitted mint is rejected by the record's minted
// flag. The relayer treats those collisions as success.
package destination

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/mr-tron/base58"

	"github.com/ikatensei/relayer-backend/internal/ledger/rpc"
	"github.com/ikatensei/relayer-backend/internal/model"
	"github.com/ikatensei/relayer-backend/internal/relay"
)

// Well-known destination program error codes.
const (
	codeRecordExists   = -32040
	codeAlreadyMinted  = -32041
	codeReplayConsumed = -32042
)

// Record is the on-chain verification record for one seal hash.
type Record struct {
	SealHash   model.SealHash
	Recipient  [32]byte
	Minted     bool
	MintRef    string
	VerifiedAt int64
}

// Client is the destination ledger client.
type Client struct {
	caller   *rpc.Caller
	identity string
}

// NewClient constructs a destination client. identity is the relaying
// account that pays for and submits transactions.
func NewClient(caller *rpc.Caller, identity string) (*Client, error) {
	if caller == nil {
		return nil, fmt.Errorf("rpc caller is required")
	}
	if identity == "" {
		return nil, fmt.Errorf("relayer identity is required")
	}
	return &Client{caller: caller, identity: identity}, nil
}

type accountInfoResult struct {
	Exists     bool   `json:"exists"`
	Minted     bool   `json:"minted"`
	MintRef    string `json:"mint_ref"`
	Recipient  string `json:"recipient"`
	VerifiedAt int64  `json:"verified_at"`
}

// RecordExists queries the record account derived from the seal hash. A nil
// record means no verification has landed yet. This is the primary
// idempotency guard; callers run it before every signature submission.
func (c *Client) RecordExists(ctx context.Context, hash model.SealHash) (*Record, error) {
	var result accountInfoResult
	params := map[string]any{"address": RecordAddress(hash)}
	if err := c.caller.Call(ctx, "account_info", params, &result); err != nil {
		return nil, &relay.LedgerCallError{Ledger: "destination", Op: "account_info", Err: err}
	}
	if !result.Exists {
		return nil, nil
	}

	record := &Record{
		SealHash:   hash,
		Minted:     result.Minted,
		MintRef:    result.MintRef,
		VerifiedAt: result.VerifiedAt,
	}
	if result.Recipient != "" {
		raw, err := base58.Decode(result.Recipient)
		if err != nil || len(raw) != 32 {
			return nil, fmt.Errorf("record %s has malformed recipient %q", hash, result.Recipient)
		}
		copy(record.Recipient[:], raw)
	}
	return record, nil
}

type txResult struct {
	TxRef string `json:"tx_ref"`
}

// VerifySeal submits one transaction bundling the raw-signature
// verification over (attestationPubKey, sealHash, signature) and the record
// creation. An existing record is success, not an error.
func (c *Client) VerifySeal(ctx context.Context, item model.WorkItem, signature []byte) (string, error) {
	var result txResult
	params := map[string]any{
		"seal_hash":          item.SealHash.String(),
		"source_chain":       uint16(item.SourceChain),
		"source_contract":    hex.EncodeToString(item.SourceContract),
		"token_id":           hex.EncodeToString(item.TokenID),
		"attestation_pubkey": hex.EncodeToString(item.AttestationPubKey[:]),
		"signature":          hex.EncodeToString(signature),
		"recipient":          base58.Encode(item.Recipient[:]),
		"payer":              c.identity,
	}
	err := c.caller.Call(ctx, "verify_seal", params, &result)
	if err != nil {
		var rpcErr *rpc.Error
		if errors.As(err, &rpcErr) {
			switch rpcErr.Code {
			case codeRecordExists:
				return "", fmt.Errorf("seal %s record exists: %w", item.SealHash, relay.ErrAlreadyProcessed)
			case codeReplayConsumed:
				return "", fmt.Errorf("seal %s signature consumed: %w", item.SealHash, relay.ErrReplayRejected)
			}
		}
		return "", &relay.LedgerCallError{Ledger: "destination", Op: "verify_seal", Err: err}
	}
	return result.TxRef, nil
}

type mintResult struct {
	MintRef string `json:"mint_ref"`
	TxRef   string `json:"tx_ref"`
}

// MintReborn mints the destination-native asset against the verification
// record; the on-chain program sets the owner to the record's recipient, so
// no follow-up transfer is needed when the recipient differs from the
// relayer. An already minted record is success.
func (c *Client) MintReborn(ctx context.Context, item model.WorkItem) (string, error) {
	name := truncateAtRune(item.Metadata.Name, maxNameLength)
	uri := truncateAtRune(item.Metadata.URI, maxURILength)

	var result mintResult
	params := map[string]any{
		"seal_hash":      item.SealHash.String(),
		"mint_authority": MintAuthorityAddress(item.SealHash),
		"name":           name,
		"uri":            uri,
		"payer":          c.identity,
	}
	err := c.caller.Call(ctx, "mint_reborn", params, &result)
	if err != nil {
		var rpcErr *rpc.Error
		if errors.As(err, &rpcErr) && rpcErr.Code == codeAlreadyMinted {
			return "", fmt.Errorf("seal %s already minted: %w", item.SealHash, relay.ErrAlreadyProcessed)
		}
		return "", &relay.LedgerCallError{Ledger: "destination", Op: "mint_reborn", Err: err}
	}
	return result.MintRef, nil
}

// Name and URI limits enforced by the destination program.
const (
	maxNameLength = 32
	maxURILength  = 200
)

// truncateAtRune caps s at limit bytes without splitting a multibyte rune.
func truncateAtRune(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	return s[:limit]
}
