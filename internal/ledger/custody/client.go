// Package custody talks to the threshold-signing network. Producing one
// signature takes two rounds: a presign session, then a sign session bound
// to the ready presign. Both submits are idempotent at the ledger, so a
// crash between submission and local state update is safe to replay.
package custody

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/ikatensei/relayer-backend/internal/ledger/rpc"
	"github.com/ikatensei/relayer-backend/internal/relay"
)

// SessionState is the polled status of a signing-network session.
type SessionState string

const (
	SessionPending   SessionState = "pending"
	SessionCompleted SessionState = "completed"
	SessionFailed    SessionState = "failed"
)

// Client is the custody ledger client.
type Client struct {
	caller *rpc.Caller
	keyID  string
}

// NewClient constructs a custody client for the distributed key keyID.
func NewClient(caller *rpc.Caller, keyID string) (*Client, error) {
	if caller == nil {
		return nil, fmt.Errorf("rpc caller is required")
	}
	if keyID == "" {
		return nil, fmt.Errorf("custody key id is required")
	}
	return &Client{caller: caller, keyID: keyID}, nil
}

type sessionResult struct {
	Handle string `json:"handle"`
}

// RequestPresign submits a presign request and returns the session handle.
func (c *Client) RequestPresign(ctx context.Context) (string, error) {
	var result sessionResult
	params := map[string]any{"key_id": c.keyID}
	if err := c.caller.Call(ctx, "presign_request", params, &result); err != nil {
		return "", &relay.LedgerCallError{Ledger: "custody", Op: "presign_request", Err: err}
	}
	if result.Handle == "" {
		return "", fmt.Errorf("custody ledger returned empty presign handle")
	}
	return result.Handle, nil
}

type sessionStatusResult struct {
	State SessionState `json:"state"`
}

// SessionStatus polls one session's state.
func (c *Client) SessionStatus(ctx context.Context, handle string) (SessionState, error) {
	var result sessionStatusResult
	params := map[string]any{"handle": handle}
	if err := c.caller.Call(ctx, "session_status", params, &result); err != nil {
		return "", &relay.LedgerCallError{Ledger: "custody", Op: "session_status", Err: err}
	}
	switch result.State {
	case SessionPending, SessionCompleted, SessionFailed:
		return result.State, nil
	default:
		return "", fmt.Errorf("unknown session state %q for handle %s", result.State, handle)
	}
}

// RequestSign approves message for signing and submits the sign request
// referencing a ready presign. message is the exact bytes the network signs;
// the relayer passes the 32 seal-hash bytes and nothing else.
func (c *Client) RequestSign(ctx context.Context, presignHandle string, message []byte) (string, error) {
	if len(message) != 32 {
		return "", fmt.Errorf("sign message must be 32 bytes, got %d", len(message))
	}
	var result sessionResult
	params := map[string]any{
		"key_id":         c.keyID,
		"presign_handle": presignHandle,
		"message":        hex.EncodeToString(message),
	}
	if err := c.caller.Call(ctx, "sign_request", params, &result); err != nil {
		return "", &relay.LedgerCallError{Ledger: "custody", Op: "sign_request", Err: err}
	}
	if result.Handle == "" {
		return "", fmt.Errorf("custody ledger returned empty sign handle")
	}
	return result.Handle, nil
}

type signatureResult struct {
	Signature string `json:"signature"`
}

// SessionSignature fetches the raw signature bytes of a completed sign
// session.
func (c *Client) SessionSignature(ctx context.Context, handle string) ([]byte, error) {
	var result signatureResult
	params := map[string]any{"handle": handle}
	if err := c.caller.Call(ctx, "session_signature", params, &result); err != nil {
		return nil, &relay.LedgerCallError{Ledger: "custody", Op: "session_signature", Err: err}
	}
	signature, err := hex.DecodeString(result.Signature)
	if err != nil {
		return nil, fmt.Errorf("decode signature for handle %s: %w", handle, err)
	}
	if len(signature) == 0 {
		return nil, fmt.Errorf("custody ledger returned empty signature for handle %s", handle)
	}
	return signature, nil
}
