// Package model holds the relayer's domain types.
package model

import (
	"encoding/hex"
	"time"
)

// SealHash is the 256-bit digest identifying one seal-to-rebirth cycle.
// It is computed identically by the source ledger's on-chain logic and the
// relayer's codec.
type SealHash [32]byte

func (h SealHash) String() string {
	return hex.EncodeToString(h[:])
}

// Status is the lifecycle position of a WorkItem. Transitions are monotonic;
// there are no backward moves.
type Status string

const (
	StatusObserved Status = "observed"
	StatusSigning  Status = "signing"
	StatusVerified Status = "verified"
	StatusMinted   Status = "minted"
	StatusClosed   Status = "closed"
	StatusFailed   Status = "failed"
)

var statusRank = map[Status]int{
	StatusObserved: 0,
	StatusSigning:  1,
	StatusVerified: 2,
	StatusMinted:   3,
	StatusClosed:   4,
}

// Rank returns the ordinal position of the status in the forward chain, or -1
// for terminal failure, which sits outside the chain.
func (s Status) Rank() int {
	if r, ok := statusRank[s]; ok {
		return r
	}
	return -1
}

// Terminal reports whether no further transitions are allowed.
func (s Status) Terminal() bool {
	return s == StatusClosed || s == StatusFailed
}

// CanTransitionTo reports whether moving from s to next respects the
// monotonic lifecycle. Any non-terminal status may move to StatusFailed.
func (s Status) CanTransitionTo(next Status) bool {
	if s.Terminal() {
		return false
	}
	if next == StatusFailed {
		return true
	}
	return next.Rank() == s.Rank()+1
}

// Metadata carries advisory display fields for the reborn asset. It never
// participates in the seal hash.
type Metadata struct {
	Name        string
	Description string
	URI         string
	Collection  string
}

// WorkItem is one sealing event carried end-to-end. Immutable after creation
// except for its status, which lives in the status journal. WorkItems are
// never deleted; they are retained for audit and replay rejection.
type WorkItem struct {
	SealHash          SealHash
	SourceChain       ChainID
	DestinationChain  ChainID
	SourceContract    []byte
	TokenID           []byte
	AttestationPubKey [32]byte
	Nonce             uint64
	Recipient         [32]byte
	Sequence          uint64
	Metadata          Metadata
	SourceTxRef       string
	ObservedAt        time.Time
}

// StatusRow is one append-only journal entry, shaped for bulk insertion.
type StatusRow struct {
	SealHash   SealHash
	Status     Status
	Reason     string
	RecordedAt time.Time
}

// SigningSession is the ephemeral state of one threshold-signing run. It is
// owned exclusively by the sign orchestrator and discarded once the signature
// is extracted.
type SigningSession struct {
	PresignHandle  string
	PresignState   string
	SignHandle     string
	SignatureBytes []byte
}
