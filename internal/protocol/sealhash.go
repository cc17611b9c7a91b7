// Package protocol implements the byte-exact wire codecs shared with the
// on-chain programs: the seal message and its hash, the guardian-signed
// envelope, and the deposit notification record.
package protocol

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/ikatensei/relayer-backend/internal/model"
)

// ErrMalformedSealBytes is returned when a seal message cannot be decoded:
// declared lengths overrun the buffer, the buffer is short, or trailing bytes
// remain after the fixed tail.
var ErrMalformedSealBytes = errors.New("malformed seal bytes")

const (
	// MaxContractLength and MaxTokenIDLength mirror the limits enforced by
	// the destination program when it stores the reincarnation record.
	MaxContractLength = 64
	MaxTokenIDLength  = 64

	sealFixedLength = 2 + 2 + 1 + 1 + 32 + 8 // 46 bytes plus the two variable fields
)

// SealMessage is the set of fields the seal hash commits to. Two messages
// with equal encodings are the same logical unit of work.
type SealMessage struct {
	SourceChain       model.ChainID
	DestinationChain  model.ChainID
	SourceContract    []byte
	TokenID           []byte
	AttestationPubKey [32]byte
	Nonce             uint64
}

// EncodeSealMessage produces the fixed-layout encoding:
//
//	sourceChain(2 BE) · destinationChain(2 BE) · len(contract)(1) · contract ·
//	len(tokenID)(1) · tokenID · attestationPubKey(32) · nonce(8 BE)
//
// The nonce is written with full 64-bit arithmetic; values above 2^53 must
// round-trip exactly.
func EncodeSealMessage(msg SealMessage) ([]byte, error) {
	if len(msg.SourceContract) > MaxContractLength {
		return nil, fmt.Errorf("source contract is %d bytes, limit %d: %w",
			len(msg.SourceContract), MaxContractLength, ErrMalformedSealBytes)
	}
	if len(msg.TokenID) > MaxTokenIDLength {
		return nil, fmt.Errorf("token id is %d bytes, limit %d: %w",
			len(msg.TokenID), MaxTokenIDLength, ErrMalformedSealBytes)
	}

	buf := make([]byte, 0, sealFixedLength+len(msg.SourceContract)+len(msg.TokenID))
	buf = binary.BigEndian.AppendUint16(buf, uint16(msg.SourceChain))
	buf = binary.BigEndian.AppendUint16(buf, uint16(msg.DestinationChain))
	buf = append(buf, byte(len(msg.SourceContract)))
	buf = append(buf, msg.SourceContract...)
	buf = append(buf, byte(len(msg.TokenID)))
	buf = append(buf, msg.TokenID...)
	buf = append(buf, msg.AttestationPubKey[:]...)
	buf = binary.BigEndian.AppendUint64(buf, msg.Nonce)
	return buf, nil
}

// ComputeSealHash hashes the canonical encoding with SHA-256.
func ComputeSealHash(msg SealMessage) (model.SealHash, error) {
	encoded, err := EncodeSealMessage(msg)
	if err != nil {
		return model.SealHash{}, err
	}
	return sha256.Sum256(encoded), nil
}

// DecodeSealMessage is the exact inverse of EncodeSealMessage. Field
// boundaries are recovered from the two length-prefix bytes.
func DecodeSealMessage(data []byte) (SealMessage, error) {
	var msg SealMessage

	if len(data) < sealFixedLength {
		return msg, fmt.Errorf("seal message is %d bytes, need at least %d: %w",
			len(data), sealFixedLength, ErrMalformedSealBytes)
	}

	off := 0
	msg.SourceChain = model.ChainID(binary.BigEndian.Uint16(data[off:]))
	off += 2
	msg.DestinationChain = model.ChainID(binary.BigEndian.Uint16(data[off:]))
	off += 2

	contractLen := int(data[off])
	off++
	if contractLen > MaxContractLength || off+contractLen > len(data) {
		return msg, fmt.Errorf("declared contract length %d overruns buffer: %w",
			contractLen, ErrMalformedSealBytes)
	}
	msg.SourceContract = append([]byte(nil), data[off:off+contractLen]...)
	off += contractLen

	if off >= len(data) {
		return msg, fmt.Errorf("missing token id length: %w", ErrMalformedSealBytes)
	}
	tokenLen := int(data[off])
	off++
	if tokenLen > MaxTokenIDLength || off+tokenLen > len(data) {
		return msg, fmt.Errorf("declared token id length %d overruns buffer: %w",
			tokenLen, ErrMalformedSealBytes)
	}
	msg.TokenID = append([]byte(nil), data[off:off+tokenLen]...)
	off += tokenLen

	if len(data)-off != 32+8 {
		return msg, fmt.Errorf("expected 40 trailing bytes, have %d: %w",
			len(data)-off, ErrMalformedSealBytes)
	}
	copy(msg.AttestationPubKey[:], data[off:off+32])
	off += 32
	msg.Nonce = binary.BigEndian.Uint64(data[off:])

	return msg, nil
}
