package protocol

import (
	"encoding/binary"
	"fmt"

	"github.com/ikatensei/relayer-backend/internal/model"
)

// DepositPayloadID marks a deposit notification inside an envelope payload.
const DepositPayloadID = 0x01

// DepositNotificationLength is the exact wire size of the record. Shorter
// payloads are rejected outright; longer ones are rejected rather than
// silently truncated.
const DepositNotificationLength = 1 + 2 + 32 + 32 + 32 + 32 + 32 + 8 // 171

// DepositNotification is the inner payload announcing that an asset was
// locked on the source ledger. All fields are fixed-width and zero-padded.
type DepositNotification struct {
	PayloadID        uint8
	SourceChain      model.ChainID
	SourceContract   [32]byte
	TokenID          [32]byte
	Depositor        [32]byte
	CustodialAddress [32]byte
	DepositBlock     uint64
	SealNonce        uint64
}

// DecodeDepositNotification parses the fixed 171-byte deposit record. The
// deposit block is carried as a 32-byte big-endian word whose upper 24 bytes
// must be zero.
func DecodeDepositNotification(data []byte) (*DepositNotification, error) {
	if len(data) < DepositNotificationLength {
		return nil, fmt.Errorf("deposit notification is %d bytes, need %d: %w",
			len(data), DepositNotificationLength, ErrMalformedPayload)
	}
	if len(data) > DepositNotificationLength {
		return nil, fmt.Errorf("deposit notification is %d bytes, expected exactly %d: %w",
			len(data), DepositNotificationLength, ErrMalformedPayload)
	}

	n := &DepositNotification{PayloadID: data[0]}
	if n.PayloadID != DepositPayloadID {
		return nil, fmt.Errorf("unexpected payload id 0x%02x: %w", n.PayloadID, ErrMalformedPayload)
	}

	off := 1
	n.SourceChain = model.ChainID(binary.BigEndian.Uint16(data[off:]))
	off += 2
	copy(n.SourceContract[:], data[off:off+32])
	off += 32
	copy(n.TokenID[:], data[off:off+32])
	off += 32
	copy(n.Depositor[:], data[off:off+32])
	off += 32
	copy(n.CustodialAddress[:], data[off:off+32])
	off += 32

	for _, b := range data[off : off+24] {
		if b != 0 {
			return nil, fmt.Errorf("deposit block exceeds 64 bits: %w", ErrMalformedPayload)
		}
	}
	n.DepositBlock = binary.BigEndian.Uint64(data[off+24 : off+32])
	off += 32
	n.SealNonce = binary.BigEndian.Uint64(data[off:])

	return n, nil
}
