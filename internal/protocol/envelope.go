package protocol

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/ikatensei/relayer-backend/internal/model"
)

// ErrMalformedPayload is returned when a guardian envelope or deposit
// notification cannot be decoded.
var ErrMalformedPayload = errors.New("malformed payload")

const (
	envelopeHeaderLength    = 1 + 4 + 1  // version, guardian set index, signature count
	envelopeSignatureLength = 1 + 65     // guardian index + 65-byte signature
	envelopeBodyFixedLength = 4 + 4 + 2 + 32 + 8 + 1
)

// GuardianSignature is one guardian's signature over the envelope body.
type GuardianSignature struct {
	Index     uint8
	Signature [65]byte
}

// Envelope is a guardian-signed message. The decoder performs no trust
// verification; signature checking is the destination ledger's job.
type Envelope struct {
	Version          uint8
	GuardianSetIndex uint32
	Signatures       []GuardianSignature
	Timestamp        uint32
	Nonce            uint32
	EmitterChain     model.ChainID
	EmitterAddress   [32]byte
	Sequence         uint64
	ConsistencyLevel uint8
	Payload          []byte
}

// DecodeEnvelope parses the guardian envelope header and body from raw bytes.
func DecodeEnvelope(data []byte) (*Envelope, error) {
	if len(data) < envelopeHeaderLength {
		return nil, fmt.Errorf("envelope is %d bytes, need at least %d: %w",
			len(data), envelopeHeaderLength, ErrMalformedPayload)
	}

	env := &Envelope{
		Version:          data[0],
		GuardianSetIndex: binary.BigEndian.Uint32(data[1:5]),
	}
	numSignatures := int(data[5])
	off := envelopeHeaderLength

	if len(data) < off+numSignatures*envelopeSignatureLength+envelopeBodyFixedLength {
		return nil, fmt.Errorf("envelope truncated within %d signatures: %w",
			numSignatures, ErrMalformedPayload)
	}

	env.Signatures = make([]GuardianSignature, 0, numSignatures)
	for i := 0; i < numSignatures; i++ {
		sig := GuardianSignature{Index: data[off]}
		copy(sig.Signature[:], data[off+1:off+envelopeSignatureLength])
		env.Signatures = append(env.Signatures, sig)
		off += envelopeSignatureLength
	}

	env.Timestamp = binary.BigEndian.Uint32(data[off:])
	off += 4
	env.Nonce = binary.BigEndian.Uint32(data[off:])
	off += 4
	env.EmitterChain = model.ChainID(binary.BigEndian.Uint16(data[off:]))
	off += 2
	copy(env.EmitterAddress[:], data[off:off+32])
	off += 32
	env.Sequence = binary.BigEndian.Uint64(data[off:])
	off += 8
	env.ConsistencyLevel = data[off]
	off++

	env.Payload = append([]byte(nil), data[off:]...)
	return env, nil
}
