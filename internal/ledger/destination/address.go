package destination

import (
	"crypto/sha256"

	"github.com/mr-tron/base58"

	"github.com/ikatensei/relayer-backend/internal/model"
)

// Account derivation seeds. They mirror the destination program's PDA seeds
// so the relayer can locate the record and mint authority without a lookup.
const (
	recordSeed        = "reincarnation"
	mintAuthoritySeed = "reincarnation_mint"
)

func deriveAddress(seed string, hash model.SealHash) string {
	h := sha256.New()
	h.Write([]byte(seed))
	h.Write(hash[:])
	return base58.Encode(h.Sum(nil))
}

// RecordAddress is the deterministic account address of the verification
// record for a seal hash.
func RecordAddress(hash model.SealHash) string {
	return deriveAddress(recordSeed, hash)
}

// MintAuthorityAddress is the deterministic mint authority account for a
// seal hash.
func MintAuthorityAddress(hash model.SealHash) string {
	return deriveAddress(mintAuthoritySeed, hash)
}
