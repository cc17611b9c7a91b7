package model

// ChainID identifies a ledger in the cross-chain protocol.
type ChainID uint16

// Chain identifiers assigned by the seal protocol.
const (
	ChainEthereum ChainID = 1
	ChainSui      ChainID = 2
	ChainSolana   ChainID = 3
	ChainNEAR     ChainID = 4
	ChainBitcoin  ChainID = 5
)

// DestinationChain is the chain all reborn assets are finalized on. It is a
// protocol constant and is never accepted from callers or decoded payloads.
const DestinationChain = ChainSolana
