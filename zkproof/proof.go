// Package zkproof implements the cut-and-choose trace proof: construction
// (Prove), stateless checking (Verify), and a stable wire encoding for
// carrying a proof across a process or network boundary.
package zkproof

import (
	"github.com/morphym/zk-disorder/config"
	"github.com/morphym/zk-disorder/pkg/crypto"
	"github.com/morphym/zk-disorder/pkg/merkle"
)

// Slice is one revealed transition: the prover claims trace[Idx] == Pre and
// Phi(Pre) == Post == trace[Idx+1].
type Slice struct {
	Idx  uint32
	Pre  crypto.State
	Post crypto.State
}

// ZKProof is the full proof object: a Merkle root over the (padded) trace,
// config.Slices revealed transitions, and one Merkle path per revealed
// transition. It is immutable after construction and freely copyable —
// every field is a fixed-size value, never a pointer into prover-internal
// state.
type ZKProof struct {
	Root     [32]byte
	Revealed [config.Slices]Slice
	Paths    [config.Slices][config.MerkleDepth]merkle.Hash
}
