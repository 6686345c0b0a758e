package zkproof

import (
	"github.com/morphym/zk-disorder/config"
	"github.com/morphym/zk-disorder/pkg/challenge"
	"github.com/morphym/zk-disorder/pkg/crypto"
	"github.com/morphym/zk-disorder/pkg/merkle"
	"github.com/morphym/zk-disorder/pkg/trace"
)

// Prove generates the trace from (key, iv), commits to it, derives the
// Fiat–Shamir challenge from the commitment, and reveals the challenged
// transitions with their Merkle paths. It is a pure, deterministic
// function: the same (key, iv) always yields byte-identical output. Unlike
// Verify, Prove is free to allocate.
func Prove(key, iv [2]uint64) *ZKProof {
	tr := trace.Generate(key, iv)

	leaves := make([]merkle.Hash, config.MerkleLeaves)
	for i := 0; i <= config.TraceLen; i++ {
		b := tr[i].Bytes()
		leaves[i] = merkle.Hash(crypto.Hash(b[:]))
	}
	// leaves[config.TraceLen+1:] stay the zero value — the all-zero padding
	// leaf required for indices beyond the real trace.

	tree := merkle.Build(crypto.Hash, leaves)
	root := tree.Root()
	indices := challenge.Derive(crypto.Hash, [32]byte(root))

	proof := &ZKProof{Root: [32]byte(root)}
	for j, idx := range indices {
		proof.Revealed[j] = Slice{
			Idx:  uint32(idx),
			Pre:  tr[idx],
			Post: tr[idx+1],
		}
		copy(proof.Paths[j][:], tree.Path(idx))
	}

	return proof
}
