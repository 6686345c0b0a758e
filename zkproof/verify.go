package zkproof

import (
	"github.com/morphym/zk-disorder/config"
	"github.com/morphym/zk-disorder/pkg/challenge"
	"github.com/morphym/zk-disorder/pkg/crypto"
	"github.com/morphym/zk-disorder/pkg/merkle"
)

// Verify checks a proof against its own embedded root. It returns a single
// flat boolean — no error value, no indication of which check failed — so
// that a caller (or an attacker probing the verifier) cannot distinguish a
// bad Merkle path from a bad transition from a re-derived-challenge
// mismatch. Verify never allocates beyond what Phi/Hash need internally and
// never mutates p.
func (p *ZKProof) Verify() bool {
	indices := challenge.Derive(crypto.Hash, p.Root)

	for j := 0; j < config.Slices; j++ {
		entry := p.Revealed[j]

		if int(entry.Idx) != indices[j] {
			return false
		}
		if entry.Idx >= config.TraceLen {
			return false
		}

		if crypto.Phi(entry.Pre) != entry.Post {
			return false
		}

		preBytes := entry.Pre.Bytes()
		leaf := merkle.Hash(crypto.Hash(preBytes[:]))
		root := merkle.Recompute(crypto.Hash, leaf, int(entry.Idx), p.Paths[j][:])
		if [32]byte(root) != p.Root {
			return false
		}
	}

	return true
}
