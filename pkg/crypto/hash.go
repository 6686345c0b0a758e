package crypto

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/poseidon2"
)

// Hash is the external 32-byte hash primitive: Merkle leaf/node hashing
// and the Fiat–Shamir challenge both run through it. This dogfoods the
// same Poseidon2 Merkle–Damgård hasher the Merkle commitment layer already
// needs, rather than reaching for an unrelated hash package.
func Hash(data []byte) [32]byte {
	h := poseidon2.NewMerkleDamgardHasher()
	h.Write(data)

	var out [32]byte
	sum := h.Sum(nil)
	copy(out[:], sum)
	return out
}
