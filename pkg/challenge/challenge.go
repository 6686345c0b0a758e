// Package challenge derives the Fiat–Shamir challenge indices from a
// Merkle root, the step that makes the cut-and-choose proof non-interactive.
package challenge

import (
	"encoding/binary"

	"github.com/morphym/zk-disorder/config"
)

// Derive hashes root through h, interprets the 32-byte digest as four
// little-endian u64 seed words, and reduces each mod config.TraceLen.
// Indices are not deduplicated: a repeated index is challenged twice,
// independently, which the verifier accepts as k draws with replacement
// rather than k distinct positions.
func Derive(h func([]byte) [32]byte, root [32]byte) [config.Slices]int {
	seed := h(root[:])

	var indices [config.Slices]int
	for j := 0; j < config.Slices; j++ {
		word := binary.LittleEndian.Uint64(seed[j*8 : j*8+8])
		indices[j] = int(word % config.TraceLen)
	}
	return indices
}
