// Package trace generates the ordered sequence of Φ-iterated states the
// proof commits to.
package trace

import (
	"github.com/morphym/zk-disorder/config"
	"github.com/morphym/zk-disorder/pkg/crypto"
)

// Generate seeds a state as (iv0, iv1, key0, key1) and records T+1 snapshots
// by iterating Phi T times — no absorption, no squeezing, pure iteration.
// The returned slice always has length config.TraceLen+1.
func Generate(key, iv [2]uint64) []crypto.State {
	out := make([]crypto.State, config.TraceLen+1)
	out[0] = crypto.State{iv[0], iv[1], key[0], key[1]}
	for i := 1; i <= config.TraceLen; i++ {
		out[i] = crypto.Phi(out[i-1])
	}
	return out
}
