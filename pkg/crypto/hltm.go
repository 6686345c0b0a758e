// Package crypto implements the hyperchaotic permutation Φ that underlies
// both the sponge cipher and the trace proof: the HLTM lane map (this file),
// the Φ round function, the duplex sponge, and the dogfood hash H.
package crypto

import "github.com/morphym/zk-disorder/config"

// HLTM evaluates the hybrid logistic/tent map on a single 64-bit lane.
// Below the boundary B it behaves like a scaled logistic map; at or above B
// it folds around B using a tent-map style reflection. All arithmetic wraps
// modulo 2^64 — overflow is the point, not a bug.
func HLTM(x uint64) uint64 {
	if x < config.HLTMBoundary {
		return 4 * x * (0 - x)
	}
	a := 0 - x
	b := x - config.HLTMBoundary
	return 4 * a * b
}
