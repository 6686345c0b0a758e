package crypto

import (
	"encoding/binary"
	"math/bits"
)

// State is the 256-bit working state: two public rate lanes (s0, s1)
// followed by two secret capacity lanes (s2, s3). It is a plain value type —
// copying a State copies the whole state, which is exactly what the trace
// generator and the verifier's per-slice replay rely on.
type State [4]uint64

// Bytes returns the canonical 32-byte little-endian encoding s0‖s1‖s2‖s3.
func (s State) Bytes() [32]byte {
	var out [32]byte
	for i, lane := range s {
		binary.LittleEndian.PutUint64(out[i*8:i*8+8], lane)
	}
	return out
}

// StateFromBytes is the inverse of Bytes.
func StateFromBytes(b [32]byte) State {
	var s State
	for i := range s {
		s[i] = binary.LittleEndian.Uint64(b[i*8 : i*8+8])
	}
	return s
}

// Phi applies one round of the coupled 4-lane permutation: each lane's HLTM
// output is diffused with fixed rotations of its two neighbours via XOR. Phi
// is total and deterministic — every State maps to exactly one State.
func Phi(s State) State {
	f0, f1, f2, f3 := HLTM(s[0]), HLTM(s[1]), HLTM(s[2]), HLTM(s[3])

	return State{
		f0 ^ bits.RotateLeft64(s[1], -31) ^ bits.RotateLeft64(s[3], 17),
		f1 ^ bits.RotateLeft64(s[2], -23) ^ bits.RotateLeft64(s[0], 11),
		f2 ^ bits.RotateLeft64(s[3], -47) ^ bits.RotateLeft64(s[1], 29),
		f3 ^ bits.RotateLeft64(s[0], -13) ^ bits.RotateLeft64(s[2], 5),
	}
}
