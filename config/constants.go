// Package config holds the fixed protocol parameters shared by every
// component of the proof. None of these are meant to be tuned at runtime;
// changing any of them changes the wire format.
package config

const (
	// TraceLen is T: the number of Φ applications recorded past the seed
	// state. The trace itself has TraceLen+1 snapshots.
	TraceLen = 16

	// MerkleLeaves is L, the next power of two >= TraceLen+1.
	MerkleLeaves = 32

	// MerkleDepth is log2(MerkleLeaves).
	MerkleDepth = 5

	// Slices is k, the number of challenged (revealed) transitions per proof.
	Slices = 4

	// RoundsPerBlock is the number of Φ applications the sponge cipher runs
	// between absorb and squeeze.
	RoundsPerBlock = 8

	// HLTMBoundary is B = 2^63, the piecewise split point of the HLTM map.
	HLTMBoundary = uint64(1) << 63

	// MaxProofSize is the single-MTU envelope the encoded proof must fit in.
	MaxProofSize = 1232

	// EncodedProofSize is the exact size Encode produces for the fixed
	// TraceLen/Slices/MerkleDepth parameters above; must stay <= MaxProofSize.
	EncodedProofSize = 32 + 4 + Slices*(4+32+32) + 4 + Slices*(4+MerkleDepth*32)
)
