package zkproof

import (
	"encoding/binary"
	"fmt"

	"github.com/morphym/zk-disorder/config"
)

// snapshotSize is the encoded size of one crypto.State: four little-endian
// u64 lanes.
const snapshotSize = 4 * 8

// revealedEntrySize is idx (u32) + pre (snapshot) + post (snapshot).
const revealedEntrySize = 4 + snapshotSize + snapshotSize

// Encode writes the canonical little-endian wire layout: root, a u32
// revealed count, the revealed entries, a u32 path count, then one
// length-prefixed sibling list per path. The result is always
// config.EncodedProofSize bytes, comfortably under config.MaxProofSize.
func (p *ZKProof) Encode() []byte {
	out := make([]byte, 0, config.EncodedProofSize)

	out = append(out, p.Root[:]...)
	out = binary.LittleEndian.AppendUint32(out, uint32(config.Slices))

	for _, s := range p.Revealed {
		out = binary.LittleEndian.AppendUint32(out, s.Idx)
		for _, lane := range s.Pre {
			out = binary.LittleEndian.AppendUint64(out, lane)
		}
		for _, lane := range s.Post {
			out = binary.LittleEndian.AppendUint64(out, lane)
		}
	}

	out = binary.LittleEndian.AppendUint32(out, uint32(config.Slices))
	for _, path := range p.Paths {
		out = binary.LittleEndian.AppendUint32(out, uint32(config.MerkleDepth))
		for _, sib := range path {
			out = append(out, sib[:]...)
		}
	}

	return out
}

// Decode parses the layout Encode produces. It rejects anything with the
// wrong total length or a revealed/path/sibling count that doesn't match
// the fixed protocol parameters — malformed bytes are refused here, before
// Verify ever runs, so a caller can distinguish "not a well-formed proof"
// from "well-formed but invalid" if it wants to (Verify itself stays a flat
// bool).
func Decode(data []byte) (*ZKProof, error) {
	if len(data) != config.EncodedProofSize {
		return nil, fmt.Errorf("zkproof: decode: want %d bytes, got %d", config.EncodedProofSize, len(data))
	}

	var p ZKProof
	off := 0

	copy(p.Root[:], data[off:off+32])
	off += 32

	revealedCount := binary.LittleEndian.Uint32(data[off : off+4])
	off += 4
	if revealedCount != config.Slices {
		return nil, fmt.Errorf("zkproof: decode: revealed_count = %d, want %d", revealedCount, config.Slices)
	}

	for j := 0; j < config.Slices; j++ {
		idx := binary.LittleEndian.Uint32(data[off : off+4])
		off += 4

		var pre, post [4]uint64
		for i := range pre {
			pre[i] = binary.LittleEndian.Uint64(data[off : off+8])
			off += 8
		}
		for i := range post {
			post[i] = binary.LittleEndian.Uint64(data[off : off+8])
			off += 8
		}

		p.Revealed[j] = Slice{Idx: idx, Pre: pre, Post: post}
	}

	pathsCount := binary.LittleEndian.Uint32(data[off : off+4])
	off += 4
	if pathsCount != config.Slices {
		return nil, fmt.Errorf("zkproof: decode: paths_count = %d, want %d", pathsCount, config.Slices)
	}

	for j := 0; j < config.Slices; j++ {
		siblingCount := binary.LittleEndian.Uint32(data[off : off+4])
		off += 4
		if siblingCount != config.MerkleDepth {
			return nil, fmt.Errorf("zkproof: decode: path[%d] sibling_count = %d, want %d", j, siblingCount, config.MerkleDepth)
		}

		for d := 0; d < config.MerkleDepth; d++ {
			copy(p.Paths[j][d][:], data[off:off+32])
			off += 32
		}
	}

	return &p, nil
}
