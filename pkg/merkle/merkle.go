// Package merkle builds the fixed-depth perfect binary Merkle tree the
// trace proof commits to, and verifies inclusion paths against a root.
// It is a small, fixed 32-leaf tree built once per proof: every leaf is
// real-or-zero-padded up front and the whole tree fits comfortably on the
// stack — there is no sparse or checkpointed variant to worry about.
package merkle

import "github.com/morphym/zk-disorder/config"

// Hash is a 32-byte Merkle node value (leaf hash, sibling, or root).
type Hash [32]byte

// HashFunc is the external hash primitive H, supplied by the caller so this
// package stays agnostic to which hash backs the tree.
type HashFunc func(data []byte) [32]byte

// combine computes a parent node as H(left ‖ right) — plain 64-byte
// concatenation, no domain tag, no length prefix.
func combine(h HashFunc, left, right Hash) Hash {
	var buf [64]byte
	copy(buf[:32], left[:])
	copy(buf[32:], right[:])
	return Hash(h(buf[:]))
}

// Tree is a perfect binary tree over exactly config.MerkleLeaves leaves,
// stored as its bottom-up layers: layers[0] is the leaf row, layers[len-1]
// is the single-element root row.
type Tree struct {
	layers [][]Hash
}

// Build constructs the tree bottom-up from leaves, which must already be
// padded to config.MerkleLeaves (callers needing fewer real leaves pad the
// tail with the zero hash themselves). At each level, a rightmost node
// without a sibling is combined with itself; with MerkleLeaves as a power
// of two this never triggers, but the rule is implemented because
// Path/Recompute below both rely on it holding in general.
func Build(h HashFunc, leaves []Hash) *Tree {
	layers := make([][]Hash, 0, config.MerkleDepth+1)
	layers = append(layers, leaves)

	current := leaves
	for len(current) > 1 {
		next := make([]Hash, 0, (len(current)+1)/2)
		for i := 0; i < len(current); i += 2 {
			left := current[i]
			right := left
			if i+1 < len(current) {
				right = current[i+1]
			}
			next = append(next, combine(h, left, right))
		}
		layers = append(layers, next)
		current = next
	}

	return &Tree{layers: layers}
}

// Root returns the single root hash.
func (t *Tree) Root() Hash {
	return t.layers[len(t.layers)-1][0]
}

// Depth returns the number of levels between a leaf and the root.
func (t *Tree) Depth() int {
	return len(t.layers) - 1
}

// Path returns the sibling hashes from leaf index toward the root, one per
// level. No direction bit is included — the verifier recovers it from the
// leaf index's parity at each level, exactly as Path does here.
func (t *Tree) Path(index int) []Hash {
	path := make([]Hash, 0, t.Depth())
	idx := index
	for level := 0; level < t.Depth(); level++ {
		row := t.layers[level]
		sibIdx := idx ^ 1
		sib := row[idx]
		if sibIdx < len(row) {
			sib = row[sibIdx]
		}
		path = append(path, sib)
		idx >>= 1
	}
	return path
}

// Recompute walks leaf up through path, combining with each sibling
// according to the parity of the running index, and returns the resulting
// root candidate. It performs no comparison itself — callers compare the
// result against the expected root.
func Recompute(h HashFunc, leaf Hash, index int, path []Hash) Hash {
	node := leaf
	idx := index
	for _, sib := range path {
		if idx%2 == 0 {
			node = combine(h, node, sib)
		} else {
			node = combine(h, sib, node)
		}
		idx >>= 1
	}
	return node
}
