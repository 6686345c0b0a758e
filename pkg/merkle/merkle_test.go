package merkle

import (
	"testing"

	"github.com/morphym/zk-disorder/config"
	"github.com/morphym/zk-disorder/pkg/crypto"
)

func testLeaves(t *testing.T) []Hash {
	t.Helper()
	leaves := make([]Hash, config.MerkleLeaves)
	for i := range leaves {
		leaves[i] = Hash(crypto.Hash([]byte{byte(i)}))
	}
	return leaves
}

func TestBuildRootDeterministic(t *testing.T) {
	leaves := testLeaves(t)
	t1 := Build(crypto.Hash, leaves)
	t2 := Build(crypto.Hash, leaves)

	if t1.Root() != t2.Root() {
		t.Fatalf("Build is not deterministic: %v != %v", t1.Root(), t2.Root())
	}
}

// TestRoundTrip checks that every leaf's path recomputes to the tree's
// root.
func TestRoundTrip(t *testing.T) {
	leaves := testLeaves(t)
	tree := Build(crypto.Hash, leaves)
	root := tree.Root()

	for i, leaf := range leaves {
		t.Run("", func(t *testing.T) {
			path := tree.Path(i)
			if len(path) != config.MerkleDepth {
				t.Fatalf("path length = %d, want %d", len(path), config.MerkleDepth)
			}
			got := Recompute(crypto.Hash, leaf, i, path)
			if got != root {
				t.Fatalf("leaf %d: recomputed root %v != tree root %v", i, got, root)
			}
		})
	}
}

func TestRoundTripRejectsWrongIndex(t *testing.T) {
	leaves := testLeaves(t)
	tree := Build(crypto.Hash, leaves)
	root := tree.Root()

	path := tree.Path(0)
	got := Recompute(crypto.Hash, leaves[0], 1, path)
	if got == root {
		t.Fatalf("recompute with wrong index accidentally matched root")
	}
}
