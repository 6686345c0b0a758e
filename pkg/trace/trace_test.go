package trace

import (
	"testing"

	"github.com/morphym/zk-disorder/config"
	"github.com/morphym/zk-disorder/pkg/crypto"
)

func TestGenerateLength(t *testing.T) {
	tr := Generate([2]uint64{1, 2}, [2]uint64{3, 4})
	if len(tr) != config.TraceLen+1 {
		t.Fatalf("len(trace) = %d, want %d", len(tr), config.TraceLen+1)
	}
}

func TestGenerateSeed(t *testing.T) {
	key := [2]uint64{0xDEADBEEFCAFEBABE, 0x123456789ABCDEF0}
	iv := [2]uint64{0x1111111111111111, 0x2222222222222222}

	tr := Generate(key, iv)
	want := crypto.State{iv[0], iv[1], key[0], key[1]}
	if tr[0] != want {
		t.Fatalf("trace[0] = %v, want %v", tr[0], want)
	}
}

func TestGenerateChain(t *testing.T) {
	tr := Generate([2]uint64{1, 2}, [2]uint64{3, 4})
	for i := 1; i < len(tr); i++ {
		if crypto.Phi(tr[i-1]) != tr[i] {
			t.Fatalf("trace[%d] is not Phi(trace[%d])", i, i-1)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	key := [2]uint64{7, 8}
	iv := [2]uint64{9, 10}

	a := Generate(key, iv)
	b := Generate(key, iv)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Generate not deterministic at index %d", i)
		}
	}
}
