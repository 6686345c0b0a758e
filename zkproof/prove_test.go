package zkproof

import "testing"

var (
	testKey = [2]uint64{0xDEADBEEFCAFEBABE, 0x123456789ABCDEF0}
	testIV  = [2]uint64{0x1111111111111111, 0x2222222222222222}
)

// TestProveDeterministic checks that proving the same (key, iv) twice
// produces byte-identical output.
func TestProveDeterministic(t *testing.T) {
	a := Prove(testKey, testIV).Encode()
	b := Prove(testKey, testIV).Encode()

	if len(a) != len(b) {
		t.Fatalf("encoded lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("encoded proofs differ at byte %d", i)
			break
		}
	}
}

// TestProveSizeBound checks the encoded proof fits in a single MTU frame.
func TestProveSizeBound(t *testing.T) {
	proof := Prove(testKey, testIV)
	size := len(proof.Encode())
	if size > 1232 {
		t.Fatalf("encoded proof is %d bytes, exceeds 1232-byte MTU envelope", size)
	}
}

func TestProveVariesWithKey(t *testing.T) {
	a := Prove(testKey, testIV).Encode()
	altKey := [2]uint64{testKey[0] ^ 1, testKey[1]}
	b := Prove(altKey, testIV).Encode()

	equal := len(a) == len(b)
	if equal {
		for i := range a {
			if a[i] != b[i] {
				equal = false
				break
			}
		}
	}
	if equal {
		t.Fatalf("distinct keys produced identical encoded proofs")
	}
}
