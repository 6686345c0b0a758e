package crypto

import "testing"

func TestHashDeterministic(t *testing.T) {
	data := []byte("zk-disorder")
	if Hash(data) != Hash(data) {
		t.Fatalf("Hash is not deterministic for identical input")
	}
}

func TestHashSensitivity(t *testing.T) {
	a := Hash([]byte{0x00})
	b := Hash([]byte{0x01})
	if a == b {
		t.Fatalf("distinct inputs hashed to the same digest")
	}
}
