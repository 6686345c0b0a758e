package crypto

import "github.com/morphym/zk-disorder/config"

// FractCipher is a duplex sponge keyed by a 128-bit secret (the capacity
// lanes) and seeded with a public 128-bit IV (the rate lanes). It owns its
// state exclusively: concurrent Encrypt calls on the same FractCipher are a
// contract violation the caller must prevent, not something FractCipher
// synchronizes against.
type FractCipher struct {
	state State
}

// NewCipher seeds the duplex: IV occupies the rate, key occupies the
// capacity.
func NewCipher(key, iv [2]uint64) *FractCipher {
	return &FractCipher{state: State{iv[0], iv[1], key[0], key[1]}}
}

// Encrypt absorbs one 128-bit plaintext block into the rate, runs
// RoundsPerBlock applications of Phi, and squeezes the post-permutation rate
// as ciphertext. The duplex state carries forward, so a second call on the
// same cipher continues the stream rather than restarting it.
func (c *FractCipher) Encrypt(plaintext [2]uint64) [2]uint64 {
	c.state[0] ^= plaintext[0]
	c.state[1] ^= plaintext[1]

	for i := 0; i < config.RoundsPerBlock; i++ {
		c.state = Phi(c.state)
	}

	return [2]uint64{c.state[0], c.state[1]}
}
