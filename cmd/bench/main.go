// Command bench times proof generation and verification for a random
// key/IV pair and prints a rough compute-unit estimate for a constrained
// on-chain verifier, in the spirit of the original crate's benchmark.
package main

import (
	"crypto/rand"
	"encoding/binary"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/morphym/zk-disorder/config"
	"github.com/morphym/zk-disorder/pkg/crypto"
	"github.com/morphym/zk-disorder/zkproof"
)

func randU64() uint64 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		log.Fatal().Err(err).Msg("failed to read randomness")
	}
	return binary.LittleEndian.Uint64(b[:])
}

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})

	log.Info().Msg("=== zk-disorder: performance & CU benchmark ===")
	log.Info().Msgf("specs: %d-round hyperchaotic sponge, cut-and-choose (%d slices)", config.RoundsPerBlock, config.Slices)

	key := [2]uint64{randU64(), randU64()}
	iv := [2]uint64{randU64(), randU64()}
	plaintext := [2]uint64{randU64(), randU64()}

	startEnc := time.Now()
	cipher := crypto.NewCipher(key, iv)
	_ = cipher.Encrypt(plaintext)
	encTime := time.Since(startEnc)
	log.Info().Dur("time", encTime).Msg("[1] encryption phase")

	zkproof.Prove(key, iv) // warmup

	startProve := time.Now()
	proof := zkproof.Prove(key, iv)
	proveTime := time.Since(startProve)

	encoded := proof.Encode()
	size := len(encoded)

	log.Info().Dur("time", proveTime).Int("proof_bytes", size).Msg("[2] proof generation")
	if size < config.MaxProofSize {
		log.Info().Msg("    fits in a single MTU frame")
	}

	startVerify := time.Now()
	valid := proof.Verify()
	verifyTime := time.Since(startVerify)
	log.Info().Bool("valid", valid).Dur("time", verifyTime).Msg("[3] verification phase")

	const (
		opsPerPhi  = 350
		opsPerHash = 400
		overhead   = 1500
	)
	costChallenge := opsPerHash + 100
	costPerSlice := opsPerPhi + config.MerkleDepth*opsPerHash
	costLoop := config.Slices * costPerSlice
	totalCU := costChallenge + costLoop + overhead

	log.Info().
		Int("challenge_cu", costChallenge).
		Int("slice_loop_cu", costLoop).
		Int("overhead_cu", overhead).
		Int("total_cu", totalCU).
		Msg("[4] compute-unit estimate")

	const stressIterations = 1000
	start := time.Now()
	for i := 0; i < stressIterations; i++ {
		proof.Verify()
	}
	total := time.Since(start)
	avg := total / stressIterations

	log.Info().
		Dur("avg_verify", avg).
		Float64("verify_tps", float64(time.Second)/float64(avg)).
		Msg("[5] stress test")
}
