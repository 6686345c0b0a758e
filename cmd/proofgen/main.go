// Command proofgen takes a key and IV on the command line and writes a
// wire-encoded zero-knowledge trace proof to proof.bin.
package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/morphym/zk-disorder/zkproof"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if len(os.Args) != 5 {
		log.Error().Msg("Usage: proofgen <key0_hex> <key1_hex> <iv0_hex> <iv1_hex>")
		os.Exit(1)
	}

	key0, err := parseHexU64(os.Args[1])
	if err != nil {
		log.Error().Err(err).Str("arg", "key0").Msg("invalid hex argument")
		os.Exit(1)
	}
	key1, err := parseHexU64(os.Args[2])
	if err != nil {
		log.Error().Err(err).Str("arg", "key1").Msg("invalid hex argument")
		os.Exit(1)
	}
	iv0, err := parseHexU64(os.Args[3])
	if err != nil {
		log.Error().Err(err).Str("arg", "iv0").Msg("invalid hex argument")
		os.Exit(1)
	}
	iv1, err := parseHexU64(os.Args[4])
	if err != nil {
		log.Error().Err(err).Str("arg", "iv1").Msg("invalid hex argument")
		os.Exit(1)
	}

	key := [2]uint64{key0, key1}
	iv := [2]uint64{iv0, iv1}

	proof := zkproof.Prove(key, iv)
	encoded := proof.Encode()

	if err := os.WriteFile("proof.bin", encoded, 0o644); err != nil {
		log.Error().Err(err).Msg("failed to write proof.bin")
		os.Exit(1)
	}

	log.Info().Int("bytes", len(encoded)).Msg("proof written to proof.bin")
}

func parseHexU64(s string) (uint64, error) {
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "0X")
	return strconv.ParseUint(s, 16, 64)
}
